package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/radiocalco/database"
	"github.com/blogem/radiocalco/models"
)

// RatingRepository interface defines song rating database operations
type RatingRepository interface {
	CountBySong(ctx context.Context, title, artist string) (models.RatingCounts, error)
	FindVote(ctx context.Context, title, artist, voter string) (*models.SongRating, error)
	Create(ctx context.Context, rating *models.SongRating) error
	UpdateVote(ctx context.Context, title, artist, voter string, rating models.RatingType) error
}

// ratingRepository implements RatingRepository interface
type ratingRepository struct {
	db *sql.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *sql.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// CountBySong returns the up/down totals for a song, zero when unrated
func (r *ratingRepository) CountBySong(ctx context.Context, title, artist string) (models.RatingCounts, error) {
	query := `
		SELECT rating_type, COUNT(*)
		FROM song_ratings
		WHERE song_title = $1 AND song_artist = $2
		GROUP BY rating_type
	`

	var counts models.RatingCounts

	rows, err := r.db.QueryContext(ctx, query, title, artist)
	if err != nil {
		return counts, fmt.Errorf("failed to query rating counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ratingType models.RatingType
		var count int
		if err := rows.Scan(&ratingType, &count); err != nil {
			return counts, fmt.Errorf("failed to scan rating count: %w", err)
		}

		switch ratingType {
		case models.RatingUp:
			counts.Up = count
		case models.RatingDown:
			counts.Down = count
		}
	}

	if err = rows.Err(); err != nil {
		return counts, fmt.Errorf("error iterating rating counts: %w", err)
	}

	return counts, nil
}

// FindVote returns the voter's current vote on a song
func (r *ratingRepository) FindVote(ctx context.Context, title, artist, voter string) (*models.SongRating, error) {
	query := `
		SELECT id, song_title, song_artist, rating_type, user_ip, created_at
		FROM song_ratings
		WHERE song_title = $1 AND song_artist = $2 AND user_ip = $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var rating models.SongRating
	err := r.db.QueryRowContext(ctx, query, title, artist, voter).Scan(
		&rating.ID,
		&rating.SongTitle,
		&rating.SongArtist,
		&rating.RatingType,
		&rating.UserIP,
		database.ScanTime(&rating.CreatedAt),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return &rating, nil
}

// Create inserts a new vote
func (r *ratingRepository) Create(ctx context.Context, rating *models.SongRating) error {
	query := `
		INSERT INTO song_ratings (song_title, song_artist, rating_type, user_ip)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		rating.SongTitle,
		rating.SongArtist,
		string(rating.RatingType),
		rating.UserIP,
	).Scan(&rating.ID, database.ScanTime(&rating.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}

	return nil
}

// UpdateVote overwrites the voter's vote on a song and refreshes its timestamp
func (r *ratingRepository) UpdateVote(ctx context.Context, title, artist, voter string, rating models.RatingType) error {
	query := `
		UPDATE song_ratings
		SET rating_type = $1, created_at = CURRENT_TIMESTAMP
		WHERE song_title = $2 AND song_artist = $3 AND user_ip = $4
	`

	result, err := r.db.ExecContext(ctx, query, string(rating), title, artist, voter)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
