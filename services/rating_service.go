package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/repositories"
)

// RatingService interface defines the song voting rules
type RatingService interface {
	GetRatings(ctx context.Context, title, artist, voter string) (*models.RatingSummary, error)
	SubmitRating(ctx context.Context, form *models.RatingForm, voter string) (models.RatingOutcome, error)
}

type ratingService struct {
	ratingRepo repositories.RatingRepository
	log        logrus.FieldLogger
	metrics    *Metrics
}

// NewRatingService creates a new rating service
func NewRatingService(ratingRepo repositories.RatingRepository, log logrus.FieldLogger, metrics *Metrics) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		log:        log,
		metrics:    metrics,
	}
}

// GetRatings returns the up/down totals for a song and the voter's own vote, if any
func (s *ratingService) GetRatings(ctx context.Context, title, artist, voter string) (*models.RatingSummary, error) {
	counts, err := s.ratingRepo.CountBySong(ctx, title, artist)
	if err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}

	summary := &models.RatingSummary{Ratings: counts}

	vote, err := s.ratingRepo.FindVote(ctx, title, artist, voter)
	switch {
	case err == nil:
		summary.UserRating = &vote.RatingType
	case errors.Is(err, repositories.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to look up vote: %w", err)
	}

	return summary, nil
}

// SubmitRating records a vote. A voter has at most one vote per song: a new
// vote is inserted, a changed vote replaces the old one, and repeating the
// same vote is rejected with ErrDuplicateVote.
func (s *ratingService) SubmitRating(ctx context.Context, form *models.RatingForm, voter string) (models.RatingOutcome, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return "", missingFields(errs)
	}

	rating := models.RatingType(form.Rating)
	if !rating.Valid() {
		return "", fmt.Errorf("rating %q: %w", form.Rating, ErrInvalidRating)
	}

	logger := s.log.WithFields(logrus.Fields{
		"title":  form.Title,
		"artist": form.Artist,
		"rating": rating,
	})

	existing, err := s.ratingRepo.FindVote(ctx, form.Title, form.Artist, voter)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("failed to look up vote: %w", err)
	}

	if existing == nil {
		vote := &models.SongRating{
			SongTitle:  form.Title,
			SongArtist: form.Artist,
			RatingType: rating,
			UserIP:     voter,
		}
		if err := s.ratingRepo.Create(ctx, vote); err != nil {
			return "", fmt.Errorf("failed to submit rating: %w", err)
		}
		s.metrics.RatingSubmissions.WithLabelValues(string(models.RatingSubmitted)).Inc()
		logger.Debug("rating submitted")
		return models.RatingSubmitted, nil
	}

	if existing.RatingType == rating {
		s.metrics.RatingSubmissions.WithLabelValues("duplicate").Inc()
		return "", fmt.Errorf("rating %q: %w", rating, ErrDuplicateVote)
	}

	if err := s.ratingRepo.UpdateVote(ctx, form.Title, form.Artist, voter, rating); err != nil {
		return "", fmt.Errorf("failed to update rating: %w", err)
	}
	s.metrics.RatingSubmissions.WithLabelValues(string(models.RatingUpdated)).Inc()
	logger.Debug("rating updated")
	return models.RatingUpdated, nil
}
