package models

import "time"

// RatingType is a single vote value
type RatingType string

const (
	RatingUp   RatingType = "up"
	RatingDown RatingType = "down"
)

// Valid reports whether the rating is one of the allowed vote values
func (r RatingType) Valid() bool {
	return r == RatingUp || r == RatingDown
}

// SongRating is one voter's vote on one song
type SongRating struct {
	ID         int64      `json:"id" db:"id"`
	SongTitle  string     `json:"song_title" db:"song_title"`
	SongArtist string     `json:"song_artist" db:"song_artist"`
	RatingType RatingType `json:"rating_type" db:"rating_type"`
	UserIP     string     `json:"user_ip" db:"user_ip"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// RatingForm represents a vote submission
type RatingForm struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Rating string `json:"rating"`
}

// Validate checks that title, artist and rating are present
func (f *RatingForm) Validate() ValidationErrors {
	var errors ValidationErrors

	if f.Title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "Title is required"})
	}
	if f.Artist == "" {
		errors = append(errors, ValidationError{Field: "artist", Message: "Artist is required"})
	}
	if f.Rating == "" {
		errors = append(errors, ValidationError{Field: "rating", Message: "Rating is required"})
	}

	return errors
}

// RatingCounts holds the aggregate votes for a song
type RatingCounts struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// RatingSummary is the aggregate for a song plus the requesting voter's own vote
type RatingSummary struct {
	Ratings    RatingCounts `json:"ratings"`
	UserRating *RatingType  `json:"userRating"`
}

// RatingOutcome tells which branch a submission took
type RatingOutcome string

const (
	RatingSubmitted RatingOutcome = "submitted"
	RatingUpdated   RatingOutcome = "updated"
)
