package services

import "errors"

// Domain errors returned by the services. Controllers map them to HTTP statuses.
var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrInvalidID      = errors.New("invalid identifier")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrInvalidRating  = errors.New("rating must be up or down")
	ErrDuplicateVote  = errors.New("already rated with the same value")
)
