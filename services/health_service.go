package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/radiocalco/repositories"
)

// HealthService reports liveness and database connectivity
type HealthService interface {
	Now() time.Time
	DatabaseTime(ctx context.Context) (time.Time, error)
}

type healthService struct {
	healthRepo repositories.HealthRepository
	clock      func() time.Time
}

// NewHealthService creates a new health service
func NewHealthService(healthRepo repositories.HealthRepository) HealthService {
	return &healthService{
		healthRepo: healthRepo,
		clock:      time.Now,
	}
}

// Now returns the server's wall clock time
func (s *healthService) Now() time.Time {
	return s.clock().UTC()
}

// DatabaseTime asks the database for its current time
func (s *healthService) DatabaseTime(ctx context.Context) (time.Time, error) {
	now, err := s.healthRepo.Now(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("database connection failed: %w", err)
	}
	return now, nil
}
