package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/radiocalco/database"
)

// HealthRepository runs connectivity probes against the store
type HealthRepository interface {
	Now(ctx context.Context) (time.Time, error)
}

type healthRepository struct {
	db *sql.DB
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(db *sql.DB) HealthRepository {
	return &healthRepository{db: db}
}

// Now returns the store's current time with one round trip
func (r *healthRepository) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.db.QueryRowContext(ctx, "SELECT CURRENT_TIMESTAMP").Scan(database.ScanTime(&now)); err != nil {
		return time.Time{}, fmt.Errorf("failed to query current time: %w", err)
	}
	return now, nil
}
