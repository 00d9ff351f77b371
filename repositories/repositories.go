package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users    UserRepository
	Students StudentRepository
	Ratings  RatingRepository
	Audit    AuditRepository
	Health   HealthRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Students: NewStudentRepository(db),
		Ratings:  NewRatingRepository(db),
		Audit:    NewAuditRepository(db),
		Health:   NewHealthRepository(db),
	}
}
