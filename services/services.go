package services

import (
	"github.com/sirupsen/logrus"

	"github.com/blogem/radiocalco/repositories"
)

// Services holds all service instances
type Services struct {
	Users    UserService
	Students StudentService
	Ratings  RatingService
	Audit    AuditService
	Health   HealthService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, log logrus.FieldLogger, metrics *Metrics) *Services {
	audit := NewAuditService(repos.Audit, log.WithField("component", "audit"), metrics)

	return &Services{
		Users:    NewUserService(repos.Users, audit),
		Students: NewStudentService(repos.Students, audit),
		Ratings:  NewRatingService(repos.Ratings, log.WithField("component", "ratings"), metrics),
		Audit:    audit,
		Health:   NewHealthService(repos.Health),
	}
}
