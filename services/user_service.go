package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/repositories"
	"github.com/blogem/radiocalco/userctx"
)

// UserService interface defines business logic for users
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, form *models.UserForm) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, form *models.UserForm) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (*models.User, error)
}

// userService implements UserService interface
type userService struct {
	userRepo repositories.UserRepository
	audit    AuditService
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, audit AuditService) UserService {
	return &userService{
		userRepo: userRepo,
		audit:    audit,
	}
}

// GetAllUsers retrieves all users, newest first
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user ID %d: %w", id, ErrInvalidID)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("failed to get user", err)
	}
	return user, nil
}

// CreateUser creates a new user and records a CREATE audit entry
func (s *userService) CreateUser(ctx context.Context, form *models.UserForm) (*models.User, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, missingFields(errs)
	}

	user := &models.User{
		Name:  form.Name,
		Email: form.Email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, translateStoreError("failed to create user", err)
	}

	s.audit.Record(ctx, AuditEvent{
		Action:        models.AuditCreate,
		EntityType:    models.EntityUser,
		EntityID:      user.ID,
		ActorName:     user.Name,
		ActorEmail:    user.Email,
		Changes:       form.Fields(),
		SourceAddress: userctx.GetClientAddress(ctx),
	})

	return user, nil
}

// UpdateUser replaces a user's name and email and records the before/after values
func (s *userService) UpdateUser(ctx context.Context, id int64, form *models.UserForm) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user ID %d: %w", id, ErrInvalidID)
	}
	if errs := form.Validate(); errs.HasErrors() {
		return nil, missingFields(errs)
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("failed to update user", err)
	}

	user := &models.User{
		ID:    id,
		Name:  form.Name,
		Email: form.Email,
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, translateStoreError("failed to update user", err)
	}

	s.audit.Record(ctx, AuditEvent{
		Action:     models.AuditUpdate,
		EntityType: models.EntityUser,
		EntityID:   id,
		ActorName:  user.Name,
		ActorEmail: user.Email,
		Changes: models.AuditChange{
			Before: existing.Fields(),
			After:  form.Fields(),
		},
		SourceAddress: userctx.GetClientAddress(ctx),
	})

	return user, nil
}

// DeleteUser removes a user and records a snapshot of the deleted row
func (s *userService) DeleteUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user ID %d: %w", id, ErrInvalidID)
	}

	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateStoreError("failed to delete user", err)
	}

	s.audit.Record(ctx, AuditEvent{
		Action:        models.AuditDelete,
		EntityType:    models.EntityUser,
		EntityID:      user.ID,
		ActorName:     user.Name,
		ActorEmail:    user.Email,
		Changes:       user.Fields(),
		SourceAddress: userctx.GetClientAddress(ctx),
	})

	return user, nil
}

// translateStoreError maps repository sentinels to service errors
func translateStoreError(msg string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case errors.Is(err, repositories.ErrDuplicate):
		return fmt.Errorf("%s: %w", msg, ErrDuplicateEmail)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func missingFields(errs models.ValidationErrors) error {
	return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(errs.Fields(), ", "))
}
