package services

import (
	"context"
	"fmt"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/repositories"
	"github.com/blogem/radiocalco/userctx"
)

// StudentService interface defines business logic for students
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	RegisterStudent(ctx context.Context, form *models.StudentForm) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, form *models.StudentForm) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
}

type studentService struct {
	studentRepo repositories.StudentRepository
	audit       AuditService
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.StudentRepository, audit AuditService) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		audit:       audit,
	}
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	return students, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("student ID %d: %w", id, ErrInvalidID)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("failed to get student", err)
	}
	return student, nil
}

// RegisterStudent creates a student. An empty major is stored as NULL.
func (s *studentService) RegisterStudent(ctx context.Context, form *models.StudentForm) (*models.Student, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, missingFields(errs)
	}

	student := &models.Student{
		Name:  form.Name,
		Email: form.Email,
		Grade: form.Grade,
		Major: form.MajorOrNil(),
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, translateStoreError("failed to register student", err)
	}

	s.audit.Record(ctx, AuditEvent{
		Action:        models.AuditCreate,
		EntityType:    models.EntityStudent,
		EntityID:      student.ID,
		ActorName:     student.Name,
		ActorEmail:    student.Email,
		Changes:       form.Fields(),
		SourceAddress: userctx.GetClientAddress(ctx),
	})

	return student, nil
}

// UpdateStudent replaces all mutable fields. Omitting major clears it.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, form *models.StudentForm) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("student ID %d: %w", id, ErrInvalidID)
	}
	if errs := form.Validate(); errs.HasErrors() {
		return nil, missingFields(errs)
	}

	existing, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError("failed to update student", err)
	}

	student := &models.Student{
		ID:    id,
		Name:  form.Name,
		Email: form.Email,
		Grade: form.Grade,
		Major: form.MajorOrNil(),
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, translateStoreError("failed to update student", err)
	}

	s.audit.Record(ctx, AuditEvent{
		Action:     models.AuditUpdate,
		EntityType: models.EntityStudent,
		EntityID:   id,
		ActorName:  student.Name,
		ActorEmail: student.Email,
		Changes: models.AuditChange{
			Before: existing.Fields(),
			After:  form.Fields(),
		},
		SourceAddress: userctx.GetClientAddress(ctx),
	})

	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("student ID %d: %w", id, ErrInvalidID)
	}

	student, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateStoreError("failed to delete student", err)
	}

	s.audit.Record(ctx, AuditEvent{
		Action:        models.AuditDelete,
		EntityType:    models.EntityStudent,
		EntityID:      student.ID,
		ActorName:     student.Name,
		ActorEmail:    student.Email,
		Changes:       student.Fields(),
		SourceAddress: userctx.GetClientAddress(ctx),
	})

	return student, nil
}
