package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/radiocalco/database"
	"github.com/blogem/radiocalco/models"
)

// StudentRepository interface defines student database operations
type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (*models.Student, error)
}

// studentRepository implements StudentRepository interface
type studentRepository struct {
	db *sql.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *sql.DB) StudentRepository {
	return &studentRepository{db: db}
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var student models.Student
	var major sql.NullString

	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Grade,
		&major,
		database.ScanTime(&student.CreatedAt),
	)
	if err != nil {
		return nil, err
	}

	// Convert NULL major to nil
	if major.Valid {
		student.Major = &major.String
	}

	return &student, nil
}

// GetAll retrieves all students, newest first
func (r *studentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, email, grade, major, created_at
		FROM students
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, *student)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT id, name, email, grade, major, created_at FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return student, nil
}

// Create inserts a new student and fills in the generated ID and timestamp
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, grade, major)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, student.Name, student.Email, student.Grade, student.Major).
		Scan(&student.ID, database.ScanTime(&student.CreatedAt))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", student.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of an existing student
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, grade = $3, major = $4
		WHERE id = $5
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		student.Name,
		student.Email,
		student.Grade,
		student.Major,
		student.ID,
	).Scan(database.ScanTime(&student.CreatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("student with ID %d: %w", student.ID, ErrNotFound)
	}
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", student.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to update student: %w", err)
	}

	return nil
}

// Delete deletes a student by ID and returns the deleted row
func (r *studentRepository) Delete(ctx context.Context, id int64) (*models.Student, error) {
	query := `DELETE FROM students WHERE id = $1 RETURNING id, name, email, grade, major, created_at`

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete student: %w", err)
	}

	return student, nil
}
