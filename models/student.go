package models

import (
	"time"
)

// Student represents a registered student. Major is optional.
type Student struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Grade     string    `json:"grade" db:"grade"`
	Major     *string   `json:"major" db:"major"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StudentForm represents request data for registering/updating students
type StudentForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Grade string `json:"grade"`
	Major string `json:"major"`
}

// StudentFields is the mutable part of a student as recorded in audit changes
type StudentFields struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Grade string  `json:"grade"`
	Major *string `json:"major"`
}

// Validate validates the student form data
func (f *StudentForm) Validate() ValidationErrors {
	var errors ValidationErrors

	if f.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "Name is required"})
	}

	if f.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "Email is required"})
	}

	if f.Grade == "" {
		errors = append(errors, ValidationError{Field: "grade", Message: "Grade is required"})
	}

	return errors
}

// MajorOrNil returns nil for an empty major so it is stored as NULL
func (f *StudentForm) MajorOrNil() *string {
	if f.Major == "" {
		return nil
	}
	major := f.Major
	return &major
}

// Fields returns the submitted mutable fields
func (f *StudentForm) Fields() StudentFields {
	return StudentFields{Name: f.Name, Email: f.Email, Grade: f.Grade, Major: f.MajorOrNil()}
}

// Fields returns the student's mutable fields
func (s *Student) Fields() StudentFields {
	return StudentFields{Name: s.Name, Email: s.Email, Grade: s.Grade, Major: s.Major}
}
