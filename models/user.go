package models

import (
	"time"
)

// User represents a registered user
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserForm represents request data for creating/updating users
type UserForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserFields is the mutable part of a user as recorded in audit changes
type UserFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate validates the user form data
func (f *UserForm) Validate() ValidationErrors {
	var errors ValidationErrors

	if f.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "Name is required"})
	}

	if f.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "Email is required"})
	}

	return errors
}

// Fields returns the submitted mutable fields
func (f *UserForm) Fields() UserFields {
	return UserFields{Name: f.Name, Email: f.Email}
}

// Fields returns the user's mutable fields
func (u *User) Fields() UserFields {
	return UserFields{Name: u.Name, Email: u.Email}
}
