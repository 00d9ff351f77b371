package models

import (
	"time"
)

// Envelope status values carried by every API response
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Fields returns the names of the invalid fields
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, len(ve))
	for i, err := range ve {
		fields[i] = err.Field
	}
	return fields
}

// Response types

type ErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type ConnectionInfo struct {
	CurrentTime time.Time `json:"current_time"`
}

type TestDBResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    ConnectionInfo `json:"data"`
}

type UserListResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Users  []User `json:"users"`
}

type UserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

type StudentListResponse struct {
	Status   string    `json:"status"`
	Count    int       `json:"count"`
	Students []Student `json:"students"`
}

type StudentResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Student Student `json:"student"`
}

type RatingSummaryResponse struct {
	Status     string       `json:"status"`
	Ratings    RatingCounts `json:"ratings"`
	UserRating *RatingType  `json:"userRating"`
}

type AuditListResponse struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Logs   []AuditLogEntry `json:"logs"`
}
