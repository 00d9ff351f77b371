package models

import (
	"encoding/json"
	"time"
)

// AuditAction is the kind of mutation an audit entry records
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// Audited entity types
const (
	EntityUser    = "user"
	EntityStudent = "student"
)

// MaxAuditEntries caps how many entries the audit listing returns
const MaxAuditEntries = 1000

// AuditLogEntry represents a single entity mutation event.
// Entries are append-only.
type AuditLogEntry struct {
	ID         int64           `json:"id"`
	EventID    string          `json:"event_id"`
	Action     AuditAction     `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   int64           `json:"entity_id"`
	UserName   string          `json:"user_name"`
	UserEmail  string          `json:"user_email"`
	Changes    json.RawMessage `json:"changes"`
	IPAddress  string          `json:"ip_address"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuditChange is the before/after payload of an UPDATE entry
type AuditChange struct {
	Before interface{} `json:"before"`
	After  interface{} `json:"after"`
}
