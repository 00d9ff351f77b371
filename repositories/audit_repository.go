package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/radiocalco/database"
	"github.com/blogem/radiocalco/models"
)

// AuditRepository handles audit log persistence. Entries are never updated or deleted.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (event_id, action, entity_type, entity_id, user_name, user_email, changes, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	changes := string(entry.Changes)
	if changes == "" {
		changes = "{}"
	}

	err := r.db.QueryRowContext(ctx, query,
		entry.EventID,
		string(entry.Action),
		entry.EntityType,
		entry.EntityID,
		entry.UserName,
		entry.UserEmail,
		changes,
		entry.IPAddress,
	).Scan(&entry.ID, database.ScanTime(&entry.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return nil
}

// List returns the newest audit entries, at most limit of them
func (r *auditRepository) List(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	query := `
		SELECT id, event_id, action, entity_type, entity_id, user_name, user_email, changes, ip_address, created_at
		FROM audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0)
	for rows.Next() {
		var entry models.AuditLogEntry
		var userName, userEmail, ipAddress sql.NullString
		var changes []byte

		err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&userName,
			&userEmail,
			&changes,
			&ipAddress,
			database.ScanTime(&entry.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		entry.UserName = userName.String
		entry.UserEmail = userEmail.String
		entry.IPAddress = ipAddress.String
		if len(changes) == 0 {
			changes = []byte("{}")
		}
		entry.Changes = changes

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}
