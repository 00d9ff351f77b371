package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/repositories"
)

// AuditEvent describes one entity mutation to record
type AuditEvent struct {
	Action        models.AuditAction
	EntityType    string
	EntityID      int64
	ActorName     string
	ActorEmail    string
	Changes       interface{}
	SourceAddress string
}

// AuditService records entity mutations and lists the audit log
type AuditService interface {
	// Record writes the event on a best-effort basis. Failures are logged
	// and published on Failures, never returned.
	Record(ctx context.Context, event AuditEvent)
	Failures() <-chan error
	GetRecentEntries(ctx context.Context) ([]models.AuditLogEntry, error)
}

const auditFailureBuffer = 32

type auditService struct {
	auditRepo repositories.AuditRepository
	log       logrus.FieldLogger
	metrics   *Metrics
	failures  chan error
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository, log logrus.FieldLogger, metrics *Metrics) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		log:       log,
		metrics:   metrics,
		failures:  make(chan error, auditFailureBuffer),
	}
}

// Record appends one audit entry. It runs after the primary write and in
// the caller's goroutine, so the row is visible once the request returns.
func (s *auditService) Record(ctx context.Context, event AuditEvent) {
	entry := &models.AuditLogEntry{
		EventID:    uuid.NewString(),
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		UserName:   event.ActorName,
		UserEmail:  event.ActorEmail,
		IPAddress:  event.SourceAddress,
	}

	logger := s.log.WithFields(logrus.Fields{
		"action":      event.Action,
		"entity_type": event.EntityType,
		"entity_id":   event.EntityID,
		"event_id":    entry.EventID,
	})

	changes, err := json.Marshal(event.Changes)
	if err != nil {
		s.fail(logger, fmt.Errorf("failed to encode audit changes: %w", err))
		return
	}
	entry.Changes = changes

	// The primary write already succeeded; a client hanging up must not drop its audit row.
	if err := s.auditRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.fail(logger, err)
		return
	}

	s.metrics.AuditRecords.WithLabelValues(string(event.Action), event.EntityType).Inc()
	logger.Debug("audit entry recorded")
}

func (s *auditService) fail(logger logrus.FieldLogger, err error) {
	s.metrics.AuditFailures.Inc()
	logger.WithError(err).Error("audit logging failed")

	select {
	case s.failures <- err:
	default:
		// nobody is draining; drop it
	}
}

// Failures exposes audit write errors to an optional observer
func (s *auditService) Failures() <-chan error {
	return s.failures
}

// GetRecentEntries returns the newest audit entries, capped at models.MaxAuditEntries
func (s *auditService) GetRecentEntries(ctx context.Context) ([]models.AuditLogEntry, error) {
	entries, err := s.auditRepo.List(ctx, models.MaxAuditEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
