package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "radiocalco"

// Metrics holds the domain counters exported by the services
type Metrics struct {
	RatingSubmissions *prometheus.CounterVec
	AuditRecords      *prometheus.CounterVec
	AuditFailures     prometheus.Counter
}

// NewMetrics creates the service counters and registers them on reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RatingSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rating_submissions_total",
			Help:      "Song rating submissions by outcome (submitted, updated, duplicate).",
		}, []string{"outcome"}),
		AuditRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "audit_records_total",
			Help:      "Audit log entries written, by action and entity type.",
		}, []string{"action", "entity_type"}),
		AuditFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "audit_failures_total",
			Help:      "Audit log entries that could not be written.",
		}),
	}
}
