package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
)

// HTTPMetrics records request durations and in-flight requests on reg,
// labelled per route group.
type HTTPMetrics struct {
	mdlw httpmetrics.Middleware
}

// NewHTTPMetrics registers the HTTP collectors on reg
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		mdlw: httpmetrics.New(httpmetrics.Config{
			Recorder: metrics.NewRecorder(metrics.Config{
				Registry: reg,
				Prefix:   "radiocalco",
			}),
			GroupedStatus: true,
		}),
	}
}

// Handler instruments the routes mounted under handlerID
func (m *HTTPMetrics) Handler(handlerID string) func(http.Handler) http.Handler {
	return std.HandlerProvider(handlerID, m.mdlw)
}
