package router

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/blogem/radiocalco/controllers"
	"github.com/blogem/radiocalco/middleware"
)

// Options configures the router
type Options struct {
	// StaticDir is served at / when it exists
	StaticDir      string
	RequestTimeout time.Duration
	// Registry enables /metrics and HTTP instrumentation when set
	Registry *prometheus.Registry
}

// New configures all routes
func New(ctrl *controllers.Controllers, log logrus.FieldLogger, opts Options) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}
	r.Use(middleware.ClientAddress)

	instrument := func(string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.Registry != nil {
		httpMetrics := middleware.NewHTTPMetrics(opts.Registry)
		instrument = httpMetrics.Handler

		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))
	}

	r.Route("/api", func(r chi.Router) {
		r.With(instrument("/api")).Get("/health", ctrl.Health.Health)
		r.With(instrument("/api")).Get("/test-db", ctrl.Health.TestDB)

		r.Route("/users", func(r chi.Router) {
			r.Use(instrument("/api/users"))
			r.Get("/", ctrl.Users.Index)
			r.Post("/", ctrl.Users.Create)
			r.Get("/{id}", ctrl.Users.Show)
			r.Put("/{id}", ctrl.Users.Update)
			r.Delete("/{id}", ctrl.Users.Delete)
		})

		r.Route("/students", func(r chi.Router) {
			r.Use(instrument("/api/students"))
			r.Get("/", ctrl.Students.Index)
			r.Post("/", ctrl.Students.Create)
			r.Get("/{id}", ctrl.Students.Show)
			r.Put("/{id}", ctrl.Students.Update)
			r.Delete("/{id}", ctrl.Students.Delete)
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Use(instrument("/api/ratings"))
			r.Get("/{title}/{artist}", ctrl.Ratings.Show)
			r.Post("/", ctrl.Ratings.Submit)
		})

		r.With(instrument("/api/audit")).Get("/audit", ctrl.Audit.Index)
	})

	r.Get("/audit", ctrl.Audit.Page)

	// Static frontend, if present
	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
		} else {
			log.WithField("static_dir", opts.StaticDir).Debug("static directory not found, frontend disabled")
		}
	}

	return r
}
