package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blogem/radiocalco/controllers"
	"github.com/blogem/radiocalco/database"
	"github.com/blogem/radiocalco/repositories"
	"github.com/blogem/radiocalco/router"
	"github.com/blogem/radiocalco/services"
)

func init() {
	f := NewServerFlags()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := database.Initialize(ctx, cfg.Database.Driver, cfg.DSN())
			if err != nil {
				return errors.WithMessage(err, "could not initialize database")
			}
			defer db.Close()

			logger := log.StandardLogger()

			var registry *prometheus.Registry
			if cfg.MetricsEnabled {
				registry = prometheus.NewRegistry()
				registry.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
					collectors.NewDBStatsCollector(db.DB, db.Driver),
				)
			}

			repos := repositories.NewRepositories(db.DB)
			srvs := services.NewServices(repos, logger, services.NewMetrics(registry))
			ctrl := controllers.NewControllers(srvs, logger, controllers.Options{
				ExposeErrorDetail: cfg.ExposeErrorDetail,
			})

			server := &http.Server{
				Addr: cfg.Addr(),
				Handler: router.New(ctrl, logger, router.Options{
					StaticDir:      cfg.StaticDir,
					RequestTimeout: cfg.RequestTimeout,
					Registry:       registry,
				}),
			}

			errCh := make(chan error, 1)
			go func() {
				log.WithFields(log.Fields{
					"addr":   server.Addr,
					"driver": cfg.Database.Driver,
				}).Info("radiocalco server listening")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return errors.WithMessage(err, "server failed")
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return errors.WithMessage(err, "graceful shutdown failed")
			}
			return nil
		},
	}

	f.BindFlags(cmd.Flags())
	rootCmd.AddCommand(cmd)
}
