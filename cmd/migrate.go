package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blogem/radiocalco/database"
)

func init() {
	f := NewDatabaseFlags()

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			db, err := database.Open(cmd.Context(), cfg.Database.Driver, cfg.DSN())
			if err != nil {
				return errors.WithMessage(err, "could not connect to database")
			}
			defer db.Close()

			applied, err := database.RunMigrations(cmd.Context(), db)
			if err != nil {
				return errors.WithMessage(err, "could not apply migrations")
			}

			if len(applied) == 0 {
				log.Info("database is up to date")
				return nil
			}
			for _, version := range applied {
				log.WithField("version", version).Info("applied migration")
			}
			return nil
		},
	}

	f.BindFlags(cmd.Flags())
	rootCmd.AddCommand(cmd)
}
