package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/blogem/radiocalco/config"
)

// DatabaseFlags override the database settings from the environment
type DatabaseFlags struct {
	Driver string
	DSN    string
}

func NewDatabaseFlags() *DatabaseFlags {
	return &DatabaseFlags{}
}

func (f *DatabaseFlags) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Driver, "db-driver", f.Driver, "Database driver: sqlite3, pgx or postgres (default DB_DRIVER)")
	fs.StringVar(&f.DSN, "database-url", f.DSN, "Database connection string (default DATABASE_URL)")
}

// Apply copies explicitly set flags onto cfg
func (f *DatabaseFlags) Apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("db-driver") {
		cfg.Database.Driver = f.Driver
	}
	if cmd.Flags().Changed("database-url") {
		cfg.Database.URL = f.DSN
	}
}

// ServerFlags override the HTTP settings from the environment
type ServerFlags struct {
	DBFlags   *DatabaseFlags
	Port      int
	StaticDir string
}

func NewServerFlags() *ServerFlags {
	return &ServerFlags{
		DBFlags: NewDatabaseFlags(),
	}
}

func (f *ServerFlags) BindFlags(fs *pflag.FlagSet) {
	f.DBFlags.BindFlags(fs)
	fs.IntVar(&f.Port, "port", f.Port, "The port to serve the API on (default PORT or 3000)")
	fs.StringVar(&f.StaticDir, "static-dir", f.StaticDir, "Directory of frontend files served at / (default STATIC_DIR or public)")
}

// Apply copies explicitly set flags onto cfg
func (f *ServerFlags) Apply(cmd *cobra.Command, cfg *config.Config) {
	f.DBFlags.Apply(cmd, cfg)
	if cmd.Flags().Changed("port") {
		cfg.Port = f.Port
		cfg.ListenAddr = ""
	}
	if cmd.Flags().Changed("static-dir") {
		cfg.StaticDir = f.StaticDir
	}
}
