package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/radiocalco/config"
)

func TestServerFlagsOverrideOnlyWhenSet(t *testing.T) {
	f := NewServerFlags()
	cmd := &cobra.Command{Use: "serve"}
	f.BindFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "9090", "--db-driver", "pgx"}))

	cfg := &config.Config{
		Port:       3000,
		ListenAddr: "127.0.0.1:3000",
		StaticDir:  "public",
		Database:   config.DatabaseConfig{Driver: "sqlite3", URL: "keep.db"},
	}
	f.Apply(cmd, cfg)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "keep.db", cfg.Database.URL)
	assert.Equal(t, "public", cfg.StaticDir)
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", "")
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	rootCmd.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "none.env"), "--database-url", dbPath})
	require.NoError(t, rootCmd.Execute())

	// a second run finds nothing to do
	rootCmd.SetArgs([]string{"migrate", "--env-file", filepath.Join(t.TempDir(), "none.env"), "--database-url", dbPath})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, dbPath)
}

func TestInvalidLogLevel(t *testing.T) {
	rootCmd.SetArgs([]string{"migrate", "--log-level", "loud", "--env-file", filepath.Join(t.TempDir(), "none.env")})
	assert.ErrorContains(t, rootCmd.Execute(), "cannot parse log-level")
}
