package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed migrations
var migrationFiles embed.FS

// Migration represents a database migration
type Migration struct {
	Version  string
	Filename string
	SQL      string
}

// RunMigrations executes all pending migrations for the database dialect
// and returns the versions it applied
func RunMigrations(ctx context.Context, db *DB) ([]string, error) {
	// Create migrations table if it doesn't exist
	if err := createMigrationsTable(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := LoadMigrations(db.Dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := getAppliedMigrations(ctx, db.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	var ran []string
	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}

		if err := runMigration(ctx, db.DB, migration); err != nil {
			return ran, fmt.Errorf("failed to run migration %s: %w", migration.Filename, err)
		}

		if err := recordMigration(ctx, db.DB, migration.Version); err != nil {
			return ran, fmt.Errorf("failed to record migration %s: %w", migration.Filename, err)
		}
		ran = append(ran, migration.Version)
	}

	return ran, nil
}

// createMigrationsTable creates the migrations tracking table
func createMigrationsTable(ctx context.Context, db *DB) error {
	appliedAt := "DATETIME DEFAULT CURRENT_TIMESTAMP"
	if db.Dialect == DialectPostgres {
		appliedAt = "TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP"
	}

	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version TEXT PRIMARY KEY,
			applied_at ` + appliedAt + `
		);
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

// LoadMigrations loads the embedded migration files for a dialect, sorted by version
func LoadMigrations(dialect Dialect) ([]Migration, error) {
	dir := path.Join("migrations", string(dialect))

	files, err := fs.Glob(migrationFiles, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no migration files found in %s", dir)
	}

	migrations := make([]Migration, 0, len(files))
	for _, file := range files {
		content, err := migrationFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		filename := path.Base(file)
		migrations = append(migrations, Migration{
			Version:  strings.TrimSuffix(filename, ".sql"),
			Filename: filename,
			SQL:      string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// getAppliedMigrations returns the set of already applied migration versions
func getAppliedMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		versions[version] = true
	}

	return versions, rows.Err()
}

// runMigration executes a single migration
func runMigration(ctx context.Context, db *sql.DB, migration Migration) error {
	_, err := db.ExecContext(ctx, migration.SQL)
	return err
}

// recordMigration marks a migration as applied
func recordMigration(ctx context.Context, db *sql.DB, version string) error {
	_, err := db.ExecContext(ctx, "INSERT INTO migrations (version) VALUES ($1)", version)
	return err
}
