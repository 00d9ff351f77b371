package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Initialize(context.Background(), DriverSQLite, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDialectFor(t *testing.T) {
	dialect, err := DialectFor(DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, DialectSQLite, dialect)

	for _, driver := range []string{DriverPgx, DriverPostgres} {
		dialect, err := DialectFor(driver)
		require.NoError(t, err)
		assert.Equal(t, DialectPostgres, dialect)
	}

	_, err = DialectFor("mysql")
	assert.Error(t, err)
}

func TestLoadMigrations(t *testing.T) {
	for _, dialect := range []Dialect{DialectSQLite, DialectPostgres} {
		migrations, err := LoadMigrations(dialect)
		require.NoError(t, err)
		require.NotEmpty(t, migrations)
		assert.Equal(t, "001_initial_schema", migrations[0].Version)
		assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS audit_log")
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	ran, err := RunMigrations(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, ran, "migrations already applied by Initialize should not run again")

	for _, table := range []string{"users", "students", "song_ratings", "audit_log"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err, "table %s should exist", table)
		assert.Zero(t, count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec("INSERT INTO users (name, email) VALUES ($1, $2)", "A", "a@x.com")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO users (name, email) VALUES ($1, $2)", "B", "a@x.com")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", err)))

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestScanTime(t *testing.T) {
	db := openTestDB(t)

	var now time.Time
	err := db.QueryRow("SELECT CURRENT_TIMESTAMP").Scan(ScanTime(&now))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), now, time.Minute)

	var parsed time.Time
	require.NoError(t, ScanTime(&parsed).Scan("2025-12-13 10:30:00"))
	assert.Equal(t, time.Date(2025, 12, 13, 10, 30, 0, 0, time.UTC), parsed)

	assert.Error(t, ScanTime(&parsed).Scan(42))
}
