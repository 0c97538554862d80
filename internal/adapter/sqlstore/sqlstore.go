// Package sqlstore keeps model artifacts in a SQL table, on PostgreSQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"diabetesai/internal/domain"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB wraps a *sql.DB and implements domain.ArtifactStore.
type DB struct {
	sql    *sql.DB
	driver string
}

var _ domain.ArtifactStore = (*DB)(nil)

// Open connects with the given driver, pings, and runs migrations.
func Open(driver, dsn string) (*DB, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	s, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		s.SetMaxOpenConns(1)
	} else {
		s.SetMaxOpenConns(10)
		s.SetMaxIdleConns(5)
	}
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s, driver: driver}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	blob := "BYTEA"
	if d.driver == DriverSQLite {
		blob = "BLOB"
	}
	stmt := "CREATE TABLE IF NOT EXISTS model_artifacts (name TEXT PRIMARY KEY, data " + blob + " NOT NULL, updated_at TIMESTAMP NOT NULL);"
	if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Artifact returns the named artifact.
func (d *DB) Artifact(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := d.sql.QueryRowContext(ctx,
		d.rebind("SELECT data FROM model_artifacts WHERE name = $1;"), name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrArtifactNotFound)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// PutArtifact inserts or replaces the named artifact.
func (d *DB) PutArtifact(ctx context.Context, name string, data []byte) error {
	_, err := d.sql.ExecContext(ctx,
		d.rebind("INSERT INTO model_artifacts(name, data, updated_at) VALUES($1, $2, $3) ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at;"),
		name, data, time.Now().UTC(),
	)
	return err
}

// ListArtifacts returns stored artifact names with their last update time.
func (d *DB) ListArtifacts(ctx context.Context) (map[string]time.Time, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT name, updated_at FROM model_artifacts ORDER BY name;")
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make(map[string]time.Time)
	for rows.Next() {
		var (
			name string
			at   time.Time
		)
		if err := rows.Scan(&name, &at); err != nil {
			return nil, err
		}
		out[name] = at
	}
	return out, rows.Err()
}

// rebind converts $N placeholders to ? for SQLite.
func (d *DB) rebind(query string) string {
	if d.driver != DriverSQLite {
		return query
	}
	for i := 9; i >= 1; i-- {
		query = strings.ReplaceAll(query, "$"+strconv.Itoa(i), "?")
	}
	return query
}
