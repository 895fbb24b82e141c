// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// Each registration is stored as one row. The id and created_at columns
// carry the creation metadata; the rowid keeps insertion order so
// listings come back in the order submissions arrived.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/registration-form/internal/config"
	"github.com/aanand-mishra/registration-form/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB

	// now and newID are replaceable in tests.
	now   func() time.Time
	newID func() string
}

// New opens the SQLite database at cfg.StoragePath, creates the registrations
// table if it does not already exist, and returns a ready-to-use
// *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent: safe on every startup.
	//
	// Schema:
	//   id         — UUID assigned on insert
	//   name       — registrant's name, as submitted
	//   email      — registrant's email, as submitted (no format check)
	//   created_at — insert time, UTC, RFC 3339 with nanoseconds
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS registrations (
			id         TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{
		Db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// CreateRegistration inserts a new row into the registrations table.
// Values go through ? placeholders, never string concatenation.
func (s *SQLite) CreateRegistration(ctx context.Context, reg types.Registration) error {
	stmt, err := s.Db.PrepareContext(ctx,
		"INSERT INTO registrations (id, name, email, created_at) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("CreateRegistration: prepare: %w", err)
	}
	defer stmt.Close()

	createdAt := s.now().Format(time.RFC3339Nano)
	if _, err := stmt.ExecContext(ctx, s.newID(), reg.Name, reg.Email, createdAt); err != nil {
		return fmt.Errorf("CreateRegistration: exec: %w", err)
	}

	return nil
}

// GetRegistrations returns all rows ordered by insertion.
func (s *SQLite) GetRegistrations(ctx context.Context) ([]types.Registration, error) {
	stmt, err := s.Db.PrepareContext(ctx,
		"SELECT id, name, email, created_at FROM registrations ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("GetRegistrations: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetRegistrations: query: %w", err)
	}
	defer rows.Close()

	registrations := make([]types.Registration, 0)

	for rows.Next() {
		var (
			reg       types.Registration
			createdAt string
		)

		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("GetRegistrations: scan row: %w", err)
		}

		reg.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("GetRegistrations: parse created_at %q: %w", createdAt, err)
		}

		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetRegistrations: rows iteration: %w", err)
	}

	return registrations, nil
}
