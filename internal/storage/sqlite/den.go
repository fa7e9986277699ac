// Package sqlite provides a single-file den store on the pure Go SQLite
// driver. Each den is one row holding its record as a JSON document.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/cory-johannsen/goblinden/internal/storage"
)

// DenStore persists dens to a SQLite database file.
type DenStore struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and ensures the schema.
//
// Precondition: path must be non-empty.
// Postcondition: Returns a ready DenStore or a non-nil error.
func Open(path string) (*DenStore, error) {
	if path == "" {
		return nil, errors.New("sqlite: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS dens (
		id      TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating dens table: %w", err)
	}
	return &DenStore{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *DenStore) Path() string {
	return s.path
}

// Close closes the database.
func (s *DenStore) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *DenStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Create inserts a new den.
//
// Precondition: rec.ID must not be uuid.Nil.
// Postcondition: Returns storage.ErrDenExists if rec.ID is taken.
func (s *DenStore) Create(ctx context.Context, rec storage.DenRecord) error {
	if rec.ID == uuid.Nil {
		return fmt.Errorf("creating den: nil id")
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding den %s: %w", rec.ID, err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO dens (id, payload) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`,
		rec.ID.String(), payload,
	)
	if err != nil {
		return fmt.Errorf("inserting den: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrDenExists
	}
	return nil
}

// Save replaces a stored den.
//
// Postcondition: Returns storage.ErrDenNotFound if no den has rec.ID.
func (s *DenStore) Save(ctx context.Context, rec storage.DenRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding den %s: %w", rec.ID, err)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE dens SET payload = ? WHERE id = ?`, payload, rec.ID.String())
	if err != nil {
		return fmt.Errorf("updating den: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrDenNotFound
	}
	return nil
}

// Load retrieves a den by ID.
//
// Postcondition: Returns storage.ErrDenNotFound if no den has id.
func (s *DenStore) Load(ctx context.Context, id uuid.UUID) (storage.DenRecord, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM dens WHERE id = ?`, id.String()).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DenRecord{}, storage.ErrDenNotFound
		}
		return storage.DenRecord{}, fmt.Errorf("querying den: %w", err)
	}
	var rec storage.DenRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return storage.DenRecord{}, fmt.Errorf("decoding den %s: %w", id, err)
	}
	rec.ID = id
	return rec, nil
}

// List returns the IDs of all stored dens in insertion order.
func (s *DenStore) List(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM dens ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing dens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning den id: %w", err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing den id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Delete removes a den.
//
// Postcondition: Returns storage.ErrDenNotFound if no den has id.
func (s *DenStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM dens WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting den: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrDenNotFound
	}
	return nil
}
