package storage

import (
	"database/sql"
	"fmt"

	"livetv/internal/shared"
)

// SQLiteKV implements [KV] over a single kv table in SQLite.
//
// The table is created by the embedded migrations (see shared.RunMigrations).
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a SQLiteKV over an open database connection.
// The caller owns the connection unless Close is used.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Open opens (or creates) the SQLite database at path, applies migrations,
// and returns a ready-to-use store. Use ":memory:" for an ephemeral store.
func Open(path string) (*SQLiteKV, error) {
	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return NewSQLiteKV(db), nil
}

// Get retrieves the value stored under key.
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: failed to read key %s: %v", shared.ErrPersistence, key, err)
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteKV) Set(key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("%w: failed to write key %s: %v", shared.ErrPersistence, key, err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("%w: failed to delete key %s: %v", shared.ErrPersistence, key, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
