// Package store persists the dashboard's named settings as JSON blobs in a
// sqlite key/value table. Each key is independently consistent; a corrupt
// value is never surfaced to callers, it is simply treated as absent.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kunya-oba/morning-dashboard/internal/util"
)

const openTimeout = 5 * time.Second

// Store is a typed get/set wrapper over the settings table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the settings database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, openTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping settings db: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Get unmarshals the value stored under key into v. It returns false,
// leaving v untouched, when the key is absent or the stored value does not
// parse. Deserialization failures are logged at debug level only.
func (s *Store) Get(key string, v any) bool {
	var raw string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&raw)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		util.Debugf("store: discarding corrupt value for %q: %v", key, err)
		return false
	}
	return true
}

// Set serializes v and stores it under key, replacing any previous value.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw))
	return err
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	return err
}

// GetOr returns the value under key, or def when absent or corrupt.
func GetOr[T any](s *Store, key string, def T) T {
	var v T
	if !s.Get(key, &v) {
		return def
	}
	return v
}
