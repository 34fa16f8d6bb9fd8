package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteKV is a SQLite-backed KV. A single kv table keyed by name is enough
// for the client's durability needs (currently just the session record).
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens the database at dbPath and creates the kv table if it
// does not exist.
func OpenSQLite(dbPath string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or ok=false if absent.
func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)

	var value []byte
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("scan value: %w", err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteKV) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert value: %w", err)
	}

	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete value: %w", err)
	}

	return nil
}
