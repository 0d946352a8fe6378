package session

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore persists the session record across hook invocations.
//
// The (session_id, ref) primary key plus INSERT OR IGNORE makes concurrent
// marking benign: two racing invocations may both inject the same document
// once, but the record converges to a single row.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the dedup database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=2000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// IsLoaded implements Store.
func (s *SQLiteStore) IsLoaded(sessionID, ref string) (bool, error) {
	var one int
	err := s.db.QueryRow(`
		SELECT 1 FROM loaded_refs WHERE session_id = ? AND ref = ?
	`, sessionID, ref).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("dedup lookup failed: %w", err)
	}
	return true, nil
}

// MarkLoaded implements Store.
func (s *SQLiteStore) MarkLoaded(sessionID, ref string) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO loaded_refs (session_id, ref, loaded_at)
		VALUES (?, ?, ?)
	`, sessionID, ref, time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to mark ref loaded: %w", err)
	}
	return nil
}

// Loaded implements Store.
func (s *SQLiteStore) Loaded(sessionID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT ref FROM loaded_refs
		WHERE session_id = ?
		ORDER BY rowid ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session refs: %w", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// Clear implements Store.
func (s *SQLiteStore) Clear(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM loaded_refs WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
