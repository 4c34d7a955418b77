// Package store persists the local search history in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryEntry is one recorded search.
type HistoryEntry struct {
	ID         int64
	Term       string
	FeatureIDs []string
	CreatedAt  time.Time
}

// HistoryStore records searches and the feature IDs they matched.
type HistoryStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewHistoryStore opens (creating if needed) the SQLite database at path.
func NewHistoryStore(path string) (*HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &HistoryStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *HistoryStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		term TEXT NOT NULL,
		feature_ids TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Record stores one search and its matched feature IDs.
func (s *HistoryStore) Record(term string, featureIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO searches (term, feature_ids) VALUES (?, ?)`,
		term, strings.Join(featureIDs, ","),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *HistoryStore) Recent(limit int) ([]HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, term, feature_ids, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var ids string
		if err := rows.Scan(&e.ID, &e.Term, &ids, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if ids != "" {
			e.FeatureIDs = strings.Split(ids, ",")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes everything beyond the newest keep entries.
func (s *HistoryStore) Prune(keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep <= 0 {
		return nil
	}
	_, err := s.db.Exec(
		`DELETE FROM searches WHERE id NOT IN
		 (SELECT id FROM searches ORDER BY id DESC LIMIT ?)`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
