// Package database provides SQLite implementation of the Store interface.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/truthscan/truthscan/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Migrate runs database migrations.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS verifications (
			id TEXT PRIMARY KEY,
			query_text TEXT NOT NULL,
			verdict TEXT NOT NULL,
			explanation TEXT NOT NULL,
			sources TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_verifications_query ON verifications(query_text COLLATE NOCASE)`,
		`CREATE INDEX IF NOT EXISTS idx_verifications_created ON verifications(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// FindRecent returns the newest record matching queryText within the window.
// Matching is exact after trimming, case-insensitive. Duplicate records for
// the same claim are permitted; the newest wins.
func (s *SQLiteStore) FindRecent(ctx context.Context, queryText string, windowDays int) (*models.VerificationRecord, error) {
	// Times are stored in UTC; compare in UTC so the text encoding sorts.
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	row := s.db.QueryRowContext(ctx, `
		SELECT id, query_text, verdict, explanation, sources, created_at
		FROM verifications
		WHERE query_text = ? COLLATE NOCASE AND created_at >= ?
		ORDER BY created_at DESC LIMIT 1`,
		strings.TrimSpace(queryText), cutoff)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Insert persists a new verification record. The ID and CreatedAt are
// assigned here; the caller's values are overwritten.
func (s *SQLiteStore) Insert(ctx context.Context, record *models.VerificationRecord) error {
	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	sourcesJSON, err := json.Marshal(record.Sources)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO verifications (id, query_text, verdict, explanation, sources, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.QueryText, record.Verdict, record.Explanation,
		string(sourcesJSON), record.CreatedAt,
	)
	return err
}

// ListRecent returns up to limit records, newest first.
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]*models.VerificationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query_text, verdict, explanation, sources, created_at
		FROM verifications ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.VerificationRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*models.VerificationRecord, error) {
	var record models.VerificationRecord
	var sourcesJSON string
	if err := s.Scan(&record.ID, &record.QueryText, &record.Verdict,
		&record.Explanation, &sourcesJSON, &record.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(sourcesJSON), &record.Sources); err != nil {
		return nil, fmt.Errorf("failed to decode sources: %w", err)
	}
	return &record, nil
}
