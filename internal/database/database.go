// Package database provides the data access layer for verification records.
package database

import (
	"context"

	"github.com/truthscan/truthscan/internal/models"
)

// Store defines the interface for verification record persistence.
// Records are append-only: there is no update or delete path.
type Store interface {
	// FindRecent returns the most recent record whose query text matches
	// queryText (case-insensitive, exact after trimming) and whose
	// creation time falls within the last windowDays days. Returns
	// (nil, nil) when nothing matches.
	FindRecent(ctx context.Context, queryText string, windowDays int) (*models.VerificationRecord, error)

	// Insert persists a new record, assigning its ID and CreatedAt.
	Insert(ctx context.Context, record *models.VerificationRecord) error

	// ListRecent returns up to limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]*models.VerificationRecord, error)

	// Lifecycle
	Close() error
	Migrate() error
}
