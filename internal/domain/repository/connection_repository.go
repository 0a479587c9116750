package repository

import (
	"context"
	"time"

	"locator/internal/domain/entity"
)

// ConnectionRepository tracks anonymous visits.
type ConnectionRepository interface {
	RecordConnection(ctx context.Context, conn *entity.Connection) error
	CountConnections(ctx context.Context) (int64, error)
	ListRecentConnections(ctx context.Context, limit int) ([]*entity.Connection, error)

	// CountConnectionsByBucket returns non-empty buckets of the given width
	// starting at or after since, oldest first. Bucket starts are aligned to
	// the Unix epoch.
	CountConnectionsByBucket(ctx context.Context, since time.Time, width time.Duration) ([]entity.ConnectionBucket, error)
}
