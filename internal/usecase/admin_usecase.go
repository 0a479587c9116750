package usecase

import (
	"context"
	"time"

	"locator/internal/domain/entity"
)

// ConnectionsOverview is the admin view of visits.
type ConnectionsOverview struct {
	Total  int64
	Recent []*entity.Connection
}

// ConnectionStats is a zero-filled series of visit counts.
type ConnectionStats struct {
	Interval entity.StatsInterval
	Since    time.Time
	Buckets  []entity.ConnectionBucket
}

// AdminUsecase backs the password-protected admin endpoints.
type AdminUsecase interface {
	// Authenticate checks the admin password.
	Authenticate(password string) error

	ListUpdateLogs(ctx context.Context, limit int) ([]*entity.UpdateLogEntry, error)
	GetConnections(ctx context.Context, limit int) (*ConnectionsOverview, error)
	GetConnectionStats(ctx context.Context, interval entity.StatsInterval) (*ConnectionStats, error)
}
