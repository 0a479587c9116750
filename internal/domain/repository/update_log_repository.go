package repository

import (
	"context"

	"locator/internal/domain/entity"
)

// UpdateLogRepository is the append-only history of availability changes.
type UpdateLogRepository interface {
	// AppendUpdateLog writes a new entry and fills its ID and CreatedAt.
	AppendUpdateLog(ctx context.Context, entry *entity.UpdateLogEntry) error

	// ListRecentUpdateLogs returns the newest entries first, with store names.
	ListRecentUpdateLogs(ctx context.Context, limit int) ([]*entity.UpdateLogEntry, error)
}
