package postgres

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"
	"locator/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

type updateLogRepository struct {
	q *query.Query
}

// NewUpdateLogRepository is the constructor for updateLogRepository.
func NewUpdateLogRepository(db *gorm.DB) repository.UpdateLogRepository {
	return &updateLogRepository{q: query.Use(db)}
}

// AppendUpdateLog inserts a history entry.
func (repo *updateLogRepository) AppendUpdateLog(ctx context.Context, entry *entity.UpdateLogEntry) error {
	logM := &model.UpdateLogModel{
		StoreID:      entry.StoreID,
		FlavorName:   entry.FlavorName,
		Availability: int16(entry.Availability),
		SessionID:    entry.SessionID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.q.UpdateLogModel.WithContext(ctx).Create(logM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append update log")
	}

	entry.ID = logM.ID
	entry.CreatedAt = logM.CreatedAt

	return nil
}

type updateLogRow struct {
	model.UpdateLogModel
	StoreName string
}

// ListRecentUpdateLogs returns the newest entries joined with their store names.
func (repo *updateLogRepository) ListRecentUpdateLogs(ctx context.Context, limit int) ([]*entity.UpdateLogEntry, error) {
	u := repo.q.UpdateLogModel
	s := repo.q.StoreModel

	var rows []updateLogRow
	if err := u.WithContext(ctx).
		ReadDB().
		Select(u.ALL, s.Name.As("store_name")).
		Join(s, s.ID.EqCol(u.StoreID)).
		Order(u.CreatedAt.Desc(), u.ID.Desc()).
		Limit(limit).
		Scan(&rows); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list update logs")
	}

	entries := make([]*entity.UpdateLogEntry, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		entries = append(entries, &entity.UpdateLogEntry{
			ID:           row.ID,
			StoreID:      row.StoreID,
			StoreName:    row.StoreName,
			FlavorName:   row.FlavorName,
			Availability: entity.Availability(row.Availability),
			SessionID:    row.SessionID,
			CreatedAt:    row.CreatedAt,
		})
	}

	return entries, nil
}
