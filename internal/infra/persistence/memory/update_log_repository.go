package memory

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
)

type updateLogRepository struct {
	data *Dataset
}

// NewUpdateLogRepository returns an UpdateLogRepository over the dataset.
func NewUpdateLogRepository(data *Dataset) repository.UpdateLogRepository {
	return &updateLogRepository{data: data}
}

func (repo *updateLogRepository) AppendUpdateLog(ctx context.Context, entry *entity.UpdateLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return repo.data.write(func(s *state, now time.Time) error {
		s.nextLogID++
		entry.ID = s.nextLogID
		entry.CreatedAt = now

		stored := *entry
		stored.StoreName = ""
		s.logs = append(s.logs, &stored)

		return nil
	})
}

func (repo *updateLogRepository) ListRecentUpdateLogs(ctx context.Context, limit int) ([]*entity.UpdateLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := []*entity.UpdateLogEntry{}
	repo.data.read(func(s *state) {
		for i := len(s.logs) - 1; i >= 0 && len(entries) < limit; i-- {
			entry := *s.logs[i]
			if store, ok := s.stores[entry.StoreID]; ok {
				entry.StoreName = store.Name
			}
			entries = append(entries, &entry)
		}
	})

	return entries, nil
}
