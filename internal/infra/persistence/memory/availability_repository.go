package memory

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
)

type availabilityRepository struct {
	data *Dataset
}

// NewAvailabilityRepository returns an AvailabilityRepository over the dataset.
func NewAvailabilityRepository(data *Dataset) repository.AvailabilityRepository {
	return &availabilityRepository{data: data}
}

func (repo *availabilityRepository) UpsertAvailability(ctx context.Context, record *entity.AvailabilityRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !record.Available.Valid() {
		return domainerrors.ErrInvalidAvailability.WrapMessage("availability out of range")
	}

	return repo.data.write(func(s *state, now time.Time) error {
		if _, ok := s.stores[record.StoreID]; !ok {
			return repository.ErrStoreNotFound
		}
		if _, ok := s.flavors[record.FlavorName]; !ok {
			return repository.ErrFlavorNotFound
		}

		record.UpdatedAt = now
		s.records[recordKey{storeID: record.StoreID, flavor: record.FlavorName}] = *record

		return nil
	})
}

func (repo *availabilityRepository) FindAvailabilityByStore(ctx context.Context, storeID int64) ([]entity.AvailabilityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var records []entity.AvailabilityRecord
	repo.data.read(func(s *state) {
		records = recordsOf(s, storeID)
	})
	if records == nil {
		records = []entity.AvailabilityRecord{}
	}

	return records, nil
}
