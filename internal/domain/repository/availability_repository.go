package repository

import (
	"context"

	"locator/internal/domain/entity"
)

// AvailabilityRepository stores one record per (store, flavor).
type AvailabilityRepository interface {
	// UpsertAvailability inserts the record or overwrites the existing one for
	// the same (store, flavor). UpdatedAt is set by the repository.
	// Returns ErrStoreNotFound or ErrFlavorNotFound on a dangling reference.
	UpsertAvailability(ctx context.Context, record *entity.AvailabilityRecord) error

	// FindAvailabilityByStore returns every record of a store.
	FindAvailabilityByStore(ctx context.Context, storeID int64) ([]entity.AvailabilityRecord, error)
}
