// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the read side of the store catalog, including the
// spatial primitives used by viewport aggregation.
type StoreRepository interface {
	// FindStoreByID retrieves a store by its ID.
	FindStoreByID(ctx context.Context, id int64) (*entity.Store, error)

	// FindStoresInBounds returns at most limit stores inside bbox that have
	// every flavor in flavors recorded as available, with their availability
	// records. Ordered by id.
	FindStoresInBounds(ctx context.Context, bbox entity.BBox, flavors []string, limit int) ([]*entity.StoreAvailability, error)

	// ClusterStoresInBounds groups the stores FindStoresInBounds would match
	// into grid cells of cellSize degrees.
	ClusterStoresInBounds(ctx context.Context, bbox entity.BBox, cellSize float64, flavors []string) ([]entity.ClusterSummary, error)
}
