package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// ErrFlavorNotFound is returned when a flavor is not in the catalog.
var ErrFlavorNotFound = errors.New("flavor not found")

// FlavorRepository reads the flavor catalog.
type FlavorRepository interface {
	// ListFlavors returns the whole catalog ordered by name.
	ListFlavors(ctx context.Context) ([]*entity.Flavor, error)

	// FindFlavorByName retrieves a flavor by its unique name.
	FindFlavorByName(ctx context.Context, name string) (*entity.Flavor, error)
}
