package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// SubscribeRestockOutput reports a restock subscription.
type SubscribeRestockOutput struct {
	Topic string `json:"topic"`
}

// FlavorUsecase serves the flavor catalog.
type FlavorUsecase interface {
	// ListFlavors returns the catalog, filtered by an accent-insensitive fuzzy
	// match when query is not blank.
	ListFlavors(ctx context.Context, query string) ([]*entity.Flavor, error)

	// SubscribeRestock registers a device for "back in stock" pushes of a flavor.
	SubscribeRestock(ctx context.Context, flavorName, deviceToken string) (*SubscribeRestockOutput, error)
}
