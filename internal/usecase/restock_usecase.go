package usecase

import (
	"context"

	"locator/internal/domain/service"
)

// RestockUsecase turns availability events into restock pushes.
type RestockUsecase interface {
	// HandleAvailabilityChanged notifies the flavor topic when a flavor
	// becomes available. Other transitions are ignored.
	HandleAvailabilityChanged(ctx context.Context, event *service.AvailabilityChangedEvent) error
}
