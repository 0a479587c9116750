package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// SetAvailabilityInput is one crowd report.
type SetAvailabilityInput struct {
	StoreID    int64
	FlavorName string
	Available  entity.Availability
	SessionID  *string
}

// SetAvailabilityOutput describes the committed change.
type SetAvailabilityOutput struct {
	Record   entity.AvailabilityRecord
	Previous entity.Availability
	Changed  bool
}

// AvailabilityUsecase records availability reports.
type AvailabilityUsecase interface {
	// SetAvailability upserts the (store, flavor) status and appends to the
	// update log in one transaction.
	SetAvailability(ctx context.Context, input *SetAvailabilityInput) (*SetAvailabilityOutput, error)
}
