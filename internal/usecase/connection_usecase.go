package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// ConnectionUsecase tracks anonymous visits.
type ConnectionUsecase interface {
	RecordVisit(ctx context.Context, sessionID, userAgent string) (*entity.Connection, error)
}
