package usecase

import (
	"context"

	"locator/internal/domain/entity"
)

// StoreUsecase serves store details and share codes.
type StoreUsecase interface {
	// GetStoreDetail returns the store with a status for every catalog flavor.
	GetStoreDetail(ctx context.Context, storeID int64) (*entity.StoreDetail, error)

	// GetStoreQRCode returns a PNG QR code linking to the store.
	GetStoreQRCode(ctx context.Context, storeID int64) ([]byte, error)
}
