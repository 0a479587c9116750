package impl

import (
	"context"
	"log/slog"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storeService struct {
	storeRepo        repository.StoreRepository
	flavorRepo       repository.FlavorRepository
	availabilityRepo repository.AvailabilityRepository
	qrCodeService    service.QRCodeService
	logger           *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo        repository.StoreRepository
	FlavorRepo       repository.FlavorRepository
	AvailabilityRepo repository.AvailabilityRepository
	QRCodeService    service.QRCodeService `optional:"true"`
	Logger           *slog.Logger
}

// NewStoreService creates a new store service instance
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:        params.StoreRepo,
		flavorRepo:       params.FlavorRepo,
		availabilityRepo: params.AvailabilityRepo,
		qrCodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStoreDetail lists every catalog flavor with the store's recorded status.
func (srv *storeService) GetStoreDetail(ctx context.Context, storeID int64) (*entity.StoreDetail, error) {
	store, err := srv.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	flavors, err := srv.flavorRepo.ListFlavors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flavors")
	}

	records, err := srv.availabilityRepo.FindAvailabilityByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find availability by store")
	}

	statuses := make(map[string]entity.Availability, len(records))
	for _, record := range records {
		statuses[record.FlavorName] = record.Available
	}

	rows := make([]entity.FlavorAvailability, 0, len(flavors))
	for _, flavor := range flavors {
		rows = append(rows, entity.FlavorAvailability{
			Name:      flavor.Name,
			Image:     flavor.Image,
			Available: statuses[flavor.Name],
		})
	}
	entity.SortForDisplay(rows)

	srv.log(ctx).Debug("Store detail loaded", slog.Int64("storeID", storeID), slog.Int("flavors", len(rows)))

	return &entity.StoreDetail{Store: *store, Flavors: rows}, nil
}

// GetStoreQRCode renders the share code of an existing store.
func (srv *storeService) GetStoreQRCode(ctx context.Context, storeID int64) ([]byte, error) {
	if srv.qrCodeService == nil {
		return nil, domainerrors.ErrServiceUnavailable.WithDetails("qr code generation is not configured")
	}

	if _, err := srv.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	png, err := srv.qrCodeService.GenerateStoreQR(storeID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate store QR code", slog.Int64("storeID", storeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}
