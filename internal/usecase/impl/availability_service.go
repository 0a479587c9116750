package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type availabilityService struct {
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// AvailabilityServiceParams holds dependencies for AvailabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher `optional:"true"`
	Logger         *slog.Logger
}

// NewAvailabilityService creates a new availability service instance
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	return &availabilityService{
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetAvailability records a crowd report atomically with its log entry.
func (srv *availabilityService) SetAvailability(ctx context.Context, input *usecase.SetAvailabilityInput) (*usecase.SetAvailabilityOutput, error) {
	if input == nil || input.FlavorName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("flavor is required")
	}
	if !input.Available.Valid() {
		return nil, domainerrors.ErrInvalidAvailability
	}
	if input.SessionID == nil {
		if sessionID := deliverycontext.GetSessionIDFromContext(ctx); sessionID != "" {
			input.SessionID = &sessionID
		}
	}

	var (
		store  *entity.Store
		output *usecase.SetAvailabilityOutput
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		store, err = repoFactory.NewStoreRepository().FindStoreByID(ctx, input.StoreID)
		if err != nil {
			return err
		}
		if _, err := repoFactory.NewFlavorRepository().FindFlavorByName(ctx, input.FlavorName); err != nil {
			return err
		}

		availabilityRepo := repoFactory.NewAvailabilityRepository()
		previous, err := currentStatus(ctx, availabilityRepo, input.StoreID, input.FlavorName)
		if err != nil {
			return err
		}

		record := &entity.AvailabilityRecord{
			StoreID:    input.StoreID,
			FlavorName: input.FlavorName,
			Available:  input.Available,
		}
		if err := availabilityRepo.UpsertAvailability(ctx, record); err != nil {
			return err
		}

		if err := repoFactory.NewUpdateLogRepository().AppendUpdateLog(ctx, &entity.UpdateLogEntry{
			StoreID:      input.StoreID,
			FlavorName:   input.FlavorName,
			Availability: input.Available,
			SessionID:    input.SessionID,
		}); err != nil {
			return err
		}

		output = &usecase.SetAvailabilityOutput{
			Record:   *record,
			Previous: previous,
			Changed:  previous != input.Available,
		}

		return nil
	})
	if err != nil {
		return nil, srv.mapWriteError(ctx, input, err)
	}

	srv.log(ctx).Info("Availability updated",
		slog.Int64("storeID", input.StoreID),
		slog.String("flavor", input.FlavorName),
		slog.String("available", input.Available.String()),
		slog.String("previous", output.Previous.String()),
	)

	srv.publishChange(ctx, store, output)

	return output, nil
}

func currentStatus(ctx context.Context, repo repository.AvailabilityRepository, storeID int64, flavor string) (entity.Availability, error) {
	records, err := repo.FindAvailabilityByStore(ctx, storeID)
	if err != nil {
		return entity.AvailabilityUnknown, err
	}
	for _, record := range records {
		if record.FlavorName == flavor {
			return record.Available, nil
		}
	}

	return entity.AvailabilityUnknown, nil
}

func (srv *availabilityService) mapWriteError(ctx context.Context, input *usecase.SetAvailabilityInput, err error) error {
	switch {
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound
	case errors.Is(err, repository.ErrFlavorNotFound):
		return domainerrors.ErrFlavorNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		return err
	}

	srv.log(ctx).Error("Failed to execute availability transaction",
		slog.Int64("storeID", input.StoreID),
		slog.String("flavor", input.FlavorName),
		slog.Any("error", err),
	)

	return errors.Wrap(domainerrors.ErrTransactionFailed, "failed to set availability")
}

// publishChange emits the event after commit. Failures are logged only.
func (srv *availabilityService) publishChange(ctx context.Context, store *entity.Store, output *usecase.SetAvailabilityOutput) {
	if srv.eventPublisher == nil || !output.Changed {
		return
	}

	event := &service.AvailabilityChangedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		StoreID:    output.Record.StoreID,
		StoreName:  store.Name,
		FlavorName: output.Record.FlavorName,
		Available:  uint8(output.Record.Available),
		Previous:   uint8(output.Previous),
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.eventPublisher.PublishAvailabilityChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish availability event",
			slog.String("eventID", event.EventID),
			slog.Int64("storeID", event.StoreID),
			slog.Any("error", err),
		)
	}
}
