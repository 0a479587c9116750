package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type flavorService struct {
	flavorRepo      repository.FlavorRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// FlavorServiceParams holds dependencies for FlavorService, injected by Fx.
type FlavorServiceParams struct {
	fx.In

	FlavorRepo      repository.FlavorRepository
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewFlavorService creates a new flavor catalog service instance
func NewFlavorService(params FlavorServiceParams) usecase.FlavorUsecase {
	return &flavorService{
		flavorRepo:      params.FlavorRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (srv *flavorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFlavors returns the catalog, optionally fuzzy-filtered.
func (srv *flavorService) ListFlavors(ctx context.Context, query string) ([]*entity.Flavor, error) {
	flavors, err := srv.flavorRepo.ListFlavors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list flavors")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return flavors, nil
	}

	matched := make([]*entity.Flavor, 0, len(flavors))
	for _, flavor := range flavors {
		if fuzzyMatches(flavor.Name, query) {
			matched = append(matched, flavor)
		}
	}

	return matched, nil
}

// SubscribeRestock adds the device to the flavor's restock topic.
func (srv *flavorService) SubscribeRestock(ctx context.Context, flavorName, deviceToken string) (*usecase.SubscribeRestockOutput, error) {
	if srv.notificationSvc == nil {
		return nil, domainerrors.ErrServiceUnavailable.WithDetails("push notifications are not configured")
	}
	if strings.TrimSpace(deviceToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device token is required")
	}

	flavor, err := srv.flavorRepo.FindFlavorByName(ctx, flavorName)
	if err != nil {
		if errors.Is(err, repository.ErrFlavorNotFound) {
			return nil, domainerrors.ErrFlavorNotFound
		}

		return nil, errors.Wrap(err, "failed to find flavor by name")
	}

	topic := restockTopic(flavor.Name)
	successCount, invalidTokens, err := srv.notificationSvc.SubscribeToTopic(ctx, []string{deviceToken}, topic)
	if err != nil {
		srv.log(ctx).Error("Failed to subscribe device to restock topic", slog.String("topic", topic), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to subscribe to restock topic")
	}
	if successCount == 0 || len(invalidTokens) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device token was rejected")
	}

	srv.log(ctx).Info("Device subscribed to restock topic", slog.String("topic", topic))

	return &usecase.SubscribeRestockOutput{Topic: topic}, nil
}
