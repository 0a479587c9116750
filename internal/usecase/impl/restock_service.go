package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"github.com/pkg/errors"
)

type restockService struct {
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewRestockService creates a new restock notification service instance
func NewRestockService(notificationSvc service.NotificationService, logger *slog.Logger) usecase.RestockUsecase {
	return &restockService{
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// HandleAvailabilityChanged pushes "back in stock" when a flavor becomes available.
func (srv *restockService) HandleAvailabilityChanged(ctx context.Context, event *service.AvailabilityChangedEvent) error {
	if event == nil {
		return errors.New("nil availability event")
	}

	logger := srv.logger.With(
		slog.String("eventID", event.EventID),
		slog.Int64("storeID", event.StoreID),
		slog.String("flavor", event.FlavorName),
	)

	if entity.Availability(event.Available) != entity.AvailabilityAvailable ||
		entity.Availability(event.Previous) == entity.AvailabilityAvailable {
		logger.Debug("Availability event ignored", slog.Int("available", int(event.Available)))

		return nil
	}

	topic := restockTopic(event.FlavorName)
	title := fmt.Sprintf("%s 補貨了！", event.FlavorName)
	body := fmt.Sprintf("%s 現在有 %s", event.StoreName, event.FlavorName)
	data := map[string]string{
		"type":     "restock",
		"store_id": strconv.FormatInt(event.StoreID, 10),
		"flavor":   event.FlavorName,
	}

	if err := srv.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		logger.Error("Failed to send restock notification", slog.String("topic", topic), slog.Any("error", err))

		return errors.Wrap(err, "failed to send restock notification")
	}

	logger.Info("Restock notification sent", slog.String("topic", topic))

	return nil
}
