package impl

import (
	"context"
	"testing"

	"locator/internal/domain/service"
	mockSvc "locator/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestockService_NotifiesOnRestock(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	srv := NewRestockService(notificationSvc, discardLogger())
	ctx := context.Background()

	notificationSvc.EXPECT().
		SendTopicNotification(ctx, "flavor-pistacchio", "Pistacchio 補貨了！", mock.Anything, mock.MatchedBy(func(data map[string]string) bool {
			return data["store_id"] == "12" && data["type"] == "restock"
		})).
		Return(nil)

	err := srv.HandleAvailabilityChanged(ctx, &service.AvailabilityChangedEvent{
		EventID:    "evt-1",
		StoreID:    12,
		StoreName:  "Gelateria Centro",
		FlavorName: "Pistacchio",
		Available:  1,
		Previous:   2,
	})

	require.NoError(t, err)
}

func TestRestockService_IgnoresOtherTransitions(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	srv := NewRestockService(notificationSvc, discardLogger())

	tests := []struct {
		name      string
		available uint8
		previous  uint8
	}{
		{name: "sold out", available: 2, previous: 1},
		{name: "still available", available: 1, previous: 1},
		{name: "reset to unknown", available: 0, previous: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := srv.HandleAvailabilityChanged(context.Background(), &service.AvailabilityChangedEvent{
				FlavorName: "Nocciola",
				Available:  tt.available,
				Previous:   tt.previous,
			})
			assert.NoError(t, err)
		})
	}
}

func TestRestockService_SendFailure(t *testing.T) {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	srv := NewRestockService(notificationSvc, discardLogger())
	ctx := context.Background()

	notificationSvc.EXPECT().SendTopicNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("quota exceeded"))

	err := srv.HandleAvailabilityChanged(ctx, &service.AvailabilityChangedEvent{FlavorName: "Fragola", Available: 1})

	require.Error(t, err)
}
