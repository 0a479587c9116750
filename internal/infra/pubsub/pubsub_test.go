package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locator/config"
	"locator/internal/domain/constants"
	"locator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.AvailabilityChangedEvent {
	return &service.AvailabilityChangedEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		StoreID:    42,
		StoreName:  "Glacier Bastille",
		FlavorName: "Pistache",
		Available:  1,
		Previous:   2,
		OccurredAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_SendsPushEnvelope(t *testing.T) {
	var (
		got       PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishAvailabilityChanged(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, constants.EventTypeAvailabilityChanged, got.Message.Attributes["event_type"])
	assert.Equal(t, "42", got.Message.Attributes["store_id"])
	assert.Equal(t, "1", got.Message.Attributes["available"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.AvailabilityChangedEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "Pistache", event.FlavorName)
	assert.EqualValues(t, 2, event.Previous)
}

func TestLocalHTTPPublisher_RejectsNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishAvailabilityChanged(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "503")
}

func TestAvailabilityAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	attrs := availabilityAttributes(event)
	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, "Pistache", attrs["flavor_name"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantErr  bool
		wantType any
	}{
		{name: "unconfigured is noop", cfg: nil, wantType: &noopPublisher{}},
		{name: "empty provider is noop", cfg: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
