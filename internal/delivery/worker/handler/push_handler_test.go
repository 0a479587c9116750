package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"locator/internal/domain/constants"
	"locator/internal/domain/service"
	mockUC "locator/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockRestockUsecase) {
	restockUC := mockUC.NewMockRestockUsecase(t)

	return &PushHandler{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		restockUC: restockUC,
	}, restockUC
}

func pushBody(t *testing.T, event *service.AvailabilityChangedEvent, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesAvailabilityEvent(t *testing.T) {
	h, restockUC := newTestPushHandler(t)
	event := &service.AvailabilityChangedEvent{
		EventID:    "e-1",
		StoreID:    7,
		StoreName:  "Glacier Rivoli",
		FlavorName: "Pistache",
		Available:  1,
		Previous:   2,
	}

	restockUC.EXPECT().
		HandleAvailabilityChanged(mock.Anything, mock.MatchedBy(func(got *service.AvailabilityChangedEvent) bool {
			return got.StoreID == 7 && got.FlavorName == "Pistache" && got.Available == 1
		})).
		Return(nil)

	rec := doPush(h, pushBody(t, event, map[string]string{
		"event_type": constants.EventTypeAvailabilityChanged,
		"request_id": "req-42",
	}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetriesOnFailure(t *testing.T) {
	h, restockUC := newTestPushHandler(t)
	restockUC.EXPECT().HandleAvailabilityChanged(mock.Anything, mock.Anything).Return(errors.New("fcm down"))

	rec := doPush(h, pushBody(t, &service.AvailabilityChangedEvent{EventID: "e-2", Available: 1}, nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_SkipsOtherEventTypes(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := doPush(h, pushBody(t, &service.AvailabilityChangedEvent{}, map[string]string{"event_type": "store.created"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedData(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := doPush(h, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	h, restockUC := newTestPushHandler(t)
	h.verifyPushAuth = true
	h.audience = "https://notifier.example.com/push"

	var gotAudience string
	h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad token")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	body := pushBody(t, &service.AvailabilityChangedEvent{EventID: "e-3", Available: 2}, nil)

	rec := doPush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doPush(h, body, map[string]string{"Authorization": "Bearer bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	restockUC.EXPECT().HandleAvailabilityChanged(mock.Anything, mock.Anything).Return(nil)
	rec = doPush(h, body, map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://notifier.example.com/push", gotAudience)
}
