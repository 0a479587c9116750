package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"locator/internal/domain/constants"
	domainerrors "locator/internal/domain/errors"
	mockUC "locator/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMiddleware_RequireAdmin(t *testing.T) {
	adminUC := mockUC.NewMockAdminUsecase(t)
	mw := NewAdminMiddleware(adminUC)
	e := echo.New()

	adminUC.EXPECT().Authenticate("letmein").Return(nil)
	adminUC.EXPECT().Authenticate("nope").Return(domainerrors.ErrAdminUnauthorized)

	called := false
	handler := mw.RequireAdmin(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/update-logs", nil)
	req.Header.Set(constants.HeaderAdminPassword, "letmein")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	called = false
	req = httptest.NewRequest(http.MethodGet, "/admin/update-logs", nil)
	req.Header.Set(constants.HeaderAdminPassword, "nope")
	rec = httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	tests := []struct {
		name     string
		err      error
		wantCode  int
		wantErr   string
		wantRetry bool
	}{
		{name: "wrapped app error", err: errors.Wrap(domainerrors.ErrQueryFailed, "cluster"), wantCode: http.StatusInternalServerError, wantErr: "QUERY_FAILED", wantRetry: true},
		{name: "not found", err: domainerrors.ErrStoreNotFound, wantCode: http.StatusNotFound, wantErr: "STORE_NOT_FOUND"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), wantCode: http.StatusMethodNotAllowed, wantErr: "HTTP_ERROR"},
		{name: "unknown route", err: echo.ErrNotFound, wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mw.HandleHTTPError(tt.err, e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))

			assert.Equal(t, tt.wantCode, rec.Code)
			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErr, body.Error.Code)
			assert.Equal(t, tt.wantRetry, body.Error.Retryable)
		})
	}
}
