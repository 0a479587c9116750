package errors

import (
	"net/http"
	"testing"

	"locator/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentityFields(t *testing.T) {
	detailed := ErrInvalidViewport.WithDetails("swLat is required")

	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Equal(t, "INVALID_VIEWPORT", detailed.ErrorCode())
	assert.Equal(t, "swLat is required", detailed.Details())
	assert.Empty(t, ErrInvalidViewport.Details())
}

func TestBaseError_WrapMessageIsDetectable(t *testing.T) {
	err := ErrStoreNotFound.WrapMessage("store 42")

	assert.True(t, errors.Is(err, ErrStoreNotFound))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("connection refused"), "failed to cluster stores")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "failed to cluster stores", err.Details())
}

func TestNewErrorInfo_Retryable(t *testing.T) {
	tests := []struct {
		err  AppError
		want bool
	}{
		{err: ErrWriteConflict, want: true},
		{err: ErrQueryFailed, want: true},
		{err: ErrServiceUnavailable, want: true},
		{err: NewDatabaseExecuteError(errors.New("timeout"), "append update log"), want: true},
		{err: ErrInvalidViewport},
		{err: ErrStoreNotFound},
		{err: ErrAdminUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			info := NewErrorInfo(tt.err.ErrorCode(), tt.err.Message(), nil)

			assert.Equal(t, tt.want, info.Retryable)
			assert.Equal(t, tt.err.ErrorCode(), info.Code)
		})
	}
}
