package impl

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "locator/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}

func ptr[T any](v T) *T {
	return &v
}
