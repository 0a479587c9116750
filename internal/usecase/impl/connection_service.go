package impl

import (
	"context"
	"log/slog"
	"strings"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxUserAgentLength = 512

type connectionService struct {
	connectionRepo repository.ConnectionRepository
	logger         *slog.Logger
}

// NewConnectionService creates a new visit tracking service instance
func NewConnectionService(connectionRepo repository.ConnectionRepository, logger *slog.Logger) usecase.ConnectionUsecase {
	return &connectionService{
		connectionRepo: connectionRepo,
		logger:         logger,
	}
}

// RecordVisit stores one anonymous visit. A missing session id gets a fresh one.
func (srv *connectionService) RecordVisit(ctx context.Context, sessionID, userAgent string) (*entity.Connection, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if len(sessionID) > 64 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("session id is too long")
	}
	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}

	conn := &entity.Connection{SessionID: sessionID, UserAgent: userAgent}
	if err := srv.connectionRepo.RecordConnection(ctx, conn); err != nil {
		return nil, errors.Wrap(err, "failed to record connection")
	}

	return conn, nil
}
