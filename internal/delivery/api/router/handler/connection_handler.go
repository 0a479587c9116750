package handler

import (
	"net/http"

	"locator/internal/delivery/api/response"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ConnectionHandler records anonymous visits
type ConnectionHandler struct {
	connectionUC usecase.ConnectionUsecase
}

// NewConnectionHandler is the constructor for ConnectionHandler
func NewConnectionHandler(connectionUC usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{connectionUC: connectionUC}
}

// RecordConnectionRequest represents the request body for a visit
type RecordConnectionRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

// RecordConnection handles POST /connections
func (h *ConnectionHandler) RecordConnection(c echo.Context) error {
	var req RecordConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "invalid connection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.InvalidInput(c, err.Error())
	}

	conn, err := h.connectionUC.RecordVisit(c.Request().Context(), req.SessionID, c.Request().UserAgent())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ConnectionResponse{
		ID:        conn.ID,
		SessionID: conn.SessionID,
		CreatedAt: conn.CreatedAt,
	})
}
