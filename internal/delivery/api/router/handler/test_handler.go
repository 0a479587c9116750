package handler

import (
	"net/http"

	"locator/internal/delivery/api/response"
	deliverycontext "locator/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAdminMiddleware tests the admin password middleware
// This endpoint requires a valid X-Admin-Password header
func (h *TestHandler) TestAdminMiddleware(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Admin middleware test successful",
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint and echoes the request scoped ids
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := deliverycontext.GetSessionIDFromContext(ctx)

	return response.Success(c, http.StatusOK, map[string]any{
		"message":    "Public endpoint test successful",
		"status":     "public",
		"request_id": deliverycontext.GetRequestID(c),
		"session_id": sessionID,
	})
}
