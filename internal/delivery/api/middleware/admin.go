package middleware

import (
	"locator/internal/delivery/api/response"
	"locator/internal/domain/constants"
	"locator/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware guards the moderation routes with the shared admin password.
type AdminMiddleware struct {
	adminUC usecase.AdminUsecase
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(adminUC usecase.AdminUsecase) *AdminMiddleware {
	return &AdminMiddleware{adminUC: adminUC}
}

// RequireAdmin rejects requests without a valid X-Admin-Password header.
func (m *AdminMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		password := c.Request().Header.Get(constants.HeaderAdminPassword)
		if err := m.adminUC.Authenticate(password); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}
