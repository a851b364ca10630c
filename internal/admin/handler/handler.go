package handler

import (
	"net/http"

	"planadmin/internal/admin/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const headerUserID = "x-user-id"

type AdminHandler struct {
	Service service.AdminService
	Logger  *zap.Logger
}

func NewAdminHandler(s service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: s, Logger: logger}
}

// extractCallerID reads the authenticated user id injected by the gateway.
func (h *AdminHandler) extractCallerID(c echo.Context) (string, error) {
	callerID := c.Request().Header.Get(headerUserID)
	if callerID == "" {
		return "", service.ErrUnauthorized
	}
	return callerID, nil
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
