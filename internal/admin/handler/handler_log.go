package handler

import (
	"net/http"

	"planadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

// GetProjectLogs handles GET /projects/:projectId/logs
func (h *AdminHandler) GetProjectLogs(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GetProjectLogsReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid parameters")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.GetProjectLogs(c.Request().Context(), callerID, c.Param("projectId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, result)
}

// GetAuditLogs handles GET /audit_logs
func (h *AdminHandler) GetAuditLogs(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GetAuditLogsReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid parameters")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.GetAuditLogs(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, result)
}

// GetUserPermissions handles GET /projects/:projectId/users/:userId/permissions
func (h *AdminHandler) GetUserPermissions(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	perms, err := h.Service.GetUserPermissions(c.Request().Context(), callerID, c.Param("projectId"), c.Param("userId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"permissions": perms})
}

// GetMyPermissions handles GET /projects/:projectId/permissions/me
func (h *AdminHandler) GetMyPermissions(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	perms, err := h.Service.GetUserPermissions(c.Request().Context(), callerID, c.Param("projectId"), callerID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"permissions": perms})
}
