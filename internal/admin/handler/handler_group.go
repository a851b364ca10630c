package handler

import (
	"net/http"

	"planadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

// PostGroup handles POST /groups
func (h *AdminHandler) PostGroup(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateGroupReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	g, err := h.Service.CreateGroup(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, g)
}

// PutGroup handles PUT /groups/:groupId
func (h *AdminHandler) PutGroup(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateGroupReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	g, err := h.Service.UpdateGroup(c.Request().Context(), callerID, c.Param("groupId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, g)
}

// DeleteGroup handles DELETE /groups/:groupId
func (h *AdminHandler) DeleteGroup(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if err := h.Service.DeleteGroup(c.Request().Context(), callerID, c.Param("groupId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetGroups handles GET /groups
func (h *AdminHandler) GetGroups(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	groups, err := h.Service.ListGroups(c.Request().Context(), callerID, c.QueryParam("access_module"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": groups})
}

// PostProjectGroup handles POST /projects/:projectId/groups
func (h *AdminHandler) PostProjectGroup(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateProjectGroupReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	g, err := h.Service.CreateProjectGroup(c.Request().Context(), callerID, c.Param("projectId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, g)
}

// PutProjectGroup handles PUT /projects/:projectId/groups/:groupId
func (h *AdminHandler) PutProjectGroup(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateProjectGroupReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	g, err := h.Service.UpdateProjectGroup(c.Request().Context(), callerID, c.Param("projectId"), c.Param("groupId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, g)
}

// DeleteProjectGroup handles DELETE /projects/:projectId/groups/:groupId
func (h *AdminHandler) DeleteProjectGroup(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.DeleteProjectGroup(c.Request().Context(), callerID, c.Param("projectId"), c.Param("groupId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetProjectGroups handles GET /projects/:projectId/groups
func (h *AdminHandler) GetProjectGroups(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	groups, err := h.Service.ListProjectGroups(c.Request().Context(), callerID, c.Param("projectId"), c.QueryParam("access_module"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": groups})
}

// PostProjectGroupsImport handles POST /projects/:projectId/groups/import
func (h *AdminHandler) PostProjectGroupsImport(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.BulkImportGroupsReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.BulkImportProjectGroups(c.Request().Context(), callerID, c.Param("projectId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, result)
}
