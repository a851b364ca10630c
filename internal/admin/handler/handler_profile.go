package handler

import (
	"net/http"

	"planadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

// PostProjectProfile handles POST /projects/:projectId/profiles
func (h *AdminHandler) PostProjectProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateProjectProfileReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.CreateProjectProfile(c.Request().Context(), callerID, c.Param("projectId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, p)
}

// PutProjectProfile handles PUT /projects/:projectId/profiles/:profileId
func (h *AdminHandler) PutProjectProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateProjectProfileReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.UpdateProjectProfile(c.Request().Context(), callerID, c.Param("projectId"), c.Param("profileId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProjectProfile handles DELETE /projects/:projectId/profiles/:profileId
func (h *AdminHandler) DeleteProjectProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.DeleteProjectProfile(c.Request().Context(), callerID, c.Param("projectId"), c.Param("profileId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetProjectProfiles handles GET /projects/:projectId/profiles
func (h *AdminHandler) GetProjectProfiles(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	profiles, err := h.Service.ListProjectProfiles(c.Request().Context(), callerID, c.Param("projectId"), c.QueryParam("access_module"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": profiles})
}

// PutProjectProfileDefault handles PUT /projects/:projectId/profiles/:profileId/default
func (h *AdminHandler) PutProjectProfileDefault(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	accessModule := c.QueryParam("access_module")
	if accessModule == "" {
		code, body := badRequest("access_module is required")
		return c.JSON(code, body)
	}

	p, err := h.Service.AssignDefaultProjectProfile(c.Request().Context(), callerID, c.Param("projectId"), accessModule, c.Param("profileId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// PostViewer3dProfile handles POST /viewer3d_profiles
func (h *AdminHandler) PostViewer3dProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GlobalProfileUpsertReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.CreateViewer3dProfile(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, p)
}

// PutViewer3dProfile handles PUT /viewer3d_profiles/:profileId
func (h *AdminHandler) PutViewer3dProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GlobalProfileUpsertReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.UpdateViewer3dProfile(c.Request().Context(), callerID, c.Param("profileId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteViewer3dProfile handles DELETE /viewer3d_profiles/:profileId
func (h *AdminHandler) DeleteViewer3dProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if err := h.Service.DeleteViewer3dProfile(c.Request().Context(), callerID, c.Param("profileId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetViewer3dProfiles handles GET /viewer3d_profiles
func (h *AdminHandler) GetViewer3dProfiles(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	profiles, err := h.Service.ListViewer3dProfiles(c.Request().Context(), callerID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": profiles})
}

// PutViewer3dProfileDefault handles PUT /viewer3d_profiles/:profileId/default
func (h *AdminHandler) PutViewer3dProfileDefault(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.AssignDefaultViewer3dProfile(c.Request().Context(), callerID, c.Param("profileId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// PostSecurityProfile handles POST /security_profiles
func (h *AdminHandler) PostSecurityProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GlobalProfileUpsertReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.CreateSecurityProfile(c.Request().Context(), callerID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, p)
}

// PutSecurityProfile handles PUT /security_profiles/:profileId
func (h *AdminHandler) PutSecurityProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.GlobalProfileUpsertReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.UpdateSecurityProfile(c.Request().Context(), callerID, c.Param("profileId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteSecurityProfile handles DELETE /security_profiles/:profileId
func (h *AdminHandler) DeleteSecurityProfile(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if err := h.Service.DeleteSecurityProfile(c.Request().Context(), callerID, c.Param("profileId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetSecurityProfiles handles GET /security_profiles
func (h *AdminHandler) GetSecurityProfiles(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	profiles, err := h.Service.ListSecurityProfiles(c.Request().Context(), callerID)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": profiles})
}

// PutSecurityProfileDefault handles PUT /security_profiles/:profileId/default
func (h *AdminHandler) PutSecurityProfileDefault(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	p, err := h.Service.AssignDefaultSecurityProfile(c.Request().Context(), callerID, c.Param("profileId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, p)
}
