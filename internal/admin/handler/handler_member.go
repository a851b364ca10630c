package handler

import (
	"net/http"

	"planadmin/internal/admin/model"

	"github.com/labstack/echo/v4"
)

// PostGroupMember handles POST /projects/:projectId/groups/:groupId/members
func (h *AdminHandler) PostGroupMember(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.AssignMemberReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	err = h.Service.AssignMember(c.Request().Context(), callerID, c.Param("projectId"), c.Param("groupId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// DeleteGroupMember handles DELETE /projects/:projectId/groups/:groupId/members/:userId
func (h *AdminHandler) DeleteGroupMember(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	err = h.Service.RemoveMember(c.Request().Context(), callerID, c.Param("projectId"), c.Param("groupId"), c.Param("userId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetGroupMembers handles GET /projects/:projectId/groups/:groupId/members
func (h *AdminHandler) GetGroupMembers(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListMembersReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid parameters")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListMembers(c.Request().Context(), callerID, c.Param("projectId"), c.Param("groupId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, result)
}

// GetGroupNonMembers handles GET /groups/:groupId/non_members
func (h *AdminHandler) GetGroupNonMembers(c echo.Context) error {
	callerID, err := h.extractCallerID(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListNonMembersReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("invalid parameters")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := validationError(err)
		return c.JSON(code, body)
	}

	result, err := h.Service.ListNonMembers(c.Request().Context(), callerID, c.Param("groupId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, result)
}
