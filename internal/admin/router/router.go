package router

import (
	"planadmin/internal/admin/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.AdminHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "authentication", "x-user-id"},
	}))

	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Organization-wide groups
	v1.POST("/groups", h.PostGroup)
	v1.GET("/groups", h.GetGroups)
	v1.PUT("/groups/:groupId", h.PutGroup)
	v1.DELETE("/groups/:groupId", h.DeleteGroup)
	v1.GET("/groups/:groupId/non_members", h.GetGroupNonMembers)

	// Project groups
	v1.POST("/projects/:projectId/groups", h.PostProjectGroup)
	v1.GET("/projects/:projectId/groups", h.GetProjectGroups)
	v1.POST("/projects/:projectId/groups/import", h.PostProjectGroupsImport)
	v1.PUT("/projects/:projectId/groups/:groupId", h.PutProjectGroup)
	v1.DELETE("/projects/:projectId/groups/:groupId", h.DeleteProjectGroup)

	// Membership
	v1.POST("/projects/:projectId/groups/:groupId/members", h.PostGroupMember)
	v1.GET("/projects/:projectId/groups/:groupId/members", h.GetGroupMembers)
	v1.DELETE("/projects/:projectId/groups/:groupId/members/:userId", h.DeleteGroupMember)

	// Project profiles
	v1.POST("/projects/:projectId/profiles", h.PostProjectProfile)
	v1.GET("/projects/:projectId/profiles", h.GetProjectProfiles)
	v1.PUT("/projects/:projectId/profiles/:profileId", h.PutProjectProfile)
	v1.DELETE("/projects/:projectId/profiles/:profileId", h.DeleteProjectProfile)
	v1.PUT("/projects/:projectId/profiles/:profileId/default", h.PutProjectProfileDefault)

	// Viewer 3D profiles
	v1.POST("/viewer3d_profiles", h.PostViewer3dProfile)
	v1.GET("/viewer3d_profiles", h.GetViewer3dProfiles)
	v1.PUT("/viewer3d_profiles/:profileId", h.PutViewer3dProfile)
	v1.DELETE("/viewer3d_profiles/:profileId", h.DeleteViewer3dProfile)
	v1.PUT("/viewer3d_profiles/:profileId/default", h.PutViewer3dProfileDefault)

	// Security profiles
	v1.POST("/security_profiles", h.PostSecurityProfile)
	v1.GET("/security_profiles", h.GetSecurityProfiles)
	v1.PUT("/security_profiles/:profileId", h.PutSecurityProfile)
	v1.DELETE("/security_profiles/:profileId", h.DeleteSecurityProfile)
	v1.PUT("/security_profiles/:profileId/default", h.PutSecurityProfileDefault)

	// Logs and resolved permissions
	v1.GET("/projects/:projectId/logs", h.GetProjectLogs)
	v1.GET("/audit_logs", h.GetAuditLogs)
	v1.GET("/projects/:projectId/users/:userId/permissions", h.GetUserPermissions)
	v1.GET("/projects/:projectId/permissions/me", h.GetMyPermissions)
}
