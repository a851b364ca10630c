package model

import "sort"

// Permission is a closed enum value. Each permission belongs to exactly one
// domain (general project administration or 3D viewer); membership is checked
// exhaustively at the request boundary via Valid().
type Permission string

// General project administration permissions (4D planning).
const (
	PermManageUserGroup      Permission = "GENERAL_MANAGE_USER_GROUP_OF_PROJECT"
	PermManageProjectProfile Permission = "GENERAL_MANAGE_PROJECT_PROFILE"
	PermManageMember         Permission = "GENERAL_MANAGE_MEMBER_OF_PROJECT"
	PermEditProjectSetting   Permission = "GENERAL_EDIT_PROJECT_SETTING"
	PermViewProjectLog       Permission = "GENERAL_VIEW_PROJECT_LOG"
	PermViewAuditLog         Permission = "GENERAL_VIEW_AUDIT_LOG"
	// Organization-wide administration, granted through security profiles.
	PermAdminManageGroup           Permission = "ADMIN_MANAGE_USER_GROUP"
	PermAdminManageSecurityProfile Permission = "ADMIN_MANAGE_SECURITY_PROFILE"
)

// 3D viewer permissions.
const (
	PermViewer3dAccess        Permission = "VIEWER3D_ACCESS_MODEL"
	PermViewer3dMarkup        Permission = "VIEWER3D_CREATE_MARKUP"
	PermViewer3dManageProfile Permission = "VIEWER3D_MANAGE_PROFILE"
)

var generalPermissions = map[Permission]bool{
	PermManageUserGroup:      true,
	PermManageProjectProfile: true,
	PermManageMember:         true,
	PermEditProjectSetting:   true,
	PermViewProjectLog:       true,
	PermViewAuditLog:         true,

	PermAdminManageGroup:           true,
	PermAdminManageSecurityProfile: true,
}

var viewerPermissions = map[Permission]bool{
	PermViewer3dAccess:        true,
	PermViewer3dMarkup:        true,
	PermViewer3dManageProfile: true,
}

// Valid reports whether p is a known permission in any domain.
func (p Permission) Valid() bool {
	return generalPermissions[p] || viewerPermissions[p]
}

// Domain returns the access module a permission belongs to, or "" if unknown.
func (p Permission) Domain() string {
	if generalPermissions[p] {
		return AccessModuleGeneral
	}
	if viewerPermissions[p] {
		return AccessModuleViewer3d
	}
	return ""
}

// AllPermissions returns every known permission across both domains, sorted.
// Project admins hold all of them implicitly.
func AllPermissions() []Permission {
	out := make([]Permission, 0, len(generalPermissions)+len(viewerPermissions))
	for p := range generalPermissions {
		out = append(out, p)
	}
	for p := range viewerPermissions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PermissionSet is the resolved set of permissions a user holds on a project.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

func (s PermissionSet) Add(perms ...Permission) {
	for _, p := range perms {
		s[p] = struct{}{}
	}
}

// Union merges other into s and returns s.
func (s PermissionSet) Union(other PermissionSet) PermissionSet {
	for p := range other {
		s[p] = struct{}{}
	}
	return s
}

// Values returns the permissions in sorted order for stable output.
func (s PermissionSet) Values() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
