package repository

import (
	"context"
	"errors"

	"planadmin/internal/admin/model"
)

// ErrDuplicate is returned when an insert hits a unique index. The index is
// the backstop for name uniqueness; services pre-check and translate this to
// their own duplicate-name error.
var ErrDuplicate = errors.New("duplicate record")

// AdminRepository is the persistence contract for the project-administration
// core. All reads exclude soft-deleted records; lookups return (nil, nil)
// when the record is absent or soft-deleted.
type AdminRepository interface {
	// Projects
	GetProject(ctx context.Context, id string) (*model.Project, error)

	// Users
	GetUser(ctx context.Context, id string) (*model.User, error)
	// ListGroupMembers returns the non-deleted users belonging to a group,
	// paginated. projectID is empty for organization-wide groups.
	ListGroupMembers(ctx context.Context, groupID, projectID string, page, size int) ([]*model.User, int64, error)
	// ListNonMembers returns the non-deleted users excluded from a group's
	// membership, filtered and paginated.
	ListNonMembers(ctx context.Context, groupID string, req model.ListNonMembersReq) ([]*model.User, int64, error)
	// CountUsersInGroup counts live users referencing a group id, either as
	// an organization membership or a project membership.
	CountUsersInGroup(ctx context.Context, groupID string) (int64, error)
	AddGroupMember(ctx context.Context, userID, groupID, projectID, updatedBy string) error
	RemoveGroupMember(ctx context.Context, userID, groupID, projectID, updatedBy string) error

	// Organization-wide groups
	GetGroup(ctx context.Context, id string) (*model.Group, error)
	FindGroupsByIDs(ctx context.Context, ids []string) ([]*model.Group, error)
	// ListGroups returns non-deleted organization groups, optionally
	// narrowed to one access module.
	ListGroups(ctx context.Context, accessModule string) ([]*model.Group, error)
	// FindGroupByName matches the name case-insensitively among non-deleted
	// groups of the access module, excluding excludeID when non-empty.
	FindGroupByName(ctx context.Context, accessModule, name, excludeID string) (*model.Group, error)
	CreateGroup(ctx context.Context, g *model.Group) error
	UpdateGroup(ctx context.Context, g *model.Group) error
	SoftDeleteGroup(ctx context.Context, id, deletedBy string) error

	// Project groups
	GetProjectGroup(ctx context.Context, id string) (*model.ProjectGroup, error)
	FindProjectGroupByName(ctx context.Context, projectID, accessModule, name, excludeID string) (*model.ProjectGroup, error)
	ListProjectGroups(ctx context.Context, projectID, accessModule string) ([]*model.ProjectGroup, error)
	FindProjectGroupsByIDs(ctx context.Context, ids []string) ([]*model.ProjectGroup, error)
	CreateProjectGroup(ctx context.Context, g *model.ProjectGroup) error
	// InsertProjectGroups performs the bulk import insert. All-or-nothing is
	// gated by the caller; the unique index still rejects residual races.
	InsertProjectGroups(ctx context.Context, groups []*model.ProjectGroup) error
	UpdateProjectGroup(ctx context.Context, g *model.ProjectGroup) error
	SoftDeleteProjectGroup(ctx context.Context, id, deletedBy string) error
	CountProjectGroupsByProfile(ctx context.Context, profileID string) (int64, error)
	CountGroupsBySecurityProfile(ctx context.Context, profileID string) (int64, error)

	// Project profiles
	GetProjectProfile(ctx context.Context, id string) (*model.ProjectProfile, error)
	FindProjectProfileByName(ctx context.Context, projectID, accessModule, name, excludeID string) (*model.ProjectProfile, error)
	ListProjectProfiles(ctx context.Context, projectID, accessModule string) ([]*model.ProjectProfile, error)
	FindProjectProfilesByIDs(ctx context.Context, ids []string) ([]*model.ProjectProfile, error)
	CreateProjectProfile(ctx context.Context, p *model.ProjectProfile) error
	UpdateProjectProfile(ctx context.Context, p *model.ProjectProfile) error
	SoftDeleteProjectProfile(ctx context.Context, id, deletedBy string) error
	// SetDefaultProjectProfile atomically unsets the default flag on all
	// sibling profiles in the (project, access module) scope and sets it on
	// id, inside one store transaction. Replaying is idempotent.
	SetDefaultProjectProfile(ctx context.Context, projectID, accessModule, id, updatedBy string) (*model.ProjectProfile, error)

	// Viewer3d profiles (global scope)
	GetViewer3dProfile(ctx context.Context, id string) (*model.Viewer3dProfile, error)
	FindViewer3dProfileByName(ctx context.Context, name, excludeID string) (*model.Viewer3dProfile, error)
	ListViewer3dProfiles(ctx context.Context) ([]*model.Viewer3dProfile, error)
	CreateViewer3dProfile(ctx context.Context, p *model.Viewer3dProfile) error
	UpdateViewer3dProfile(ctx context.Context, p *model.Viewer3dProfile) error
	SoftDeleteViewer3dProfile(ctx context.Context, id, deletedBy string) error
	SetDefaultViewer3dProfile(ctx context.Context, id, updatedBy string) (*model.Viewer3dProfile, error)

	// Security profiles (global scope, referenced by organization groups)
	GetSecurityProfile(ctx context.Context, id string) (*model.SecurityProfile, error)
	FindSecurityProfilesByIDs(ctx context.Context, ids []string) ([]*model.SecurityProfile, error)
	FindSecurityProfileByName(ctx context.Context, name, excludeID string) (*model.SecurityProfile, error)
	ListSecurityProfiles(ctx context.Context) ([]*model.SecurityProfile, error)
	CreateSecurityProfile(ctx context.Context, p *model.SecurityProfile) error
	UpdateSecurityProfile(ctx context.Context, p *model.SecurityProfile) error
	SoftDeleteSecurityProfile(ctx context.Context, id, deletedBy string) error
	SetDefaultSecurityProfile(ctx context.Context, id, updatedBy string) (*model.SecurityProfile, error)

	// Index bootstrap
	EnsureIndexes(ctx context.Context) error
}

// LogRepository is the append-only surface for audit and project logs. No
// update or delete operations exist for either log type.
type LogRepository interface {
	InsertAuditLog(ctx context.Context, entry *model.AuditLog) error
	InsertProjectLog(ctx context.Context, entry *model.ProjectLog) error
	FindAuditLogs(ctx context.Context, req model.GetAuditLogsReq) ([]*model.AuditLog, int64, error)
	FindProjectLogs(ctx context.Context, projectID string, req model.GetProjectLogsReq) ([]*model.ProjectLog, int64, error)
	EnsureLogIndexes(ctx context.Context) error
}
