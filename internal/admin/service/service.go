package service

import (
	"context"
	"errors"
	"sync"

	"planadmin/internal/admin/model"
	"planadmin/internal/admin/policy"
	"planadmin/internal/admin/repository"

	"go.uber.org/zap"
)

// Sentinel errors surfaced to the transport layer, which maps them to
// status codes and stable error codes.
var (
	ErrUnauthorized    = errors.New("caller identity missing")
	ErrNotFound        = errors.New("item not found")
	ErrForbidden       = errors.New("caller lacks the required permission")
	ErrDuplicateName   = errors.New("name already exists in scope")
	ErrProfileNotFound = errors.New("referenced profile not found")
	ErrItemInUse       = errors.New("item is still referenced")
)

// AdminService is the application surface of the project-administration
// backend. Every mutation authorizes the caller before touching state and
// records audit history after committing.
type AdminService interface {
	// Organization-wide groups
	CreateGroup(ctx context.Context, callerID string, req model.CreateGroupReq) (*model.Group, error)
	UpdateGroup(ctx context.Context, callerID, groupID string, req model.UpdateGroupReq) (*model.Group, error)
	DeleteGroup(ctx context.Context, callerID, groupID string) error
	ListGroups(ctx context.Context, callerID, accessModule string) ([]*model.Group, error)

	// Project groups
	CreateProjectGroup(ctx context.Context, callerID, projectID string, req model.CreateProjectGroupReq) (*model.ProjectGroup, error)
	UpdateProjectGroup(ctx context.Context, callerID, projectID, groupID string, req model.UpdateProjectGroupReq) (*model.ProjectGroup, error)
	DeleteProjectGroup(ctx context.Context, callerID, projectID, groupID string) error
	ListProjectGroups(ctx context.Context, callerID, projectID, accessModule string) ([]*model.ProjectGroup, error)
	BulkImportProjectGroups(ctx context.Context, callerID, projectID string, req model.BulkImportGroupsReq) (*model.BulkImportResult, error)

	// Membership
	AssignMember(ctx context.Context, callerID, projectID, groupID string, req model.AssignMemberReq) error
	RemoveMember(ctx context.Context, callerID, projectID, groupID, userID string) error
	ListMembers(ctx context.Context, callerID, projectID, groupID string, req model.ListMembersReq) (*model.UserListResult, error)
	ListNonMembers(ctx context.Context, callerID, groupID string, req model.ListNonMembersReq) (*model.UserListResult, error)

	// Project profiles
	CreateProjectProfile(ctx context.Context, callerID, projectID string, req model.CreateProjectProfileReq) (*model.ProjectProfile, error)
	UpdateProjectProfile(ctx context.Context, callerID, projectID, profileID string, req model.UpdateProjectProfileReq) (*model.ProjectProfile, error)
	DeleteProjectProfile(ctx context.Context, callerID, projectID, profileID string) error
	ListProjectProfiles(ctx context.Context, callerID, projectID, accessModule string) ([]*model.ProjectProfile, error)
	AssignDefaultProjectProfile(ctx context.Context, callerID, projectID, accessModule, profileID string) (*model.ProjectProfile, error)

	// Viewer3d profiles (global)
	CreateViewer3dProfile(ctx context.Context, callerID string, req model.GlobalProfileUpsertReq) (*model.Viewer3dProfile, error)
	UpdateViewer3dProfile(ctx context.Context, callerID, profileID string, req model.GlobalProfileUpsertReq) (*model.Viewer3dProfile, error)
	DeleteViewer3dProfile(ctx context.Context, callerID, profileID string) error
	ListViewer3dProfiles(ctx context.Context, callerID string) ([]*model.Viewer3dProfile, error)
	AssignDefaultViewer3dProfile(ctx context.Context, callerID, profileID string) (*model.Viewer3dProfile, error)

	// Security profiles (global)
	CreateSecurityProfile(ctx context.Context, callerID string, req model.GlobalProfileUpsertReq) (*model.SecurityProfile, error)
	UpdateSecurityProfile(ctx context.Context, callerID, profileID string, req model.GlobalProfileUpsertReq) (*model.SecurityProfile, error)
	DeleteSecurityProfile(ctx context.Context, callerID, profileID string) error
	ListSecurityProfiles(ctx context.Context, callerID string) ([]*model.SecurityProfile, error)
	AssignDefaultSecurityProfile(ctx context.Context, callerID, profileID string) (*model.SecurityProfile, error)

	// Logs
	GetProjectLogs(ctx context.Context, callerID, projectID string, req model.GetProjectLogsReq) (*model.ProjectLogListResult, error)
	GetAuditLogs(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogListResult, error)

	// Resolved permissions of a user on a project, for the frontend to shape
	// its UI and for service-to-service checks.
	GetUserPermissions(ctx context.Context, callerID, projectID, userID string) ([]model.Permission, error)
}

type Service struct {
	Repo     repository.AdminRepository
	LogRepo  repository.LogRepository
	Recorder *Recorder
	Resolver *policy.Resolver
	Logger   *zap.Logger

	importLocks scopeLocks
}

func NewService(repo repository.AdminRepository, logRepo repository.LogRepository, resolver *policy.Resolver, logger *zap.Logger) *Service {
	return &Service{
		Repo:     repo,
		LogRepo:  logRepo,
		Recorder: NewRecorder(logRepo, logger),
		Resolver: resolver,
		Logger:   logger,
	}
}

// scopeLocks serializes bulk imports per (project, access module) scope so
// that validate-then-insert cannot interleave with a concurrent import of the
// same scope. The unique name index remains the backstop for races with
// single creates.
type scopeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (s *scopeLocks) get(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}
