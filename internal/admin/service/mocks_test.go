package service

import (
	"context"
	"sync/atomic"

	"planadmin/internal/admin/model"

	"github.com/stretchr/testify/mock"
)

// MockAdminRepository is a testify mock over the full store contract.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetProject(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) ListGroupMembers(ctx context.Context, groupID, projectID string, page, size int) ([]*model.User, int64, error) {
	args := m.Called(ctx, groupID, projectID, page, size)
	var users []*model.User
	if v := args.Get(0); v != nil {
		users = v.([]*model.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) ListNonMembers(ctx context.Context, groupID string, req model.ListNonMembersReq) ([]*model.User, int64, error) {
	args := m.Called(ctx, groupID, req)
	var users []*model.User
	if v := args.Get(0); v != nil {
		users = v.([]*model.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) CountUsersInGroup(ctx context.Context, groupID string) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) AddGroupMember(ctx context.Context, userID, groupID, projectID, updatedBy string) error {
	return m.Called(ctx, userID, groupID, projectID, updatedBy).Error(0)
}

func (m *MockAdminRepository) RemoveGroupMember(ctx context.Context, userID, groupID, projectID, updatedBy string) error {
	return m.Called(ctx, userID, groupID, projectID, updatedBy).Error(0)
}

func (m *MockAdminRepository) GetGroup(ctx context.Context, id string) (*model.Group, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindGroupsByIDs(ctx context.Context, ids []string) ([]*model.Group, error) {
	args := m.Called(ctx, ids)
	if g := args.Get(0); g != nil {
		return g.([]*model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) ListGroups(ctx context.Context, accessModule string) ([]*model.Group, error) {
	args := m.Called(ctx, accessModule)
	if g := args.Get(0); g != nil {
		return g.([]*model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindGroupByName(ctx context.Context, accessModule, name, excludeID string) (*model.Group, error) {
	args := m.Called(ctx, accessModule, name, excludeID)
	if g := args.Get(0); g != nil {
		return g.(*model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) CreateGroup(ctx context.Context, g *model.Group) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockAdminRepository) UpdateGroup(ctx context.Context, g *model.Group) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockAdminRepository) SoftDeleteGroup(ctx context.Context, id, deletedBy string) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *MockAdminRepository) GetProjectGroup(ctx context.Context, id string) (*model.ProjectGroup, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*model.ProjectGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindProjectGroupByName(ctx context.Context, projectID, accessModule, name, excludeID string) (*model.ProjectGroup, error) {
	args := m.Called(ctx, projectID, accessModule, name, excludeID)
	if g := args.Get(0); g != nil {
		return g.(*model.ProjectGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) ListProjectGroups(ctx context.Context, projectID, accessModule string) ([]*model.ProjectGroup, error) {
	args := m.Called(ctx, projectID, accessModule)
	if g := args.Get(0); g != nil {
		return g.([]*model.ProjectGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindProjectGroupsByIDs(ctx context.Context, ids []string) ([]*model.ProjectGroup, error) {
	args := m.Called(ctx, ids)
	if g := args.Get(0); g != nil {
		return g.([]*model.ProjectGroup), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) CreateProjectGroup(ctx context.Context, g *model.ProjectGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockAdminRepository) InsertProjectGroups(ctx context.Context, groups []*model.ProjectGroup) error {
	return m.Called(ctx, groups).Error(0)
}

func (m *MockAdminRepository) UpdateProjectGroup(ctx context.Context, g *model.ProjectGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockAdminRepository) SoftDeleteProjectGroup(ctx context.Context, id, deletedBy string) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *MockAdminRepository) CountProjectGroupsByProfile(ctx context.Context, profileID string) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) CountGroupsBySecurityProfile(ctx context.Context, profileID string) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) GetProjectProfile(ctx context.Context, id string) (*model.ProjectProfile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.ProjectProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindProjectProfileByName(ctx context.Context, projectID, accessModule, name, excludeID string) (*model.ProjectProfile, error) {
	args := m.Called(ctx, projectID, accessModule, name, excludeID)
	if p := args.Get(0); p != nil {
		return p.(*model.ProjectProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) ListProjectProfiles(ctx context.Context, projectID, accessModule string) ([]*model.ProjectProfile, error) {
	args := m.Called(ctx, projectID, accessModule)
	if p := args.Get(0); p != nil {
		return p.([]*model.ProjectProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindProjectProfilesByIDs(ctx context.Context, ids []string) ([]*model.ProjectProfile, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]*model.ProjectProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) CreateProjectProfile(ctx context.Context, p *model.ProjectProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockAdminRepository) UpdateProjectProfile(ctx context.Context, p *model.ProjectProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockAdminRepository) SoftDeleteProjectProfile(ctx context.Context, id, deletedBy string) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *MockAdminRepository) SetDefaultProjectProfile(ctx context.Context, projectID, accessModule, id, updatedBy string) (*model.ProjectProfile, error) {
	args := m.Called(ctx, projectID, accessModule, id, updatedBy)
	if p := args.Get(0); p != nil {
		return p.(*model.ProjectProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) GetViewer3dProfile(ctx context.Context, id string) (*model.Viewer3dProfile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Viewer3dProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindViewer3dProfileByName(ctx context.Context, name, excludeID string) (*model.Viewer3dProfile, error) {
	args := m.Called(ctx, name, excludeID)
	if p := args.Get(0); p != nil {
		return p.(*model.Viewer3dProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) ListViewer3dProfiles(ctx context.Context) ([]*model.Viewer3dProfile, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*model.Viewer3dProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) CreateViewer3dProfile(ctx context.Context, p *model.Viewer3dProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockAdminRepository) UpdateViewer3dProfile(ctx context.Context, p *model.Viewer3dProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockAdminRepository) SoftDeleteViewer3dProfile(ctx context.Context, id, deletedBy string) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *MockAdminRepository) SetDefaultViewer3dProfile(ctx context.Context, id, updatedBy string) (*model.Viewer3dProfile, error) {
	args := m.Called(ctx, id, updatedBy)
	if p := args.Get(0); p != nil {
		return p.(*model.Viewer3dProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) GetSecurityProfile(ctx context.Context, id string) (*model.SecurityProfile, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.SecurityProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindSecurityProfilesByIDs(ctx context.Context, ids []string) ([]*model.SecurityProfile, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]*model.SecurityProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindSecurityProfileByName(ctx context.Context, name, excludeID string) (*model.SecurityProfile, error) {
	args := m.Called(ctx, name, excludeID)
	if p := args.Get(0); p != nil {
		return p.(*model.SecurityProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) ListSecurityProfiles(ctx context.Context) ([]*model.SecurityProfile, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]*model.SecurityProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) CreateSecurityProfile(ctx context.Context, p *model.SecurityProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockAdminRepository) UpdateSecurityProfile(ctx context.Context, p *model.SecurityProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockAdminRepository) SoftDeleteSecurityProfile(ctx context.Context, id, deletedBy string) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *MockAdminRepository) SetDefaultSecurityProfile(ctx context.Context, id, updatedBy string) (*model.SecurityProfile, error) {
	args := m.Called(ctx, id, updatedBy)
	if p := args.Get(0); p != nil {
		return p.(*model.SecurityProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// stubLogRepository is a tolerant log store for tests. Inserts count calls
// and return the configured error; recorder failures must never surface to
// the mutation path.
type stubLogRepository struct {
	insertErr    error
	auditCount   atomic.Int64
	projectCount atomic.Int64
}

func (s *stubLogRepository) InsertAuditLog(ctx context.Context, entry *model.AuditLog) error {
	s.auditCount.Add(1)
	return s.insertErr
}

func (s *stubLogRepository) InsertProjectLog(ctx context.Context, entry *model.ProjectLog) error {
	s.projectCount.Add(1)
	return s.insertErr
}

func (s *stubLogRepository) FindAuditLogs(ctx context.Context, req model.GetAuditLogsReq) ([]*model.AuditLog, int64, error) {
	return nil, 0, nil
}

func (s *stubLogRepository) FindProjectLogs(ctx context.Context, projectID string, req model.GetProjectLogsReq) ([]*model.ProjectLog, int64, error) {
	return nil, 0, nil
}

func (s *stubLogRepository) EnsureLogIndexes(ctx context.Context) error { return nil }
