package service

import (
	"context"
	"errors"
	"testing"

	"planadmin/internal/admin/model"
	"planadmin/internal/admin/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestService(repo *MockAdminRepository) (*Service, *stubLogRepository) {
	logs := &stubLogRepository{}
	resolver := policy.NewResolver(repo, zap.NewNop())
	return NewService(repo, logs, resolver, zap.NewNop()), logs
}

func strPtr(s string) *string { return &s }

func TestCreateProjectGroup_AdminBypass(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("FindProjectGroupByName", mock.Anything, "p1", "general", "Welders", "").Return(nil, nil)
	repo.On("CreateProjectGroup", mock.Anything, mock.Anything).Return(nil)

	g, err := svc.CreateProjectGroup(context.Background(), "admin", "p1", model.CreateProjectGroupReq{
		Name:         "Welders",
		AccessModule: "general",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Welders", g.Name)
	assert.Equal(t, "p1", g.ProjectID)
	// Admins never go through permission resolution.
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestCreateProjectGroup_NotFoundBeforeForbidden(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.CreateProjectGroup(context.Background(), "u1", "missing", model.CreateProjectGroupReq{
		Name:         "Welders",
		AccessModule: "general",
	})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestCreateProjectGroup_Forbidden(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "someone-else"}, nil)
	repo.On("GetUser", mock.Anything, "u1").Return(&model.User{ID: "u1"}, nil)

	_, err := svc.CreateProjectGroup(context.Background(), "u1", "p1", model.CreateProjectGroupReq{
		Name:         "Welders",
		AccessModule: "general",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "CreateProjectGroup", mock.Anything, mock.Anything)
}

func TestCreateProjectGroup_DuplicateName(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	// The store matches names case-insensitively: "welders" collides with "Welders".
	repo.On("FindProjectGroupByName", mock.Anything, "p1", "general", "welders", "").
		Return(&model.ProjectGroup{ID: "g1", Name: "Welders"}, nil)

	_, err := svc.CreateProjectGroup(context.Background(), "admin", "p1", model.CreateProjectGroupReq{
		Name:         "welders",
		AccessModule: "general",
	})

	assert.ErrorIs(t, err, ErrDuplicateName)
	repo.AssertNotCalled(t, "CreateProjectGroup", mock.Anything, mock.Anything)
}

func TestCreateProjectGroup_ProfileNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectProfile", mock.Anything, "missing-profile").Return(nil, nil)

	_, err := svc.CreateProjectGroup(context.Background(), "admin", "p1", model.CreateProjectGroupReq{
		Name:             "Welders",
		ProjectProfileID: "missing-profile",
		AccessModule:     "general",
	})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCreateProjectGroup_ProfileFromOtherProject(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectProfile", mock.Anything, "pp9").
		Return(&model.ProjectProfile{ID: "pp9", ProjectID: "other-project"}, nil)

	_, err := svc.CreateProjectGroup(context.Background(), "admin", "p1", model.CreateProjectGroupReq{
		Name:             "Welders",
		ProjectProfileID: "pp9",
		AccessModule:     "general",
	})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateProjectGroup_ClearProfile(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1", Name: "Welders", ProjectProfileID: "pp1", AccessModule: "general"}, nil)
	repo.On("FindProjectGroupByName", mock.Anything, "p1", "general", "Welders", "g1").Return(nil, nil)
	repo.On("GetProjectProfile", mock.Anything, "pp1").
		Return(&model.ProjectProfile{ID: "pp1", ProjectID: "p1", Name: "Foreman"}, nil)
	repo.On("UpdateProjectGroup", mock.Anything, mock.MatchedBy(func(g *model.ProjectGroup) bool {
		return g.ProjectProfileID == ""
	})).Return(nil)

	g, err := svc.UpdateProjectGroup(context.Background(), "admin", "p1", "g1", model.UpdateProjectGroupReq{
		Name:             "Welders",
		ProjectProfileID: strPtr(""),
	})

	assert.NoError(t, err)
	assert.Empty(t, g.ProjectProfileID)
	assert.Nil(t, g.Profile)
}

func TestUpdateProjectGroup_KeepProfileWhenNil(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1", Name: "Welders", ProjectProfileID: "pp1", AccessModule: "general"}, nil)
	repo.On("FindProjectGroupByName", mock.Anything, "p1", "general", "Fitters", "g1").Return(nil, nil)
	repo.On("GetProjectProfile", mock.Anything, "pp1").
		Return(&model.ProjectProfile{ID: "pp1", ProjectID: "p1", Name: "Foreman"}, nil)
	repo.On("UpdateProjectGroup", mock.Anything, mock.MatchedBy(func(g *model.ProjectGroup) bool {
		return g.ProjectProfileID == "pp1" && g.Name == "Fitters"
	})).Return(nil)

	g, err := svc.UpdateProjectGroup(context.Background(), "admin", "p1", "g1", model.UpdateProjectGroupReq{
		Name: "Fitters",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pp1", g.ProjectProfileID)
}

func TestDeleteProjectGroup_InUse(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1", Name: "Welders"}, nil)
	repo.On("CountUsersInGroup", mock.Anything, "g1").Return(int64(3), nil)

	err := svc.DeleteProjectGroup(context.Background(), "admin", "p1", "g1")

	assert.ErrorIs(t, err, ErrItemInUse)
	repo.AssertNotCalled(t, "SoftDeleteProjectGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteProjectGroup_SucceedsWhenLogStoreDown(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, logs := newTestService(repo)
	logs.insertErr = errors.New("log store down")

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1", Name: "Welders"}, nil)
	repo.On("CountUsersInGroup", mock.Anything, "g1").Return(int64(0), nil)
	repo.On("SoftDeleteProjectGroup", mock.Anything, "g1", "admin").Return(nil)

	err := svc.DeleteProjectGroup(context.Background(), "admin", "p1", "g1")

	assert.NoError(t, err)
}

func TestDeleteProjectGroup_WrongProject(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "other", Name: "Welders"}, nil)

	err := svc.DeleteProjectGroup(context.Background(), "admin", "p1", "g1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGroup_RequiresGlobalPermission(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	// Caller has an org group whose security profile lacks the manage permission.
	repo.On("GetUser", mock.Anything, "u1").Return(&model.User{ID: "u1", GroupIDs: []string{"og1"}}, nil)
	repo.On("FindGroupsByIDs", mock.Anything, []string{"og1"}).
		Return([]*model.Group{{ID: "og1", SecurityProfileID: "sp1"}}, nil)
	repo.On("FindSecurityProfilesByIDs", mock.Anything, []string{"sp1"}).
		Return([]*model.SecurityProfile{{ID: "sp1", Permissions: []model.Permission{model.PermViewAuditLog}}}, nil)

	_, err := svc.CreateGroup(context.Background(), "u1", model.CreateGroupReq{
		Name:         "Planners",
		AccessModule: "general",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateGroup_Success(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetUser", mock.Anything, "u1").Return(&model.User{ID: "u1", GroupIDs: []string{"og1"}}, nil)
	repo.On("FindGroupsByIDs", mock.Anything, []string{"og1"}).
		Return([]*model.Group{{ID: "og1", SecurityProfileID: "sp1"}}, nil)
	repo.On("FindSecurityProfilesByIDs", mock.Anything, []string{"sp1"}).
		Return([]*model.SecurityProfile{{ID: "sp1", Permissions: []model.Permission{model.PermAdminManageGroup}}}, nil)
	repo.On("FindGroupByName", mock.Anything, "general", "Planners", "").Return(nil, nil)
	repo.On("CreateGroup", mock.Anything, mock.Anything).Return(nil)

	g, err := svc.CreateGroup(context.Background(), "u1", model.CreateGroupReq{
		Name:         "Planners",
		AccessModule: "general",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Planners", g.Name)
}
