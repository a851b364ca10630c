package service

import (
	"context"
	"testing"

	"planadmin/internal/admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBulkImport_AllOrNothing(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("ListProjectGroups", mock.Anything, "p1", "general").
		Return([]*model.ProjectGroup{{ID: "g1", Name: "Welders"}}, nil)
	repo.On("ListProjectProfiles", mock.Anything, "p1", "general").
		Return([]*model.ProjectProfile{{ID: "pp1", Name: "Foreman"}}, nil)

	result, err := svc.BulkImportProjectGroups(context.Background(), "admin", "p1", model.BulkImportGroupsReq{
		AccessModule: "general",
		Rows: []model.BulkImportRow{
			{Name: "Fitters", ProfileName: "Foreman"}, // valid
			{Name: ""},                                // missing name
			{Name: "fitters"},                         // duplicate within the batch
			{Name: "welders"},                         // collides with an existing group
			{Name: "Riggers", ProfileName: "Nope"},    // unknown profile
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Len(t, result.Results, 5)

	assert.True(t, result.Results[0].IsValid)

	assert.False(t, result.Results[1].IsValid)
	assert.Equal(t, model.RowCodeRequired, result.Results[1].Errors[0].ErrorCode)
	assert.Equal(t, model.ColumnName, result.Results[1].Errors[0].Column)

	assert.False(t, result.Results[2].IsValid)
	assert.Equal(t, model.RowCodeDuplicatedInFile, result.Results[2].Errors[0].ErrorCode)

	assert.False(t, result.Results[3].IsValid)
	assert.Equal(t, model.RowCodeAlreadyExist, result.Results[3].Errors[0].ErrorCode)

	assert.False(t, result.Results[4].IsValid)
	assert.Equal(t, model.ColumnProfile, result.Results[4].Errors[0].Column)
	assert.Equal(t, model.RowCodeProfileNotFound, result.Results[4].Errors[0].ErrorCode)

	repo.AssertNotCalled(t, "InsertProjectGroups", mock.Anything, mock.Anything)
}

func TestBulkImport_Commit(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("ListProjectGroups", mock.Anything, "p1", "general").Return(nil, nil)
	repo.On("ListProjectProfiles", mock.Anything, "p1", "general").
		Return([]*model.ProjectProfile{{ID: "pp1", Name: "Foreman"}}, nil)
	repo.On("InsertProjectGroups", mock.Anything, mock.MatchedBy(func(groups []*model.ProjectGroup) bool {
		return len(groups) == 2 &&
			groups[0].Name == "Fitters" && groups[0].ProjectProfileID == "pp1" &&
			groups[1].Name == "Riggers" && groups[1].ProjectProfileID == ""
	})).Return(nil)

	result, err := svc.BulkImportProjectGroups(context.Background(), "admin", "p1", model.BulkImportGroupsReq{
		AccessModule: "general",
		Rows: []model.BulkImportRow{
			// Profile names resolve case-insensitively.
			{Name: "Fitters", ProfileName: "foreman"},
			{Name: "Riggers"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.True(t, result.Results[0].IsValid)
	assert.True(t, result.Results[1].IsValid)
}

func TestAssignMember_UserNotFound(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1", Name: "Welders"}, nil)
	repo.On("GetUser", mock.Anything, "ghost").Return(nil, nil)

	err := svc.AssignMember(context.Background(), "admin", "p1", "g1", model.AssignMemberReq{UserID: "ghost"})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "AddGroupMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignMember_Success(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1", Name: "Welders"}, nil)
	repo.On("GetUser", mock.Anything, "u2").Return(&model.User{ID: "u2", Email: "u2@site.test"}, nil)
	repo.On("AddGroupMember", mock.Anything, "u2", "g1", "p1", "admin").Return(nil)

	err := svc.AssignMember(context.Background(), "admin", "p1", "g1", model.AssignMemberReq{UserID: "u2"})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListMembers_Paged(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	users := []*model.User{{ID: "u1"}, {ID: "u2"}}
	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1"}, nil)
	repo.On("ListGroupMembers", mock.Anything, "g1", "p1", 2, 10).Return(users, int64(12), nil)

	result, err := svc.ListMembers(context.Background(), "admin", "p1", "g1", model.ListMembersReq{Page: 2, Size: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), result.TotalCount)
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Data, 2)
}

func TestListNonMembers_ProjectGroupScopesToItsProject(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProjectGroup", mock.Anything, "g1").
		Return(&model.ProjectGroup{ID: "g1", ProjectID: "p1"}, nil)
	repo.On("GetProject", mock.Anything, "p1").Return(&model.Project{ID: "p1", AdminID: "admin"}, nil)
	repo.On("ListNonMembers", mock.Anything, "g1", mock.MatchedBy(func(req model.ListNonMembersReq) bool {
		return req.ProjectID == "p1"
	})).Return(nil, int64(0), nil)

	_, err := svc.ListNonMembers(context.Background(), "admin", "g1", model.ListNonMembersReq{Page: 1, Size: 20})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListNonMembers_UnknownGroup(t *testing.T) {
	repo := new(MockAdminRepository)
	svc, _ := newTestService(repo)

	repo.On("GetProjectGroup", mock.Anything, "ghost").Return(nil, nil)
	repo.On("GetGroup", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.ListNonMembers(context.Background(), "admin", "ghost", model.ListNonMembersReq{Page: 1, Size: 20})

	assert.ErrorIs(t, err, ErrNotFound)
}
