package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planadmin/internal/admin/model"
	"planadmin/internal/admin/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubService overrides only the operations a test exercises.
type stubService struct {
	service.AdminService

	createProjectGroup func(ctx context.Context, callerID, projectID string, req model.CreateProjectGroupReq) (*model.ProjectGroup, error)
	deleteProjectGroup func(ctx context.Context, callerID, projectID, groupID string) error
	getAuditLogs       func(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogListResult, error)
}

func (s *stubService) CreateProjectGroup(ctx context.Context, callerID, projectID string, req model.CreateProjectGroupReq) (*model.ProjectGroup, error) {
	return s.createProjectGroup(ctx, callerID, projectID, req)
}

func (s *stubService) DeleteProjectGroup(ctx context.Context, callerID, projectID, groupID string) error {
	return s.deleteProjectGroup(ctx, callerID, projectID, groupID)
}

func (s *stubService) GetAuditLogs(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogListResult, error) {
	return s.getAuditLogs(ctx, callerID, req)
}

func newContext(method, path, body, callerID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if callerID != "" {
		req.Header.Set(headerUserID, callerID)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestPostProjectGroup_MissingCaller(t *testing.T) {
	h := NewAdminHandler(&stubService{}, zap.NewNop())

	c, rec := newContext(http.MethodPost, "/api/v1/projects/p1/groups",
		`{"name":"Welders","access_module":"general"}`, "")
	c.SetParamNames("projectId")
	c.SetParamValues("p1")

	assert.NoError(t, h.PostProjectGroup(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, model.CodeUnauthorized, decodeError(t, rec).Error.Code)
}

func TestPostProjectGroup_Created(t *testing.T) {
	svc := &stubService{
		createProjectGroup: func(ctx context.Context, callerID, projectID string, req model.CreateProjectGroupReq) (*model.ProjectGroup, error) {
			return &model.ProjectGroup{ID: "g1", ProjectID: projectID, Name: req.Name, AccessModule: req.AccessModule}, nil
		},
	}
	h := NewAdminHandler(svc, zap.NewNop())

	c, rec := newContext(http.MethodPost, "/api/v1/projects/p1/groups",
		`{"name":"Welders","access_module":"general"}`, "admin")
	c.SetParamNames("projectId")
	c.SetParamValues("p1")

	assert.NoError(t, h.PostProjectGroup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var g model.ProjectGroup
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "g1", g.ID)
	assert.Equal(t, "Welders", g.Name)
}

func TestPostProjectGroup_Forbidden(t *testing.T) {
	svc := &stubService{
		createProjectGroup: func(ctx context.Context, callerID, projectID string, req model.CreateProjectGroupReq) (*model.ProjectGroup, error) {
			return nil, service.ErrForbidden
		},
	}
	h := NewAdminHandler(svc, zap.NewNop())

	c, rec := newContext(http.MethodPost, "/api/v1/projects/p1/groups",
		`{"name":"Welders","access_module":"general"}`, "u1")
	c.SetParamNames("projectId")
	c.SetParamValues("p1")

	assert.NoError(t, h.PostProjectGroup(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, model.CodeForbidden, decodeError(t, rec).Error.Code)
}

func TestPostProjectGroup_InvalidAccessModule(t *testing.T) {
	h := NewAdminHandler(&stubService{}, zap.NewNop())

	c, rec := newContext(http.MethodPost, "/api/v1/projects/p1/groups",
		`{"name":"Welders","access_module":"bogus"}`, "admin")
	c.SetParamNames("projectId")
	c.SetParamValues("p1")

	assert.NoError(t, h.PostProjectGroup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.CodeBadRequest, decodeError(t, rec).Error.Code)
}

func TestDeleteProjectGroup_InUse(t *testing.T) {
	svc := &stubService{
		deleteProjectGroup: func(ctx context.Context, callerID, projectID, groupID string) error {
			return service.ErrItemInUse
		},
	}
	h := NewAdminHandler(svc, zap.NewNop())

	c, rec := newContext(http.MethodDelete, "/api/v1/projects/p1/groups/g1", "", "admin")
	c.SetParamNames("projectId", "groupId")
	c.SetParamValues("p1", "g1")

	assert.NoError(t, h.DeleteProjectGroup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, model.CodeItemIsUsing, decodeError(t, rec).Error.Code)
}

func TestGetAuditLogs_DefaultsPaging(t *testing.T) {
	var captured model.GetAuditLogsReq
	svc := &stubService{
		getAuditLogs: func(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogListResult, error) {
			captured = req
			return &model.AuditLogListResult{Data: nil, Page: req.Page, Size: req.Size}, nil
		},
	}
	h := NewAdminHandler(svc, zap.NewNop())

	c, rec := newContext(http.MethodGet, "/api/v1/audit_logs", "", "auditor")

	assert.NoError(t, h.GetAuditLogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.Size)
}
