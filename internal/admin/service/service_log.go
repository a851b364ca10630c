package service

import (
	"context"

	"planadmin/internal/admin/model"
)

func (s *Service) GetProjectLogs(ctx context.Context, callerID, projectID string, req model.GetProjectLogsReq) (*model.ProjectLogListResult, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermViewProjectLog); err != nil {
		return nil, err
	}

	entries, total, err := s.LogRepo.FindProjectLogs(ctx, projectID, req)
	if err != nil {
		return nil, err
	}
	return &model.ProjectLogListResult{Data: entries, Page: req.Page, Size: req.Size, TotalCount: total}, nil
}

func (s *Service) GetAuditLogs(ctx context.Context, callerID string, req model.GetAuditLogsReq) (*model.AuditLogListResult, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermViewAuditLog); err != nil {
		return nil, err
	}

	entries, total, err := s.LogRepo.FindAuditLogs(ctx, req)
	if err != nil {
		return nil, err
	}
	return &model.AuditLogListResult{Data: entries, Page: req.Page, Size: req.Size, TotalCount: total}, nil
}

// GetUserPermissions returns the resolved permission list of a user on a
// project. Callers may always inspect themselves; inspecting someone else
// requires member management rights.
func (s *Service) GetUserPermissions(ctx context.Context, callerID, projectID, userID string) ([]model.Permission, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}

	project, err := s.Repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	if callerID != userID && project.AdminID != callerID {
		callerPerms, err := s.Resolver.Resolve(ctx, callerID, projectID)
		if err != nil {
			return nil, err
		}
		if !callerPerms.Has(model.PermManageMember) {
			return nil, ErrForbidden
		}
	}

	// The project admin holds every permission implicitly.
	if project.AdminID == userID {
		return model.AllPermissions(), nil
	}

	perms, err := s.Resolver.Resolve(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	return perms.Values(), nil
}
