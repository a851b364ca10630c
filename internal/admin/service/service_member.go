package service

import (
	"context"
	"fmt"
	"strings"

	"planadmin/internal/admin/model"
)

func (s *Service) AssignMember(ctx context.Context, callerID, projectID, groupID string, req model.AssignMemberReq) error {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageMember); err != nil {
		return err
	}

	g, err := s.Repo.GetProjectGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil || g.ProjectID != projectID {
		return ErrNotFound
	}

	user, err := s.Repo.GetUser(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.Repo.AddGroupMember(ctx, user.ID, g.ID, projectID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.recordMemberChange(callerID, projectID, model.ActionAssignMember, g, user)
	return nil
}

func (s *Service) RemoveMember(ctx context.Context, callerID, projectID, groupID, userID string) error {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageMember); err != nil {
		return err
	}

	g, err := s.Repo.GetProjectGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil || g.ProjectID != projectID {
		return ErrNotFound
	}

	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.Repo.RemoveGroupMember(ctx, user.ID, g.ID, projectID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.recordMemberChange(callerID, projectID, model.ActionRemoveMember, g, user)
	return nil
}

func (s *Service) ListMembers(ctx context.Context, callerID, projectID, groupID string, req model.ListMembersReq) (*model.UserListResult, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageMember); err != nil {
		return nil, err
	}

	g, err := s.Repo.GetProjectGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil || g.ProjectID != projectID {
		return nil, ErrNotFound
	}

	users, total, err := s.Repo.ListGroupMembers(ctx, g.ID, projectID, req.Page, req.Size)
	if err != nil {
		return nil, err
	}
	return &model.UserListResult{Data: users, Page: req.Page, Size: req.Size, TotalCount: total}, nil
}

// ListNonMembers resolves the group first: a project group authorizes
// against its project, an organization group against the global manage
// permission.
func (s *Service) ListNonMembers(ctx context.Context, callerID, groupID string, req model.ListNonMembersReq) (*model.UserListResult, error) {
	pg, err := s.Repo.GetProjectGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if pg != nil {
		req.ProjectID = pg.ProjectID
		if _, err := s.authorizeProject(ctx, callerID, pg.ProjectID, model.PermManageMember); err != nil {
			return nil, err
		}
	} else {
		og, err := s.Repo.GetGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}
		if og == nil {
			return nil, ErrNotFound
		}
		req.ProjectID = ""
		if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageGroup); err != nil {
			return nil, err
		}
	}

	users, total, err := s.Repo.ListNonMembers(ctx, groupID, req)
	if err != nil {
		return nil, err
	}
	return &model.UserListResult{Data: users, Page: req.Page, Size: req.Size, TotalCount: total}, nil
}

// BulkImportProjectGroups validates every row, then inserts all of them or
// none. The returned result always carries one entry per requested row,
// keyed by row index. Imports of the same (project, access module) scope are
// serialized so two batches cannot validate against the same snapshot.
func (s *Service) BulkImportProjectGroups(ctx context.Context, callerID, projectID string, req model.BulkImportGroupsReq) (*model.BulkImportResult, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageUserGroup); err != nil {
		return nil, err
	}

	lock := s.importLocks.get(projectID + "/" + req.AccessModule)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Repo.ListProjectGroups(ctx, projectID, req.AccessModule)
	if err != nil {
		return nil, err
	}
	existingNames := make(map[string]bool, len(existing))
	for _, g := range existing {
		existingNames[strings.ToLower(g.Name)] = true
	}

	profiles, err := s.Repo.ListProjectProfiles(ctx, projectID, req.AccessModule)
	if err != nil {
		return nil, err
	}
	profilesByName := make(map[string]*model.ProjectProfile, len(profiles))
	for _, p := range profiles {
		profilesByName[strings.ToLower(p.Name)] = p
	}

	result := &model.BulkImportResult{Results: make(map[int]model.RowValidationResult, len(req.Rows))}
	seen := make(map[string]bool, len(req.Rows))
	groups := make([]*model.ProjectGroup, 0, len(req.Rows))
	allValid := true

	for i, row := range req.Rows {
		var rowErrs []model.RowError
		nameKey := strings.ToLower(row.Name)

		switch {
		case row.Name == "":
			rowErrs = append(rowErrs, model.RowError{
				Column:       model.ColumnName,
				ErrorCode:    model.RowCodeRequired,
				ErrorMessage: "name is required",
			})
		case seen[nameKey]:
			rowErrs = append(rowErrs, model.RowError{
				Column:       model.ColumnName,
				ErrorCode:    model.RowCodeDuplicatedInFile,
				ErrorMessage: fmt.Sprintf("name %q appears more than once", row.Name),
			})
		case existingNames[nameKey]:
			rowErrs = append(rowErrs, model.RowError{
				Column:       model.ColumnName,
				ErrorCode:    model.RowCodeAlreadyExist,
				ErrorMessage: fmt.Sprintf("group %q already exists", row.Name),
			})
		}
		if row.Name != "" {
			seen[nameKey] = true
		}

		var profile *model.ProjectProfile
		if row.ProfileName != "" {
			profile = profilesByName[strings.ToLower(row.ProfileName)]
			if profile == nil {
				rowErrs = append(rowErrs, model.RowError{
					Column:       model.ColumnProfile,
					ErrorCode:    model.RowCodeProfileNotFound,
					ErrorMessage: fmt.Sprintf("profile %q not found", row.ProfileName),
				})
			}
		}

		if len(rowErrs) > 0 {
			allValid = false
			result.Results[i] = model.RowValidationResult{IsValid: false, Errors: rowErrs}
			continue
		}

		result.Results[i] = model.RowValidationResult{IsValid: true}
		g := &model.ProjectGroup{
			ProjectID:    projectID,
			Name:         row.Name,
			AccessModule: req.AccessModule,
			CreatedBy:    callerID,
			UpdatedBy:    callerID,
		}
		if profile != nil {
			g.ProjectProfileID = profile.ID
		}
		groups = append(groups, g)
	}

	if !allValid {
		return result, nil
	}

	if err := s.Repo.InsertProjectGroups(ctx, groups); err != nil {
		return nil, mapDuplicate(err)
	}
	result.Imported = len(groups)

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	s.Recorder.RecordAudit(&model.AuditLog{
		Module:      model.ModuleProjectGroup,
		Action:      model.ActionBulkImport,
		Description: fmt.Sprintf("imported %d groups", len(groups)),
		CreatedBy:   callerID,
	})
	s.Recorder.RecordProjectLog(&model.ProjectLog{
		ProjectID: projectID,
		Module:    model.ModuleProjectGroup,
		Action:    model.ActionBulkImport,
		NewData: map[string]interface{}{
			"access_module": req.AccessModule,
			"names":         names,
		},
		Description: fmt.Sprintf("imported %d groups", len(groups)),
		CreatedBy:   callerID,
	})
	return result, nil
}

func (s *Service) recordMemberChange(callerID, projectID, action string, g *model.ProjectGroup, user *model.User) {
	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         model.ModuleMember,
		Action:         action,
		TargetObjectID: user.ID,
		Description:    fmt.Sprintf("%s %s on group %q", action, user.Email, g.Name),
		CreatedBy:      callerID,
	})
	s.Recorder.RecordProjectLog(&model.ProjectLog{
		ProjectID: projectID,
		Module:    model.ModuleMember,
		Action:    action,
		NewData: map[string]interface{}{
			"group": g.Name,
			"user":  user.Email,
		},
		CreatedBy: callerID,
	})
}
