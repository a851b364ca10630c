package service

import (
	"context"
	"fmt"

	"planadmin/internal/admin/model"
)

func (s *Service) CreateGroup(ctx context.Context, callerID string, req model.CreateGroupReq) (*model.Group, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageGroup); err != nil {
		return nil, err
	}

	var profile *model.SecurityProfile
	if req.SecurityProfileID != "" {
		var err error
		profile, err = s.Repo.GetSecurityProfile(ctx, req.SecurityProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
	}

	existing, err := s.Repo.FindGroupByName(ctx, req.AccessModule, req.Name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	g := &model.Group{
		Name:              req.Name,
		SecurityProfileID: req.SecurityProfileID,
		AccessModule:      req.AccessModule,
		CreatedBy:         callerID,
		UpdatedBy:         callerID,
	}
	if err := s.Repo.CreateGroup(ctx, g); err != nil {
		return nil, mapDuplicate(err)
	}
	g.Profile = profile

	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         model.ModuleGroup,
		Action:         model.ActionCreate,
		TargetObjectID: g.ID,
		Description:    fmt.Sprintf("created group %q", g.Name),
		CreatedBy:      callerID,
	})
	return g, nil
}

func (s *Service) UpdateGroup(ctx context.Context, callerID, groupID string, req model.UpdateGroupReq) (*model.Group, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageGroup); err != nil {
		return nil, err
	}

	g, err := s.Repo.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}

	existing, err := s.Repo.FindGroupByName(ctx, g.AccessModule, req.Name, g.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	var profile *model.SecurityProfile
	if req.SecurityProfileID == nil {
		// Reference untouched; resolve the current one for the response.
		if g.SecurityProfileID != "" {
			if profile, err = s.Repo.GetSecurityProfile(ctx, g.SecurityProfileID); err != nil {
				return nil, err
			}
		}
	} else if *req.SecurityProfileID == "" {
		g.SecurityProfileID = ""
	} else {
		profile, err = s.Repo.GetSecurityProfile(ctx, *req.SecurityProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, ErrProfileNotFound
		}
		g.SecurityProfileID = profile.ID
	}

	g.Name = req.Name
	g.UpdatedBy = callerID
	if err := s.Repo.UpdateGroup(ctx, g); err != nil {
		return nil, mapStoreError(err)
	}
	g.Profile = profile

	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         model.ModuleGroup,
		Action:         model.ActionUpdate,
		TargetObjectID: g.ID,
		Description:    fmt.Sprintf("updated group %q", g.Name),
		CreatedBy:      callerID,
	})
	return g, nil
}

func (s *Service) DeleteGroup(ctx context.Context, callerID, groupID string) error {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageGroup); err != nil {
		return err
	}

	g, err := s.Repo.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrNotFound
	}

	members, err := s.Repo.CountUsersInGroup(ctx, g.ID)
	if err != nil {
		return err
	}
	if members > 0 {
		return ErrItemInUse
	}

	if err := s.Repo.SoftDeleteGroup(ctx, g.ID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         model.ModuleGroup,
		Action:         model.ActionDelete,
		TargetObjectID: g.ID,
		Description:    fmt.Sprintf("deleted group %q", g.Name),
		CreatedBy:      callerID,
	})
	return nil
}

func (s *Service) ListGroups(ctx context.Context, callerID, accessModule string) ([]*model.Group, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageGroup); err != nil {
		return nil, err
	}
	if accessModule != "" && !model.AllowedAccessModules[accessModule] {
		return nil, ErrNotFound
	}

	groups, err := s.Repo.ListGroups(ctx, accessModule)
	if err != nil {
		return nil, err
	}

	profileIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.SecurityProfileID != "" {
			profileIDs = append(profileIDs, g.SecurityProfileID)
		}
	}
	profiles, err := s.Repo.FindSecurityProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.SecurityProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	for _, g := range groups {
		g.Profile = byID[g.SecurityProfileID]
	}
	return groups, nil
}

func (s *Service) CreateProjectGroup(ctx context.Context, callerID, projectID string, req model.CreateProjectGroupReq) (*model.ProjectGroup, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageUserGroup); err != nil {
		return nil, err
	}

	profile, err := s.resolveProjectProfileRef(ctx, projectID, req.ProjectProfileID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindProjectGroupByName(ctx, projectID, req.AccessModule, req.Name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	g := &model.ProjectGroup{
		ProjectID:        projectID,
		Name:             req.Name,
		ProjectProfileID: req.ProjectProfileID,
		AccessModule:     req.AccessModule,
		CreatedBy:        callerID,
		UpdatedBy:        callerID,
	}
	if err := s.Repo.CreateProjectGroup(ctx, g); err != nil {
		return nil, mapDuplicate(err)
	}
	g.Profile = profile

	s.recordProjectGroupChange(callerID, projectID, model.ActionCreate, g.ID,
		nil, projectGroupSnapshot(g))
	return g, nil
}

func (s *Service) UpdateProjectGroup(ctx context.Context, callerID, projectID, groupID string, req model.UpdateProjectGroupReq) (*model.ProjectGroup, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageUserGroup); err != nil {
		return nil, err
	}

	g, err := s.Repo.GetProjectGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil || g.ProjectID != projectID {
		return nil, ErrNotFound
	}

	existing, err := s.Repo.FindProjectGroupByName(ctx, projectID, g.AccessModule, req.Name, g.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	// Capture the pre-change snapshot with the old profile name resolved.
	if g.ProjectProfileID != "" {
		if g.Profile, err = s.Repo.GetProjectProfile(ctx, g.ProjectProfileID); err != nil {
			return nil, err
		}
	}
	oldData := projectGroupSnapshot(g)

	switch {
	case req.ProjectProfileID == nil:
		// Reference untouched.
	case *req.ProjectProfileID == "":
		g.ProjectProfileID = ""
		g.Profile = nil
	default:
		resolved, err := s.resolveProjectProfileRef(ctx, projectID, *req.ProjectProfileID)
		if err != nil {
			return nil, err
		}
		g.ProjectProfileID = resolved.ID
		g.Profile = resolved
	}

	g.Name = req.Name
	g.UpdatedBy = callerID
	if err := s.Repo.UpdateProjectGroup(ctx, g); err != nil {
		return nil, mapStoreError(err)
	}

	s.recordProjectGroupChange(callerID, projectID, model.ActionUpdate, g.ID,
		oldData, projectGroupSnapshot(g))
	return g, nil
}

func (s *Service) DeleteProjectGroup(ctx context.Context, callerID, projectID, groupID string) error {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageUserGroup); err != nil {
		return err
	}

	g, err := s.Repo.GetProjectGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if g == nil || g.ProjectID != projectID {
		return ErrNotFound
	}

	members, err := s.Repo.CountUsersInGroup(ctx, g.ID)
	if err != nil {
		return err
	}
	if members > 0 {
		return ErrItemInUse
	}

	if g.ProjectProfileID != "" {
		if g.Profile, err = s.Repo.GetProjectProfile(ctx, g.ProjectProfileID); err != nil {
			return err
		}
	}

	if err := s.Repo.SoftDeleteProjectGroup(ctx, g.ID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.recordProjectGroupChange(callerID, projectID, model.ActionDelete, g.ID,
		projectGroupSnapshot(g), nil)
	return nil
}

func (s *Service) ListProjectGroups(ctx context.Context, callerID, projectID, accessModule string) ([]*model.ProjectGroup, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageUserGroup); err != nil {
		return nil, err
	}
	if accessModule != "" && !model.AllowedAccessModules[accessModule] {
		return nil, ErrNotFound
	}

	groups, err := s.Repo.ListProjectGroups(ctx, projectID, accessModule)
	if err != nil {
		return nil, err
	}

	profileIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.ProjectProfileID != "" {
			profileIDs = append(profileIDs, g.ProjectProfileID)
		}
	}
	profiles, err := s.Repo.FindProjectProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.ProjectProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	for _, g := range groups {
		g.Profile = byID[g.ProjectProfileID]
	}
	return groups, nil
}

// resolveProjectProfileRef validates a profile reference against the project.
// An empty id is a valid "no profile" reference.
func (s *Service) resolveProjectProfileRef(ctx context.Context, projectID, profileID string) (*model.ProjectProfile, error) {
	if profileID == "" {
		return nil, nil
	}
	profile, err := s.Repo.GetProjectProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ProjectID != projectID {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// projectGroupSnapshot builds the log representation of a project group with
// the profile's display name substituted for its id.
func projectGroupSnapshot(g *model.ProjectGroup) map[string]interface{} {
	snap := map[string]interface{}{
		"name":          g.Name,
		"access_module": g.AccessModule,
	}
	if g.Profile != nil {
		snap["profile"] = g.Profile.Name
	} else if g.ProjectProfileID != "" {
		snap["profile"] = g.ProjectProfileID
	}
	return snap
}

func (s *Service) recordProjectGroupChange(callerID, projectID, action, targetID string, oldData, newData map[string]interface{}) {
	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         model.ModuleProjectGroup,
		Action:         action,
		TargetObjectID: targetID,
		CreatedBy:      callerID,
	})
	s.Recorder.RecordProjectLog(&model.ProjectLog{
		ProjectID: projectID,
		Module:    model.ModuleProjectGroup,
		Action:    action,
		OldData:   oldData,
		NewData:   newData,
		CreatedBy: callerID,
	})
}
