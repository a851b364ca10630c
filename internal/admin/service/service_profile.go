package service

import (
	"context"
	"fmt"

	"planadmin/internal/admin/model"
)

func (s *Service) CreateProjectProfile(ctx context.Context, callerID, projectID string, req model.CreateProjectProfileReq) (*model.ProjectProfile, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageProjectProfile); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindProjectProfileByName(ctx, projectID, req.AccessModule, req.Name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	p := &model.ProjectProfile{
		ProjectID:    projectID,
		Name:         req.Name,
		AccessModule: req.AccessModule,
		Permissions:  req.Permissions,
		CreatedBy:    callerID,
		UpdatedBy:    callerID,
	}
	if err := s.Repo.CreateProjectProfile(ctx, p); err != nil {
		return nil, mapDuplicate(err)
	}

	s.recordProfileChange(callerID, projectID, model.ModuleProjectProfile, model.ActionCreate, p.ID,
		nil, profileSnapshot(p.Name, p.Permissions))
	return p, nil
}

func (s *Service) UpdateProjectProfile(ctx context.Context, callerID, projectID, profileID string, req model.UpdateProjectProfileReq) (*model.ProjectProfile, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageProjectProfile); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetProjectProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.ProjectID != projectID {
		return nil, ErrNotFound
	}

	existing, err := s.Repo.FindProjectProfileByName(ctx, projectID, p.AccessModule, req.Name, p.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	oldData := profileSnapshot(p.Name, p.Permissions)
	p.Name = req.Name
	p.Permissions = req.Permissions
	p.UpdatedBy = callerID
	if err := s.Repo.UpdateProjectProfile(ctx, p); err != nil {
		return nil, mapStoreError(err)
	}

	s.recordProfileChange(callerID, projectID, model.ModuleProjectProfile, model.ActionUpdate, p.ID,
		oldData, profileSnapshot(p.Name, p.Permissions))
	return p, nil
}

func (s *Service) DeleteProjectProfile(ctx context.Context, callerID, projectID, profileID string) error {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageProjectProfile); err != nil {
		return err
	}

	p, err := s.Repo.GetProjectProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if p == nil || p.ProjectID != projectID {
		return ErrNotFound
	}

	refs, err := s.Repo.CountProjectGroupsByProfile(ctx, p.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrItemInUse
	}

	if err := s.Repo.SoftDeleteProjectProfile(ctx, p.ID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.recordProfileChange(callerID, projectID, model.ModuleProjectProfile, model.ActionDelete, p.ID,
		profileSnapshot(p.Name, p.Permissions), nil)
	return nil
}

func (s *Service) ListProjectProfiles(ctx context.Context, callerID, projectID, accessModule string) ([]*model.ProjectProfile, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageProjectProfile); err != nil {
		return nil, err
	}
	if accessModule != "" && !model.AllowedAccessModules[accessModule] {
		return nil, ErrNotFound
	}
	return s.Repo.ListProjectProfiles(ctx, projectID, accessModule)
}

// AssignDefaultProjectProfile marks one profile as the default selection of
// its (project, access module) scope. The store clears the flag on every
// sibling in the same transaction.
func (s *Service) AssignDefaultProjectProfile(ctx context.Context, callerID, projectID, accessModule, profileID string) (*model.ProjectProfile, error) {
	if _, err := s.authorizeProject(ctx, callerID, projectID, model.PermManageProjectProfile); err != nil {
		return nil, err
	}
	if !model.AllowedAccessModules[accessModule] {
		return nil, ErrNotFound
	}

	p, err := s.Repo.GetProjectProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.ProjectID != projectID || p.AccessModule != accessModule {
		return nil, ErrNotFound
	}

	updated, err := s.Repo.SetDefaultProjectProfile(ctx, projectID, accessModule, profileID, callerID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.recordProfileChange(callerID, projectID, model.ModuleProjectProfile, model.ActionSetDefault, p.ID,
		nil, map[string]interface{}{"name": p.Name, "is_default_select": true})
	return updated, nil
}

func (s *Service) CreateViewer3dProfile(ctx context.Context, callerID string, req model.GlobalProfileUpsertReq) (*model.Viewer3dProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermViewer3dManageProfile); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindViewer3dProfileByName(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	p := &model.Viewer3dProfile{
		Name:        req.Name,
		Permissions: req.Permissions,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
	}
	if err := s.Repo.CreateViewer3dProfile(ctx, p); err != nil {
		return nil, mapDuplicate(err)
	}

	s.recordGlobalChange(callerID, model.ModuleViewer3dProfile, model.ActionCreate, p.ID, p.Name)
	return p, nil
}

func (s *Service) UpdateViewer3dProfile(ctx context.Context, callerID, profileID string, req model.GlobalProfileUpsertReq) (*model.Viewer3dProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermViewer3dManageProfile); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetViewer3dProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	existing, err := s.Repo.FindViewer3dProfileByName(ctx, req.Name, p.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	p.Name = req.Name
	p.Permissions = req.Permissions
	p.UpdatedBy = callerID
	if err := s.Repo.UpdateViewer3dProfile(ctx, p); err != nil {
		return nil, mapStoreError(err)
	}

	s.recordGlobalChange(callerID, model.ModuleViewer3dProfile, model.ActionUpdate, p.ID, p.Name)
	return p, nil
}

func (s *Service) DeleteViewer3dProfile(ctx context.Context, callerID, profileID string) error {
	if err := s.authorizeGlobal(ctx, callerID, model.PermViewer3dManageProfile); err != nil {
		return err
	}

	p, err := s.Repo.GetViewer3dProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	if err := s.Repo.SoftDeleteViewer3dProfile(ctx, p.ID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.recordGlobalChange(callerID, model.ModuleViewer3dProfile, model.ActionDelete, p.ID, p.Name)
	return nil
}

func (s *Service) ListViewer3dProfiles(ctx context.Context, callerID string) ([]*model.Viewer3dProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermViewer3dManageProfile); err != nil {
		return nil, err
	}
	return s.Repo.ListViewer3dProfiles(ctx)
}

func (s *Service) AssignDefaultViewer3dProfile(ctx context.Context, callerID, profileID string) (*model.Viewer3dProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermViewer3dManageProfile); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetViewer3dProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	updated, err := s.Repo.SetDefaultViewer3dProfile(ctx, profileID, callerID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.recordGlobalChange(callerID, model.ModuleViewer3dProfile, model.ActionSetDefault, p.ID, p.Name)
	return updated, nil
}

func (s *Service) CreateSecurityProfile(ctx context.Context, callerID string, req model.GlobalProfileUpsertReq) (*model.SecurityProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageSecurityProfile); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindSecurityProfileByName(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	p := &model.SecurityProfile{
		Name:        req.Name,
		Permissions: req.Permissions,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
	}
	if err := s.Repo.CreateSecurityProfile(ctx, p); err != nil {
		return nil, mapDuplicate(err)
	}

	s.recordGlobalChange(callerID, model.ModuleSecurityProfile, model.ActionCreate, p.ID, p.Name)
	return p, nil
}

func (s *Service) UpdateSecurityProfile(ctx context.Context, callerID, profileID string, req model.GlobalProfileUpsertReq) (*model.SecurityProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageSecurityProfile); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetSecurityProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	existing, err := s.Repo.FindSecurityProfileByName(ctx, req.Name, p.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	p.Name = req.Name
	p.Permissions = req.Permissions
	p.UpdatedBy = callerID
	if err := s.Repo.UpdateSecurityProfile(ctx, p); err != nil {
		return nil, mapStoreError(err)
	}

	s.recordGlobalChange(callerID, model.ModuleSecurityProfile, model.ActionUpdate, p.ID, p.Name)
	return p, nil
}

func (s *Service) DeleteSecurityProfile(ctx context.Context, callerID, profileID string) error {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageSecurityProfile); err != nil {
		return err
	}

	p, err := s.Repo.GetSecurityProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	refs, err := s.Repo.CountGroupsBySecurityProfile(ctx, p.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrItemInUse
	}

	if err := s.Repo.SoftDeleteSecurityProfile(ctx, p.ID, callerID); err != nil {
		return mapStoreError(err)
	}

	s.recordGlobalChange(callerID, model.ModuleSecurityProfile, model.ActionDelete, p.ID, p.Name)
	return nil
}

func (s *Service) ListSecurityProfiles(ctx context.Context, callerID string) ([]*model.SecurityProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageSecurityProfile); err != nil {
		return nil, err
	}
	return s.Repo.ListSecurityProfiles(ctx)
}

func (s *Service) AssignDefaultSecurityProfile(ctx context.Context, callerID, profileID string) (*model.SecurityProfile, error) {
	if err := s.authorizeGlobal(ctx, callerID, model.PermAdminManageSecurityProfile); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetSecurityProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	updated, err := s.Repo.SetDefaultSecurityProfile(ctx, profileID, callerID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.recordGlobalChange(callerID, model.ModuleSecurityProfile, model.ActionSetDefault, p.ID, p.Name)
	return updated, nil
}

func profileSnapshot(name string, perms []model.Permission) map[string]interface{} {
	vals := make([]string, 0, len(perms))
	for _, p := range perms {
		vals = append(vals, string(p))
	}
	return map[string]interface{}{
		"name":        name,
		"permissions": vals,
	}
}

func (s *Service) recordProfileChange(callerID, projectID, module, action, targetID string, oldData, newData map[string]interface{}) {
	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         module,
		Action:         action,
		TargetObjectID: targetID,
		CreatedBy:      callerID,
	})
	s.Recorder.RecordProjectLog(&model.ProjectLog{
		ProjectID: projectID,
		Module:    module,
		Action:    action,
		OldData:   oldData,
		NewData:   newData,
		CreatedBy: callerID,
	})
}

func (s *Service) recordGlobalChange(callerID, module, action, targetID, name string) {
	s.Recorder.RecordAudit(&model.AuditLog{
		Module:         module,
		Action:         action,
		TargetObjectID: targetID,
		Description:    fmt.Sprintf("%s %s %q", action, module, name),
		CreatedBy:      callerID,
	})
}
