package service

import (
	"context"

	"planadmin/internal/admin/model"
)

// authorizeProject gates a project-scoped operation. Existence is checked
// before permission, so a caller probing an unknown project learns only that
// it does not exist. The project admin bypasses permission resolution.
func (s *Service) authorizeProject(ctx context.Context, callerID, projectID string, required model.Permission) (*model.Project, error) {
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

	if project.AdminID == callerID {
		return project, nil
	}

	perms, err := s.Resolver.Resolve(ctx, callerID, projectID)
	if err != nil {
		return nil, err
	}
	if !perms.Has(required) {
		return nil, ErrForbidden
	}
	return project, nil
}

// authorizeGlobal gates organization-wide operations. The caller's effective
// permissions come from the security profiles of their organization groups.
func (s *Service) authorizeGlobal(ctx context.Context, callerID string, required model.Permission) error {
	if callerID == "" {
		return ErrUnauthorized
	}

	user, err := s.Repo.GetUser(ctx, callerID)
	if err != nil {
		return err
	}
	if user == nil || len(user.GroupIDs) == 0 {
		return ErrForbidden
	}

	groups, err := s.Repo.FindGroupsByIDs(ctx, user.GroupIDs)
	if err != nil {
		return err
	}
	profileIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.SecurityProfileID != "" {
			profileIDs = append(profileIDs, g.SecurityProfileID)
		}
	}
	if len(profileIDs) == 0 {
		return ErrForbidden
	}

	profiles, err := s.Repo.FindSecurityProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		for _, perm := range p.Permissions {
			if perm == required {
				return nil
			}
		}
	}
	return ErrForbidden
}
