package policy

import (
	"context"

	"planadmin/internal/admin/model"

	"go.uber.org/zap"
)

// Store is the read surface the resolver needs. It is satisfied by the admin
// repository; soft-deleted records are already excluded at that layer.
type Store interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	FindProjectGroupsByIDs(ctx context.Context, ids []string) ([]*model.ProjectGroup, error)
	FindProjectProfilesByIDs(ctx context.Context, ids []string) ([]*model.ProjectProfile, error)
}

// Resolver computes the effective permissions of a user on a project. It is
// read-only and tolerant: missing or soft-deleted group/profile references
// narrow the result instead of failing.
type Resolver struct {
	store  Store
	logger *zap.Logger
}

func NewResolver(store Store, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve returns the union of all permissions reachable through the user's
// project-group memberships for the project, plus direct overrides on the
// user record. A user with no memberships gets an empty set, not an error;
// only store failures propagate. The project-admin bypass is the gateway's
// concern, not the resolver's.
func (r *Resolver) Resolve(ctx context.Context, userID, projectID string) (model.PermissionSet, error) {
	perms := model.NewPermissionSet()

	user, err := r.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return perms, nil
	}

	groupIDs := user.GroupIDsForProject(projectID)
	if len(groupIDs) > 0 {
		groups, err := r.store.FindProjectGroupsByIDs(ctx, groupIDs)
		if err != nil {
			return nil, err
		}

		profileIDs := make([]string, 0, len(groups))
		for _, g := range groups {
			if g.ProjectProfileID != "" {
				profileIDs = append(profileIDs, g.ProjectProfileID)
			}
		}
		if len(groups) < len(groupIDs) {
			r.logger.Debug("skipping stale group references",
				zap.String("user_id", userID),
				zap.String("project_id", projectID),
				zap.Int("missing", len(groupIDs)-len(groups)))
		}

		if len(profileIDs) > 0 {
			profiles, err := r.store.FindProjectProfilesByIDs(ctx, profileIDs)
			if err != nil {
				return nil, err
			}
			for _, p := range profiles {
				for _, perm := range p.Permissions {
					if perm.Valid() {
						perms.Add(perm)
					}
				}
			}
		}
	}

	for _, perm := range user.OverridesForProject(projectID) {
		if perm.Valid() {
			perms.Add(perm)
		}
	}

	return perms, nil
}
