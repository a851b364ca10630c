package model

import "time"

// ProjectGroupRef links a user to a project group within one project.
type ProjectGroupRef struct {
	ProjectID string `bson:"project_id" json:"project_id"`
	GroupID   string `bson:"group_id" json:"group_id"`
}

// ProjectPermissionOverride stores project-specific permissions granted
// directly on the user record, outside any group membership.
type ProjectPermissionOverride struct {
	ProjectID   string       `bson:"project_id" json:"project_id"`
	Permissions []Permission `bson:"permissions" json:"permissions"`
}

type User struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`

	// Organization-wide group memberships.
	GroupIDs []string `bson:"group_ids,omitempty" json:"group_ids,omitempty"`
	// Per-project group memberships.
	ProjectGroups []ProjectGroupRef `bson:"project_groups,omitempty" json:"project_groups,omitempty"`
	// Projects the user administers.
	AdminProjects []string `bson:"admin_projects,omitempty" json:"admin_projects,omitempty"`
	// Direct per-project permission overrides.
	Overrides []ProjectPermissionOverride `bson:"project_permissions,omitempty" json:"project_permissions,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}

// GroupIDsForProject returns the project-group ids the user belongs to in the
// given project.
func (u *User) GroupIDsForProject(projectID string) []string {
	var ids []string
	for _, ref := range u.ProjectGroups {
		if ref.ProjectID == projectID {
			ids = append(ids, ref.GroupID)
		}
	}
	return ids
}

// OverridesForProject returns the direct permission overrides for a project.
func (u *User) OverridesForProject(projectID string) []Permission {
	for _, o := range u.Overrides {
		if o.ProjectID == projectID {
			return o.Permissions
		}
	}
	return nil
}
