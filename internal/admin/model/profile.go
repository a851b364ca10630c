package model

import "time"

// ProjectProfile is a project-scoped named bundle of permissions. At most one
// profile per (project, access module) scope carries IsDefaultSelect.
type ProjectProfile struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	ProjectID    string       `bson:"project_id" json:"project_id"`
	Name         string       `bson:"name" json:"name"`
	AccessModule string       `bson:"access_module" json:"access_module"`
	Permissions  []Permission `bson:"permissions" json:"permissions"`
	// Exactly one profile per scope may be the default selection; the store
	// enforces this transactionally on assignment.
	IsDefaultSelect bool `bson:"is_default_select" json:"is_default_select"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}

// Viewer3dProfile is a global named bundle of 3D viewer permissions.
type Viewer3dProfile struct {
	ID              string       `bson:"_id,omitempty" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Permissions     []Permission `bson:"permissions" json:"permissions"`
	IsDefaultSelect bool         `bson:"is_default_select" json:"is_default_select"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}

// SecurityProfile is a global named bundle of permissions referenced by
// organization-wide groups.
type SecurityProfile struct {
	ID              string       `bson:"_id,omitempty" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Permissions     []Permission `bson:"permissions" json:"permissions"`
	IsDefaultSelect bool         `bson:"is_default_select" json:"is_default_select"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}
