package model

import "time"

// Group is an organization-wide user group bound to a security profile.
// Name is unique (case-insensitive) among non-deleted groups of the same
// access module across the organization.
type Group struct {
	ID                string `bson:"_id,omitempty" json:"id"`
	Name              string `bson:"name" json:"name"`
	SecurityProfileID string `bson:"security_profile_id,omitempty" json:"security_profile_id,omitempty"`
	AccessModule      string `bson:"access_module" json:"access_module"`

	// Resolved on reads that populate the foreign profile; never persisted.
	Profile *SecurityProfile `bson:"-" json:"profile,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}

// ProjectGroup is a project-scoped user group bound to a project profile.
// Name is unique (case-insensitive) among non-deleted groups within
// (project, access module).
type ProjectGroup struct {
	ID               string `bson:"_id,omitempty" json:"id"`
	ProjectID        string `bson:"project_id" json:"project_id"`
	Name             string `bson:"name" json:"name"`
	ProjectProfileID string `bson:"project_profile_id,omitempty" json:"project_profile_id,omitempty"`
	AccessModule     string `bson:"access_module" json:"access_module"`

	Profile *ProjectProfile `bson:"-" json:"profile,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}
