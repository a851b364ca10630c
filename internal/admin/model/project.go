package model

import "time"

type Project struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
	// AdminID is the single privileged user who bypasses permission checks
	// for this project.
	AdminID string `bson:"admin_id" json:"admin_id"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	CreatedBy string     `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}
