package model

import "time"

// AuditLog is an append-only record of a mutation. Never updated or deleted
// by application logic; the soft-delete fields exist for schema symmetry but
// are not used operationally.
type AuditLog struct {
	ID             string `bson:"_id,omitempty" json:"id"`
	Module         string `bson:"module" json:"module"`
	Action         string `bson:"action" json:"action"`
	TargetObjectID string `bson:"target_object_id,omitempty" json:"target_object_id,omitempty"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`

	CreatedBy string     `bson:"created_by" json:"created_by"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"-"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"-"`
}

// ProjectLog is an append-only project-scoped diff record. OldData/NewData
// carry before/after snapshots with resolved display names substituted for
// foreign ids at capture time.
type ProjectLog struct {
	ID          string                 `bson:"_id,omitempty" json:"id"`
	ProjectID   string                 `bson:"project_id" json:"project_id"`
	Module      string                 `bson:"module" json:"module"`
	Action      string                 `bson:"action" json:"action"`
	OldData     map[string]interface{} `bson:"old_data,omitempty" json:"old_data,omitempty"`
	NewData     map[string]interface{} `bson:"new_data,omitempty" json:"new_data,omitempty"`
	Description string                 `bson:"description,omitempty" json:"description,omitempty"`

	CreatedBy string    `bson:"created_by" json:"created_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
