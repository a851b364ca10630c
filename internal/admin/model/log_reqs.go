package model

import (
	"strings"
	"time"
)

// GetProjectLogsReq filters the project change history.
type GetProjectLogsReq struct {
	Module    string     `query:"module" validate:"omitempty,max=50"`
	Action    string     `query:"action" validate:"omitempty,max=50"`
	StartTime *time.Time `query:"start_time"`
	EndTime   *time.Time `query:"end_time"`
	Page      int        `query:"page" validate:"omitempty,min=1"`
	Size      int        `query:"size" validate:"omitempty,min=1,max=200"`
}

func (r *GetProjectLogsReq) Validate() error {
	r.Module = strings.ToLower(strings.TrimSpace(r.Module))
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.StartTime != nil && r.EndTime != nil && r.EndTime.Before(*r.StartTime) {
		return &ErrorDetail{Code: CodeBadRequest, MessageKey: "error.time_range.invalid"}
	}
	applyPagingDefaults(&r.Page, &r.Size)
	return nil
}

// GetAuditLogsReq filters the global audit trail.
type GetAuditLogsReq struct {
	Module string `query:"module" validate:"omitempty,max=50"`
	Action string `query:"action" validate:"omitempty,max=50"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Size   int    `query:"size" validate:"omitempty,min=1,max=200"`
}

func (r *GetAuditLogsReq) Validate() error {
	r.Module = strings.ToLower(strings.TrimSpace(r.Module))
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	applyPagingDefaults(&r.Page, &r.Size)
	return nil
}

// Paged response envelopes.

type UserListResult struct {
	Data       []*User `json:"data"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	TotalCount int64   `json:"total_count"`
}

type ProjectLogListResult struct {
	Data       []*ProjectLog `json:"data"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalCount int64         `json:"total_count"`
}

type AuditLogListResult struct {
	Data       []*AuditLog `json:"data"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalCount int64       `json:"total_count"`
}
