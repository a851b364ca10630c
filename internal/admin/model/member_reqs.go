package model

import "strings"

type AssignMemberReq struct {
	UserID string `json:"user_id" validate:"required,min=1,max=50"`
}

func (r *AssignMemberReq) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type ListMembersReq struct {
	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=200"`
}

func (r *ListMembersReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	applyPagingDefaults(&r.Page, &r.Size)
	return nil
}

// ListNonMembersReq filters the users excluded from a group's membership.
// Keyword is a case-insensitive substring match on email; ProjectID narrows
// the result to users visible in that project (direct assignment, admin role,
// or a transitive group project).
type ListNonMembersReq struct {
	Keyword      string `query:"keyword" validate:"omitempty,max=100"`
	AccessModule string `query:"access_module" validate:"omitempty"`
	ProjectID    string `query:"project_id" validate:"omitempty,max=50"`
	Page         int    `query:"page" validate:"omitempty,min=1"`
	Size         int    `query:"size" validate:"omitempty,min=1,max=200"`
}

func (r *ListNonMembersReq) Validate() error {
	r.Keyword = strings.TrimSpace(r.Keyword)
	r.AccessModule = strings.ToLower(strings.TrimSpace(r.AccessModule))
	r.ProjectID = strings.TrimSpace(r.ProjectID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.AccessModule != "" && !AllowedAccessModules[r.AccessModule] {
		return &ErrorDetail{Code: CodeBadRequest, MessageKey: "error.access_module.invalid"}
	}
	applyPagingDefaults(&r.Page, &r.Size)
	return nil
}

func applyPagingDefaults(page, size *int) {
	if *page <= 0 {
		*page = 1
	}
	if *size <= 0 {
		*size = 20
	}
}
