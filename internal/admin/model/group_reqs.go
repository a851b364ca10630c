package model

import "strings"

// CreateGroupReq creates an organization-wide group.
type CreateGroupReq struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	SecurityProfileID string `json:"security_profile_id" validate:"omitempty,max=50"`
	AccessModule      string `json:"access_module" validate:"required"`
}

func (r *CreateGroupReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.SecurityProfileID = strings.TrimSpace(r.SecurityProfileID)
	r.AccessModule = strings.ToLower(strings.TrimSpace(r.AccessModule))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedAccessModules[r.AccessModule] {
		return &ErrorDetail{Code: CodeBadRequest, MessageKey: "error.access_module.invalid"}
	}
	return nil
}

// CreateProjectGroupReq creates a project-scoped group. The project id comes
// from the route, not the body.
type CreateProjectGroupReq struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	ProjectProfileID string `json:"project_profile_id" validate:"omitempty,max=50"`
	AccessModule     string `json:"access_module" validate:"required"`
}

func (r *CreateProjectGroupReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.ProjectProfileID = strings.TrimSpace(r.ProjectProfileID)
	r.AccessModule = strings.ToLower(strings.TrimSpace(r.AccessModule))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedAccessModules[r.AccessModule] {
		return &ErrorDetail{Code: CodeBadRequest, MessageKey: "error.access_module.invalid"}
	}
	return nil
}

// UpdateGroupReq patches an organization-wide group. A nil SecurityProfileID
// leaves the reference untouched; an empty string explicitly clears it.
type UpdateGroupReq struct {
	Name              string  `json:"name" validate:"required,min=1,max=100"`
	SecurityProfileID *string `json:"security_profile_id"`
}

func (r *UpdateGroupReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.SecurityProfileID != nil {
		trimmed := strings.TrimSpace(*r.SecurityProfileID)
		r.SecurityProfileID = &trimmed
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// UpdateProjectGroupReq patches a project group. A nil ProjectProfileID
// leaves the reference untouched; an empty string explicitly clears it.
type UpdateProjectGroupReq struct {
	Name             string  `json:"name" validate:"required,min=1,max=100"`
	ProjectProfileID *string `json:"project_profile_id"`
}

func (r *UpdateProjectGroupReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.ProjectProfileID != nil {
		trimmed := strings.TrimSpace(*r.ProjectProfileID)
		r.ProjectProfileID = &trimmed
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
