package model

import "strings"

// CreateProjectProfileReq creates a project-scoped permission profile.
type CreateProjectProfileReq struct {
	Name         string       `json:"name" validate:"required,min=1,max=100"`
	AccessModule string       `json:"access_module" validate:"required"`
	Permissions  []Permission `json:"permissions" validate:"omitempty,max=64"`
}

func (r *CreateProjectProfileReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.AccessModule = strings.ToLower(strings.TrimSpace(r.AccessModule))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedAccessModules[r.AccessModule] {
		return &ErrorDetail{Code: CodeBadRequest, MessageKey: "error.access_module.invalid"}
	}
	return validatePermissions(r.Permissions)
}

// UpdateProjectProfileReq patches a project profile's name and permissions.
// Default selection is changed through the dedicated assignment endpoint only.
type UpdateProjectProfileReq struct {
	Name        string       `json:"name" validate:"required,min=1,max=100"`
	Permissions []Permission `json:"permissions" validate:"omitempty,max=64"`
}

func (r *UpdateProjectProfileReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return validatePermissions(r.Permissions)
}

// GlobalProfileUpsertReq is the shared shape for creating or updating the
// global profile kinds (viewer3d, security).
type GlobalProfileUpsertReq struct {
	Name        string       `json:"name" validate:"required,min=1,max=100"`
	Permissions []Permission `json:"permissions" validate:"omitempty,max=64"`
}

func (r *GlobalProfileUpsertReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return validatePermissions(r.Permissions)
}

// validatePermissions checks every value against the closed permission enums.
func validatePermissions(perms []Permission) error {
	for _, p := range perms {
		if !p.Valid() {
			return &ErrorDetail{
				Code:       CodeBadRequest,
				MessageKey: "error.permission.unknown",
				Message:    "unknown permission: " + string(p),
			}
		}
	}
	return nil
}
