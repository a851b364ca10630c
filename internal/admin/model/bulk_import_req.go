package model

import "strings"

// BulkImportRow is one requested group in a bulk import payload. ProfileName
// references a project profile by display name, resolved during validation.
type BulkImportRow struct {
	Name        string `json:"name"`
	ProfileName string `json:"profile_name"`
}

type BulkImportGroupsReq struct {
	AccessModule string          `json:"access_module" validate:"required"`
	Rows         []BulkImportRow `json:"rows" validate:"required,min=1,max=500"`
}

func (r *BulkImportGroupsReq) Validate() error {
	r.AccessModule = strings.ToLower(strings.TrimSpace(r.AccessModule))
	for i := range r.Rows {
		r.Rows[i].Name = strings.TrimSpace(r.Rows[i].Name)
		r.Rows[i].ProfileName = strings.TrimSpace(r.Rows[i].ProfileName)
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedAccessModules[r.AccessModule] {
		return &ErrorDetail{Code: CodeBadRequest, MessageKey: "error.access_module.invalid"}
	}
	return nil
}
