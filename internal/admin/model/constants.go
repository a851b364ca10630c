package model

// Access modules partition groups and profiles by subsystem.
const (
	AccessModuleGeneral  = "general"
	AccessModuleViewer3d = "viewer_3d"
)

// AllowedAccessModules defines which access modules can be used in requests.
var AllowedAccessModules = map[string]bool{
	AccessModuleGeneral:  true,
	AccessModuleViewer3d: true,
}

// Log modules identify the entity family a log entry concerns.
const (
	ModuleGroup           = "group"
	ModuleProjectGroup    = "project_group"
	ModuleProjectProfile  = "project_profile"
	ModuleViewer3dProfile = "viewer3d_profile"
	ModuleSecurityProfile = "security_profile"
	ModuleMember          = "member"
)

// Log actions
const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionAssignMember = "assign_member"
	ActionRemoveMember = "remove_member"
	ActionBulkImport   = "bulk_import"
	ActionSetDefault   = "set_default"
)

// Stable machine-readable error codes surfaced to callers.
const (
	CodeItemNotFound     = "ITEM_NOT_FOUND"
	CodeItemAlreadyExist = "ITEM_ALREADY_EXIST"
	CodeItemIsUsing      = "ITEM_IS_USING"
	CodeForbidden        = "FORBIDDEN"
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Per-row error codes for bulk import validation results.
const (
	RowCodeRequired         = "REQUIRED"
	RowCodeDuplicatedInFile = "DUPLICATED_IN_FILE"
	RowCodeAlreadyExist     = "ITEM_ALREADY_EXIST"
	RowCodeProfileNotFound  = "ITEM_NOT_FOUND"
)

// Bulk import row columns referenced in validation errors.
const (
	ColumnName    = "name"
	ColumnProfile = "profile"
)
