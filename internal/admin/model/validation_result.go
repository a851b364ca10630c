package model

// RowError describes a single validation failure for one bulk import row.
type RowError struct {
	Column       string `json:"column"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// RowValidationResult is the per-row outcome of bulk import validation.
// Every requested row gets a result, whether or not the batch committed.
type RowValidationResult struct {
	IsValid bool       `json:"is_valid"`
	Errors  []RowError `json:"errors,omitempty"`
}

// BulkImportResult maps row index to validation outcome. Imported is the
// number of rows inserted: len(rows) when every row passed, zero otherwise.
type BulkImportResult struct {
	Results  map[int]RowValidationResult `json:"results"`
	Imported int                         `json:"imported"`
}
