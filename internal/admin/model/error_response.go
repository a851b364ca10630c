package model

// ErrorResponse is the consistent error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a localized message
// key. The message key is resolved to user-facing text by the i18n
// collaborator outside this service; Message is a debugging aid only and
// callers must never branch on it.
type ErrorDetail struct {
	Code       string `json:"code"`
	MessageKey string `json:"message_key"`
	Message    string `json:"message,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}
