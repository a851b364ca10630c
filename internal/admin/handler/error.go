package handler

import (
	"errors"
	"net/http"

	"planadmin/internal/admin/model"
	"planadmin/internal/admin/service"
)

// httpError maps service errors to HTTP status and response body. Codes are
// stable machine-readable strings; message keys feed frontend i18n.
func httpError(err error) (int, interface{}) {
	var status int
	var code, messageKey string

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = model.CodeUnauthorized
		messageKey = "error.unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = model.CodeForbidden
		messageKey = "error.forbidden"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = model.CodeItemNotFound
		messageKey = "error.item.not_found"
	case errors.Is(err, service.ErrDuplicateName):
		status = http.StatusConflict
		code = model.CodeItemAlreadyExist
		messageKey = "error.item.already_exist"
	case errors.Is(err, service.ErrProfileNotFound):
		status = http.StatusBadRequest
		code = model.CodeItemNotFound
		messageKey = "error.profile.not_found"
	case errors.Is(err, service.ErrItemInUse):
		status = http.StatusConflict
		code = model.CodeItemIsUsing
		messageKey = "error.item.is_using"
	default:
		status = http.StatusInternalServerError
		code = model.CodeInternalError
		messageKey = "error.internal"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, MessageKey: messageKey},
	}
}

// validationError maps a request Validate() failure to a 400 response,
// preserving the detail the validator produced.
func validationError(err error) (int, interface{}) {
	var detail *model.ErrorDetail
	if errors.As(err, &detail) {
		return http.StatusBadRequest, model.ErrorResponse{Error: *detail}
	}
	return http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{
			Code:       model.CodeBadRequest,
			MessageKey: "error.validation.failed",
			Message:    err.Error(),
		},
	}
}

func badRequest(message string) (int, interface{}) {
	return http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{
			Code:       model.CodeBadRequest,
			MessageKey: "error.bad_request",
			Message:    message,
		},
	}
}
