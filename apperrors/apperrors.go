package apperrors

import (
	"errors"
	"net/http"
)

// Error is the tagged failure returned by workflow functions.
// The HTTP boundary serializes it verbatim: { code, message, status }.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Code: "BAD_REQUEST", Message: message, Status: http.StatusBadRequest}
}

func Unauthorized(message string) *Error {
	return &Error{Code: "UNAUTHORIZED", Message: message, Status: http.StatusUnauthorized}
}

func Forbidden(message string) *Error {
	return &Error{Code: "FORBIDDEN", Message: message, Status: http.StatusForbidden}
}

func NotFound(message string) *Error {
	return &Error{Code: "NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

func Conflict(message string) *Error {
	return &Error{Code: "CONFLICT", Message: message, Status: http.StatusConflict}
}

func TokenExpired(message string) *Error {
	return &Error{Code: "TOKEN_EXPIRED", Message: message, Status: http.StatusGone}
}

// From normalizes any error into an *Error. Unknown errors become a 500 so
// internal messages never leak raw gorm/driver text with a misleading status.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Code: "INTERNAL", Message: "internal server error", Status: http.StatusInternalServerError}
}
