// Package apperr defines the errors handlers report to clients and how they
// are rendered.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindValidation
	KindTooLarge
)

// FieldError is a single schema validation failure.
type FieldError struct {
	Path    string
	Message string
}

type Error struct {
	Kind    Kind
	Message string
	// Fields is set for KindValidation, in field declaration order.
	Fields []FieldError
}

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		return "validation failed: " + e.Fields[0].Message
	}
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

func TooLarge(message string) *Error {
	return &Error{Kind: KindTooLarge, Message: message}
}

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Required returns the message used when a required field is missing.
func Required(path string) FieldError {
	return FieldError{Path: path, Message: "Path `" + path + "` is required."}
}

// Cast returns the message used when a value cannot be converted to the
// field's type.
func Cast(typ, value, path string) FieldError {
	return FieldError{
		Path:    path,
		Message: "Cast to " + typ + " failed for value \"" + value + "\" at path \"" + path + "\"",
	}
}

// Render maps err to the HTTP status and plain-text message sent to the
// client. Errors that are not *Error are reported as a generic 500.
func Render(err error) (int, string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	switch appErr.Kind {
	case KindValidation:
		if len(appErr.Fields) > 0 {
			return http.StatusBadRequest, appErr.Fields[0].Message
		}
		return http.StatusBadRequest, appErr.Message
	case KindBadRequest:
		return http.StatusBadRequest, orDefault(appErr.Message, http.StatusBadRequest)
	case KindNotFound:
		return http.StatusNotFound, orDefault(appErr.Message, http.StatusNotFound)
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge, orDefault(appErr.Message, http.StatusRequestEntityTooLarge)
	default:
		return http.StatusInternalServerError, orDefault(appErr.Message, http.StatusInternalServerError)
	}
}

func orDefault(message string, status int) string {
	if message == "" {
		return http.StatusText(status)
	}
	return message
}
