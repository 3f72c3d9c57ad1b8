// Package apperror defines client-facing errors and maps validation failures onto them.
package apperror

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Error is a client error with the HTTP status and message returned to the caller.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	CodeRequired = &Error{Status: http.StatusBadRequest, Message: "Code is required"}
	InvalidCode  = &Error{Status: http.StatusBadRequest, Message: "Invalid code"}
	LogShape     = &Error{Status: http.StatusBadRequest, Message: "Both 'code' and 'log' (object) are required"}
	UnknownCode  = &Error{Status: http.StatusBadRequest, Message: "Unknown code"}
)

var customErrors = map[string]*Error{
	"LoginRequest.Code.truthy":  CodeRequired,
	"LogRequest.Code.truthy":    LogShape,
	"LogRequest.Log.jsonobject": LogShape,
}

// FromValidation converts a validator error into the client error for the
// first failing field. Unmapped failures fall back to a generic 400.
func FromValidation(err error) *Error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			key := e.StructNamespace() + "." + e.Tag()
			if v, ok := customErrors[key]; ok {
				return v
			}
		}
	}
	return &Error{Status: http.StatusBadRequest, Message: "invalid request payload"}
}

// As reports whether err carries a client error and returns it.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
