package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailExists means another patient already owns the email address.
	ErrEmailExists = errors.New("email already exists")

	ErrNotFound = errors.New("patient not found")

	ErrStorageUnavailable = errors.New("storage unavailable")
)

// FieldError is a validation failure tied to one request field. It unwraps
// to ErrInvalidInput so callers can branch without inspecting the field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

func (e *FieldError) Unwrap() error { return ErrInvalidInput }
