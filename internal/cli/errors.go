package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/roster/internal/storage"
)

// NotFoundError indicates an employee id was not found.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %s not found", e.ID)
}

// DuplicateError indicates an employee id is already taken.
type DuplicateError struct {
	ID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("employee %s already exists", e.ID)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// Describe maps store errors about id to the typed errors shown to users.
// Other errors are returned unchanged.
func Describe(err error, id string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return &NotFoundError{ID: id}
	case errors.Is(err, storage.ErrDuplicateID):
		return &DuplicateError{ID: id}
	default:
		return err
	}
}
