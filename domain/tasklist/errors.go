package tasklist

import "errors"

// ErrForbiddenOrNotFound merges "list does not exist" and "caller lacks
// rights" into one outcome so callers cannot probe for existence.
var ErrForbiddenOrNotFound = errors.New("task list not found or not accessible")

// ValidationError reports malformed input (empty or oversized name).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
