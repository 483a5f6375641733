package domain

import (
	"errors"
	"fmt"
)

// Store-level sentinel errors returned by Record Store adapters.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// FieldError is a single failed field rule.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports input that failed its declared field rules.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a ValidationError carrying the given field errors.
func NewValidationError(message string, fields []FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NotFoundError reports that a referenced developer, event or invite does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFoundf formats a NotFoundError.
func NotFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an operation that would break a business invariant,
// such as a duplicate invite or an invite addressed through the wrong event.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflictf formats a ConflictError.
func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamServiceError reports a well-formed but unsuccessful response from
// an external service. Payload is the upstream error body.
type UpstreamServiceError struct {
	Message string
	Payload any
}

func (e *UpstreamServiceError) Error() string {
	return e.Message
}
