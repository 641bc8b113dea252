// Package errors provides the error definitions used by irframe.
//
// The phase registry itself never fails; errors only appear at the edges
// where user input is parsed (phase names on the command line, export
// formats, theme names, config values).
//
// # Error Types
//
// Sentinel errors identify the condition:
//   - ErrUnknownPhase: input did not name one of the five phases
//   - ErrUnsupportedFormat: export format is not yaml or json
//   - ErrThemeNotFound: no built-in or custom theme has the given name
//   - ErrInvalidInput: generic validation failure
//
// Semantic errors carry context and match their sentinel via errors.Is:
//   - NotFoundError: a named resource does not exist
//   - ValidationError: a value failed validation
//
// # Usage
//
//	err := errors.NewNotFoundError("phase", "triage").WithCause(errors.ErrUnknownPhase)
//	if errors.Is(err, errors.ErrUnknownPhase) { ... }
//
//	var nf *errors.NotFoundError
//	if errors.As(err, &nf) { fmt.Println(nf.ResourceID) }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers only import this package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors
var (
	// ErrUnknownPhase indicates the input does not name a phase.
	ErrUnknownPhase = New("unknown phase")
	// ErrUnsupportedFormat indicates an export format that is not implemented.
	ErrUnsupportedFormat = New("unsupported format")
	// ErrThemeNotFound indicates that no theme has the requested name.
	ErrThemeNotFound = New("theme not found")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// NotFoundError represents a named resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("phase", "triage")
//	fmt.Println(err) // "phase 'triage' not found"
type NotFoundError struct {
	ResourceType string
	ResourceID   string
	cause        error
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Unwrap returns the underlying cause.
func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a NotFoundError or matches the cause.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// ValidationError represents an invalid input value.
//
// Example:
//
//	err := errors.NewValidationError("pattern is empty").WithField("pattern")
type ValidationError struct {
	Field   string
	Value   any
	message string
	cause   error
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a ValidationError, ErrInvalidInput, or matches the cause.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
