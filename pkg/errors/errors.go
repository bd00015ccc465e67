// Package errors provides typed errors for the application
package errors

// baseError is the base implementation for all error types
type baseError struct {
	msg string
}

func (e *baseError) Error() string {
	return e.msg
}

// ValidationError represents a rejected input (not a supported link)
type ValidationError struct {
	baseError
}

// NewValidationError creates a new ValidationError
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{baseError{msg: msg}}
}

// UnavailableError represents a resource that could not be probed
type UnavailableError struct {
	baseError
}

// NewUnavailableError creates a new UnavailableError
func NewUnavailableError(msg string) *UnavailableError {
	return &UnavailableError{baseError{msg: msg}}
}

// PolicyError represents a request rejected by policy (duration ceiling)
type PolicyError struct {
	baseError
}

// NewPolicyError creates a new PolicyError
func NewPolicyError(msg string) *PolicyError {
	return &PolicyError{baseError{msg: msg}}
}

// InternalError represents an unexpected internal failure
type InternalError struct {
	baseError
}

// NewInternalError creates a new InternalError
func NewInternalError(msg string) *InternalError {
	return &InternalError{baseError{msg: msg}}
}

// IsValidationError checks if error is a ValidationError
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsUnavailableError checks if error is an UnavailableError
func IsUnavailableError(err error) bool {
	_, ok := err.(*UnavailableError)
	return ok
}

// IsPolicyError checks if error is a PolicyError
func IsPolicyError(err error) bool {
	_, ok := err.(*PolicyError)
	return ok
}

// IsInternalError checks if error is an InternalError
func IsInternalError(err error) bool {
	_, ok := err.(*InternalError)
	return ok
}
