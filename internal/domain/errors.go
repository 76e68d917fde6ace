package domain

import (
	"errors"
	"fmt"
)

// DomainError is a typed, recoverable failure surfaced to the HTTP layer.
// The engine never panics on bad input; every failure carries one of the
// codes below.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeAdmissibility       = "ADMISSIBILITY_ERROR"
	ErrCodeClosedDealImmutable = "CLOSED_DEAL_IMMUTABLE"
	ErrCodeLostReasonRequired  = "LOST_REASON_REQUIRED"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// NewNotFoundError creates a not found error for the named resource.
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a validation error.
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewAdmissibilityError creates an error for a stage transition blocked by
// missing prerequisite data.
func NewAdmissibilityError(msg string) error {
	return &DomainError{
		Code:    ErrCodeAdmissibility,
		Message: msg,
	}
}

// NewClosedDealImmutableError creates the error returned when a caller tries
// to move a closed deal to another stage.
func NewClosedDealImmutableError() error {
	return &DomainError{
		Code:    ErrCodeClosedDealImmutable,
		Message: "cannot change stage of closed deals",
	}
}

// NewLostReasonRequiredError creates the error returned when a lead is closed
// as lost without a reason.
func NewLostReasonRequiredError() error {
	return &DomainError{
		Code:    ErrCodeLostReasonRequired,
		Message: "lost reason is required when closing lead as lost",
	}
}

// NewConflictError creates a conflict error (e.g. a concurrent transition on
// the same lead).
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "an internal error occurred",
		Err:     err,
	}
}

func codeOf(err error) (string, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code, true
	}
	return "", false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeNotFound
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeValidation
}

// IsAdmissibility checks if the error is an admissibility error.
func IsAdmissibility(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeAdmissibility
}

// IsClosedDealImmutable checks if the error is a closed-deal immutability error.
func IsClosedDealImmutable(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeClosedDealImmutable
}

// IsLostReasonRequired checks if the error is a missing-lost-reason error.
func IsLostReasonRequired(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeLostReasonRequired
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	c, ok := codeOf(err)
	return ok && c == ErrCodeConflict
}

// GetErrorCode extracts the code from a domain error, defaulting to
// INTERNAL_ERROR for unknown error types.
func GetErrorCode(err error) string {
	if c, ok := codeOf(err); ok {
		return c
	}
	return ErrCodeInternal
}
