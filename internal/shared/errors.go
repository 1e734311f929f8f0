package shared

import (
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Credential errors
	ErrMissingCredential = fmt.Errorf("no credential present")
	ErrUnauthorized      = fmt.Errorf("unauthorized")
	ErrLoginFailed       = fmt.Errorf("login failed")

	// Local validation errors (short-circuit before any network call)
	ErrInvalidPaging     = fmt.Errorf("invalid page or page size")
	ErrMissingIdentifier = fmt.Errorf("identifier is required")
	ErrValidation        = fmt.Errorf("validation failed")

	// Remote operation errors
	ErrFetchFailed  = fmt.Errorf("fetch failed")
	ErrCreateFailed = fmt.Errorf("create failed")
	ErrUpdateFailed = fmt.Errorf("update failed")
	ErrDeleteFailed = fmt.Errorf("delete failed")
	ErrNotFound     = fmt.Errorf("not found")

	// Ordering errors
	ErrSuperseded = fmt.Errorf("superseded by a newer request")
)

// ValidationError lists the required fields that were blank. It wraps
// [ErrValidation] so call sites can match with [errors.Is].
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: required fields missing: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
