// Package common defines shared constants and sentinel errors used across
// client and server layers of grievdesk. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Reference data could not be read; callers continue with an empty catalog.
	ErrConfigUnavailable = errors.New("configuration unavailable")

	// Credential not present in the user registry.
	ErrAccessDenied = errors.New("access denied")

	// ErrValidation is wrapped by every form rule below.
	ErrValidation          = errors.New("validation error")
	ErrBadIdentifierFormat = fmt.Errorf("%w: identifier code must be exactly six uppercase letters", ErrValidation)
	ErrMissingName         = fmt.Errorf("%w: employee name is required", ErrValidation)
	ErrMissingDetail       = fmt.Errorf("%w: grievance detail is required", ErrValidation)
	ErrBadVisitDate        = fmt.Errorf("%w: visit date must be YYYY-MM-DD or DD-MM-YYYY", ErrValidation)

	// Document errors.
	ErrRenderDegraded  = errors.New("document rendered with fallback font")
	ErrAssemblyFailure = errors.New("document assembly failed")
)
