// pkg/hermes_err/classification.go
//
// Error classification with proper exit codes. Extends the UserError
// infrastructure so every failure an operator sees carries a category and,
// where possible, remediation steps.

package hermes_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem issues (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryValidation - Input validation failures (exit 2)
	CategoryValidation
	// CategoryNotFound - Lookup matched nothing (exit 1)
	CategoryNotFound
	// CategoryAmbiguous - Lookup matched more than one candidate (exit 1)
	CategoryAmbiguous
	// CategoryMissingField - Tabular data lacks required columns (exit 2)
	CategoryMissingField
	// CategoryExternal - Directory/SMTP/network call failed (exit 1)
	CategoryExternal
	// CategoryUser - User cancelled/interrupted (exit 130)
	CategoryUser
	// CategoryInternal - Bugs in hermes itself (exit 3)
	CategoryInternal
)

// ClassifiedError wraps an error with category and remediation info
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

func (e *ClassifiedError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf("\n\nCause: %v", e.Cause))
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	return sb.String()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error category.
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryUser:
		return 130 // Standard for SIGINT (Ctrl-C)
	case CategoryValidation, CategoryMissingField:
		return 2 // Invalid input/arguments
	case CategoryInternal:
		return 3 // Internal error/bug
	default:
		return 1 // General error
	}
}

// GetExitCode extracts the exit code from any error. Returns 0 for nil and
// for expected user errors, the classified code otherwise, 1 as default.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	if IsExpectedUserError(err) {
		return 0
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}

	return 1
}

// NewValidationError creates an error for input validation failures.
func NewValidationError(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryValidation,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNotFoundError creates an error for lookups that matched nothing.
func NewNotFoundError(what string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryNotFound,
		Message:     fmt.Sprintf("%s not found", what),
		Remediation: remediation,
	}
}

// NewAmbiguousError creates an error for lookups that could not be narrowed
// to a single candidate.
func NewAmbiguousError(what string, count int, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryAmbiguous,
		Message:     fmt.Sprintf("%s is ambiguous: %d candidates matched", what, count),
		Remediation: remediation,
	}
}

// NewMissingFieldError creates an error for tabular data missing required
// columns. The cause usually aggregates one sub-error per missing column.
func NewMissingFieldError(path string, cause error) error {
	return &ClassifiedError{
		Category: CategoryMissingField,
		Message:  fmt.Sprintf("%s is missing required columns", path),
		Cause:    cause,
		Remediation: []string{
			"Check the header row of the file",
			"Pick a different file and retry",
		},
	}
}

// NewExternalError creates an error for failed directory/SMTP/network calls.
func NewExternalError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryExternal,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewUserCancelledError creates an error for user-initiated cancellation.
func NewUserCancelledError(operation string) error {
	return &ClassifiedError{
		Category:    CategoryUser,
		Message:     fmt.Sprintf("Operation cancelled by user: %s", operation),
		Remediation: []string{"Run the command again to retry"},
	}
}

// NewInternalError creates an error for hermes bugs. These should be
// reported to developers.
func NewInternalError(message string, cause error) error {
	return &ClassifiedError{
		Category: CategoryInternal,
		Message:  message,
		Cause:    cause,
		Remediation: []string{
			"This is likely a bug in hermes",
			"Please report it with the error message and steps to reproduce",
		},
	}
}

// IsUserCancelled reports whether err represents an operator quitting a
// prompt or confirmation loop.
func IsUserCancelled(err error) bool {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category == CategoryUser
	}
	return false
}

// IsNotFound reports whether err represents a lookup that matched nothing.
func IsNotFound(err error) bool {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category == CategoryNotFound
	}
	return false
}
