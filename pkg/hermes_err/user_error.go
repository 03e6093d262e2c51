// pkg/hermes_err/user_error.go

package hermes_err

import (
	"context"
	"errors"
)

// UserError marks an error as expected and recoverable by the user: bad
// input, a cancelled prompt, a misconfigured server address. The CLI exits 0
// for these so scripts can distinguish operator mistakes from real failures.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling. The context is
// accepted for interface consistency with the rest of the runtime plumbing.
func NewExpectedError(_ context.Context, err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
