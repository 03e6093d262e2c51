// pkg/hermes_cli/wrap_test.go

package hermes_cli

import (
	"errors"
	"testing"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name        string
		fn          func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error
		setupCmd    func() *cobra.Command
		args        []string
		expectError bool
		errorMsg    string
	}{
		{
			name: "successful execution",
			fn: func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				// Verify we got a runtime context
				assert.NotNil(t, rc)
				assert.NotNil(t, rc.Ctx)
				assert.NotNil(t, rc.Log)
				return nil
			},
			setupCmd: func() *cobra.Command {
				return &cobra.Command{Use: "test-cmd"}
			},
			args:        []string{"arg1", "arg2"},
			expectError: false,
		},
		{
			name: "arguments passed through unchanged",
			fn: func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				assert.Equal(t, []string{"alice", "bob"}, args)
				return nil
			},
			setupCmd: func() *cobra.Command {
				return &cobra.Command{Use: "lookup"}
			},
			args:        []string{"alice", "bob"},
			expectError: false,
		},
		{
			name: "command returns error",
			fn: func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				return errors.New("command failed")
			},
			setupCmd: func() *cobra.Command {
				return &cobra.Command{Use: "test-cmd"}
			},
			args:        []string{},
			expectError: true,
			errorMsg:    "command failed",
		},
		{
			name: "panic recovery",
			fn: func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
				panic("test panic")
			},
			setupCmd: func() *cobra.Command {
				return &cobra.Command{Use: "panic-cmd"}
			},
			args:        []string{},
			expectError: true,
			errorMsg:    "panic: test panic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.setupCmd()
			wrapped := Wrap(tt.fn)
			err := wrapped(cmd, tt.args)

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapPreservesExpectedUserErrors(t *testing.T) {
	wrapped := Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return hermes_err.NewExpectedError(rc.Ctx, errors.New("user pressed q"))
	})

	err := wrapped(&cobra.Command{Use: "quit-cmd"}, nil)
	assert.Error(t, err)
	assert.True(t, hermes_err.IsExpectedUserError(err),
		"expected user errors must survive the wrapper unwrapped")
}

func TestWrapAttachesStackToUnexpectedErrors(t *testing.T) {
	wrapped := Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return errors.New("dial tcp: connection refused")
	})

	err := wrapped(&cobra.Command{Use: "net-cmd"}, nil)
	assert.Error(t, err)
	assert.False(t, hermes_err.IsExpectedUserError(err))
	assert.Contains(t, err.Error(), "connection refused")
}
