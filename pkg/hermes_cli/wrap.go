// pkg/hermes_cli/wrap.go

package hermes_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/logger"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Wrap ensures panic recovery, telemetry, logging, and validation
func Wrap(fn func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		// cobra carries the signal handler's cancellable context; a command
		// invoked outside Execute has none, so fall back to Background.
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		rc := hermes_io.NewContext(ctx, cmd.Name())
		defer rc.End(&err)

		// Panic recovery
		defer rc.HandlePanic(&err)

		// Unified validation logic
		if verr := rc.ValidateAll(); verr != nil {
			rc.Log.Error("Validation failed", zap.Error(verr))
			return verr
		}

		err = fn(rc, cmd, args)
		if err != nil && !hermes_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
