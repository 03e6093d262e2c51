// pkg/shared/vars.go

package shared

import (
	"errors"

	"go.uber.org/zap"
)

// Version is stamped at build time via -ldflags; the default marks dev builds.
var Version = "0.3.0-dev"

var (
	ErrNotTTY           = errors.New("cannot prompt: not a TTY")
	ErrFallbackUnusable = errors.New("fallback path unusable")
)

// SafeSync flushes the global zap logger, swallowing the EINVAL that
// stdout/stderr sinks return on some platforms.
func SafeSync() {
	_ = zap.L().Sync()
}
