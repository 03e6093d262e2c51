// pkg/hermes_io/context.go

package hermes_io

import (
	"context"
	"os"
	"os/user"
	"runtime"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/verify"
)

// RuntimeContext carries everything a command handler needs: the request
// context, a scoped logger, the command span, and free-form attributes that
// end up on the final telemetry record.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Verify     *verify.Context
	Timestamp  time.Time
	Span       trace.Span
	Command    string
	Component  string
	Attributes map[string]string
}

// NewContext sets up tracing, logging and validation hooks for one command
// invocation.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	comp, action := resolveCallContext(3)
	logger := zap.L().With(
		zap.String("component", comp),
		zap.String("action", action),
		zap.String("trace_id", traceID),
	).Named(comp)

	logEnv(logger)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        logger,
		Timestamp:  time.Now(),
		Component:  comp,
		Command:    cmdName,
		Verify:     verify.NewContext(),
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// ValidateAll runs struct validation on whatever configuration the command
// registered with the runtime context.
func (rc *RuntimeContext) ValidateAll() error {
	if rc.Verify == nil {
		return nil
	}
	if err := rc.Verify.ValidateAll(); err != nil {
		return hermes_err.WrapValidationError(err)
	}
	return nil
}

// End logs outcome, emits a telemetry span with key attributes, and flushes.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := (*errPtr == nil)

	// 1) user-facing log
	if success {
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	// 2) telemetry attributes
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", telemetry.TruncateOrHashArgs(os.Args[1:])),
		attribute.String("version", shared.Version),
		attribute.String("category", telemetry.CommandCategory(rc.Command)),
		attribute.String("error_type", classifyError(*errPtr)),
	}
	// The anonymous id file is only ever created for opted-in installs.
	if telemetry.IsEnabled() {
		attrs = append(attrs, attribute.String("user_id", telemetry.AnonTelemetryID()))
	}

	// 3) record final span
	_, span := telemetry.Start(rc.Ctx, rc.Command, attrs...)
	span.End()

	// 4) ensure logs are flushed
	shared.SafeSync()
}

// ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Helper functions
// ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

func logEnv(log *zap.Logger) {
	if u, err := user.Current(); err == nil {
		log.Debug("user context",
			zap.String("username", u.Username),
			zap.String("uid", u.Uid),
			zap.String("gid", u.Gid),
			zap.String("home", u.HomeDir),
		)
	}
	if exe, err := os.Executable(); err == nil {
		log.Debug("executable path", zap.String("path", exe))
	}
}

func resolveCallContext(skip int) (component, action string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown"
	}
	parts := strings.Split(file, "/")
	component = parts[len(parts)-2]
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		fields := strings.Split(name, ".")
		action = fields[len(fields)-1]
	} else {
		action = "unknown"
	}
	return
}

func classifyError(err error) string {
	if err == nil {
		return ""
	}
	if hermes_err.IsExpectedUserError(err) {
		return "user"
	}
	return "system"
}
