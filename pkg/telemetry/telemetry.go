// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/xdg"
)

var (
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
)

// Init configures OpenTelemetry; call this early in main(). Telemetry is
// opt-in: without the marker file every span is a no-op.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		return nil
	}

	telemetryFile := telemetryFilePath()
	if err := os.MkdirAll(filepath.Dir(telemetryFile), shared.RuntimeDirPerms); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	// Spans append to a JSONL file rather than stdout.
	file, err := os.OpenFile(telemetryFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, shared.RuntimeFilePerms)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(), // Spans already have timestamps
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(
			sdkresource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("service.name", service),
				attribute.String("host.name", hostname()),
			),
		),
	)

	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(service)
	provider = tp
	return nil
}

// Shutdown drains batched spans to the telemetry file. Spans still sitting
// in the batcher are lost when the process exits without calling this.
func Shutdown(ctx context.Context) error {
	if provider == nil {
		return nil
	}
	return provider.Shutdown(ctx)
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(shared.HermesID)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// IsEnabled reports whether the operator has opted in via the marker file.
func IsEnabled() bool {
	_, err := os.Stat(xdg.XDGStatePath(shared.HermesID, "telemetry_on"))
	return err == nil
}

func telemetryFilePath() string {
	return xdg.XDGStatePath(shared.HermesID, "telemetry.jsonl")
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}

// TruncateOrHashArgs flattens command arguments for span attributes, keeping
// them a bounded size.
func TruncateOrHashArgs(args []string) string {
	full := strings.Join(args, " ")
	if len(full) > 256 {
		return full[:256] + "..."
	}
	return full
}

// CommandCategory buckets command names for aggregate reporting.
func CommandCategory(cmd string) string {
	switch {
	case strings.HasPrefix(cmd, "create"), strings.HasPrefix(cmd, "password"):
		return "generate"
	case strings.HasPrefix(cmd, "send"), strings.HasPrefix(cmd, "mail"):
		return "transport"
	case strings.HasPrefix(cmd, "read"), strings.HasPrefix(cmd, "user"), strings.HasPrefix(cmd, "csv"):
		return "lookup"
	default:
		return "general"
	}
}

// AnonTelemetryID returns a stable anonymous id for this installation,
// creating one on first use.
func AnonTelemetryID() string {
	path := xdg.XDGStatePath(shared.HermesID, "telemetry_id")

	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}

	id := "anon-" + uuid.New().String()
	_ = os.MkdirAll(filepath.Dir(path), shared.FilePermOwnerRWX)
	_ = os.WriteFile(path, []byte(id), shared.FilePermOwnerReadWrite)

	return id
}
