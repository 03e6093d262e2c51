/* pkg/logger/logger.go */

package logger

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// InitializeWithFallback builds the standard hermes logger: plain console
// output plus a JSON log file at the first writable platform path. If no
// path is writable it degrades to console-only logging.
func InitializeWithFallback() {
	path, err := FindWritableLogPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  No writable log path found. Logging to console only.")
		install(NewFallbackLogger())
		return
	}

	cfg := DefaultConsoleEncoderConfig()
	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	writer, err := GetLogFileWriter(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  Could not write to log file, falling back to stdout:", err)
		writer = zapcore.AddSync(os.Stdout)
	}

	level := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	console := newTerminalConsoleCore(
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level),
	)
	core := zapcore.NewTee(
		console,
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, level),
	)

	install(zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)))
	log.Debug("Logger initialized",
		zap.String("log_level", os.Getenv("LOG_LEVEL")),
		zap.String("log_path", path),
	)
}

// NewFallbackLogger returns a console-only logger for environments where no
// log file can be opened.
func NewFallbackLogger() *zap.Logger {
	cfg := DefaultConsoleEncoderConfig()

	core := newTerminalConsoleCore(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	))

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// InitFallback installs the console-only logger. Safe to call repeatedly;
// command wrappers use it to guarantee a logger exists before anything runs.
func InitFallback() {
	if log != nil {
		return
	}
	install(NewFallbackLogger())
}

func install(l *zap.Logger) {
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the process logger, initializing the fallback if needed.
func L() *zap.Logger {
	if log == nil {
		InitFallback()
	}
	return log
}

// Sync flushes any buffered log entries. Call before the process exits.
// Syncing the stderr sink fails with EINVAL (Linux) or ENOTTY (macOS);
// only the file sink can meaningfully lose data, so those are swallowed.
func Sync() error {
	if log == nil {
		return nil
	}
	err := log.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
