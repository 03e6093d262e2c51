// pkg/hermes_cli/signals.go
//
// Signal handling and graceful shutdown for interactive hermes sessions.
// A first Ctrl-C cancels the context so prompts and lookups unwind; a second
// forces exit.

package hermes_cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// CleanupFunc is a function that performs cleanup operations
type CleanupFunc func() error

// SignalHandler manages graceful shutdown on signals
type SignalHandler struct {
	ctx          context.Context
	cancel       context.CancelFunc
	cleanupFuncs []CleanupFunc
	sigChan      chan os.Signal
}

// NewSignalHandler creates a new signal handler
func NewSignalHandler(ctx context.Context) *SignalHandler {
	ctx, cancel := context.WithCancel(ctx)

	handler := &SignalHandler{
		ctx:          ctx,
		cancel:       cancel,
		cleanupFuncs: make([]CleanupFunc, 0),
		sigChan:      make(chan os.Signal, 2),
	}

	// Notify on SIGINT (Ctrl-C) and SIGTERM
	signal.Notify(handler.sigChan, os.Interrupt, syscall.SIGTERM)

	go handler.handleSignals()

	return handler
}

// RegisterCleanup adds a cleanup function to be called on shutdown
// Cleanup functions are called in REVERSE order (LIFO)
func (h *SignalHandler) RegisterCleanup(cleanup CleanupFunc) {
	h.cleanupFuncs = append(h.cleanupFuncs, cleanup)
}

// Context returns the cancellable context
// Operations should use this context to detect cancellation
func (h *SignalHandler) Context() context.Context {
	return h.ctx
}

// handleSignals waits for signals and initiates cleanup
func (h *SignalHandler) handleSignals() {
	logger := otelzap.Ctx(h.ctx)

	sig, ok := <-h.sigChan
	if !ok {
		return
	}
	logger.Info("Received signal, initiating cleanup",
		zap.String("signal", sig.String()))

	fmt.Fprintf(os.Stderr, "\n\n⚠️  Received %v, cleaning up...\n", sig)

	// Cancel context to stop ongoing operations
	h.cancel()

	// A second signal while cleanup runs forces an immediate exit
	go func() {
		if _, ok := <-h.sigChan; ok {
			fmt.Fprintln(os.Stderr, "\n⚠️  Received second interrupt, forcing exit!")
			os.Exit(1)
		}
	}()

	if err := h.runCleanup(); err != nil {
		fmt.Fprintf(os.Stderr, "Cleanup completed with errors: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "✓ Cleanup complete")
	os.Exit(130) // Standard exit code for SIGINT
}

// runCleanup executes all cleanup functions with a timeout
func (h *SignalHandler) runCleanup() error {
	logger := otelzap.Ctx(h.ctx)

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		// Execute cleanup functions in reverse order (LIFO)
		var lastErr error
		for i := len(h.cleanupFuncs) - 1; i >= 0; i-- {
			if err := h.cleanupFuncs[i](); err != nil {
				logger.Warn("Cleanup function failed",
					zap.Int("index", i),
					zap.Error(err))
				lastErr = err
			}
		}
		done <- lastErr
	}()

	select {
	case err := <-done:
		return err
	case <-cleanupCtx.Done():
		logger.Error("Cleanup timed out after 5 seconds")
		return fmt.Errorf("cleanup timed out")
	}
}

// Stop gracefully stops the signal handler
// Should be called at the end of successful operations
func (h *SignalHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.sigChan)
}
