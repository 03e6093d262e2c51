// pkg/interaction/confirm.go

package interaction

import (
	"fmt"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Decision is the outcome of a confirmation gate.
type Decision int

const (
	DecisionContinue Decision = iota
	DecisionRetry
	DecisionQuit
)

func (d Decision) String() string {
	switch d {
	case DecisionContinue:
		return "continue"
	case DecisionRetry:
		return "retry"
	case DecisionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ConfirmOrRetry shows the operator what was found and gates on their call:
// continue with it, retry the operation with different input, or quit.
// Empty input means continue; unrecognized input re-prompts.
func ConfirmOrRetry(rc *hermes_io.RuntimeContext, summary string) (Decision, error) {
	logger := otelzap.Ctx(rc.Ctx)

	logger.Info("terminal prompt: " + summary)

	reader := promptReader()
	for {
		input, err := ReadLine(rc.Ctx, reader, "[C]ontinue, [r]etry, or [q]uit")
		if err != nil {
			return DecisionQuit, err
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "", "c", "continue":
			logger.Debug("Operator confirmed", zap.String("decision", DecisionContinue.String()))
			return DecisionContinue, nil
		case "r", "retry":
			logger.Debug("Operator chose retry")
			return DecisionRetry, nil
		case Quit, "quit":
			logger.Debug("Operator quit at confirmation gate")
			return DecisionQuit, nil
		default:
			logger.Warn("Invalid confirmation input", zap.String("input", input))
			logger.Info(fmt.Sprintf("terminal prompt: Unrecognized answer %q. Press Enter to continue, r to retry, q to quit.", input))
		}
	}
}
