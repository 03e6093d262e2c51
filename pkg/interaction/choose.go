// pkg/interaction/choose.go
//
// Generic disambiguation: give the operator N candidates, get exactly one
// back. Zero candidates is the caller's error to classify; one candidate
// short-circuits without touching the terminal; more than one turns into a
// numbered menu with re-prompting until the answer parses.

package interaction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ErrNoCandidates is returned when a selection is requested over an empty
// candidate set. Callers classify it with whatever they were looking for.
var ErrNoCandidates = cerr.New("no candidates to choose from")

// Presenter controls how ChooseOne shows candidates of type T.
type Presenter[T any] struct {
	Prompt string
	Render func(T) string
}

// ChooseOne resolves a candidate set down to a single element.
//
// Candidate counts drive the behavior: an empty set returns ErrNoCandidates,
// a single candidate is returned directly with no interaction, and multiple
// candidates are listed 1-based for the operator to pick by number. Invalid
// entries re-prompt; "q" aborts with a user-cancelled error.
func ChooseOne[T any](rc *hermes_io.RuntimeContext, items []T, p Presenter[T]) (T, error) {
	logger := otelzap.Ctx(rc.Ctx)
	var zero T

	switch len(items) {
	case 0:
		return zero, ErrNoCandidates
	case 1:
		logger.Debug("Single candidate, no disambiguation needed")
		return items[0], nil
	}

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = p.Render(item)
	}
	printChoices(rc, p.Prompt, labels)

	reader := promptReader()
	for {
		choice, err := ReadLine(rc.Ctx, reader, EnterChoicePrompt)
		if err != nil {
			return zero, cerr.Wrap(err, "read selection")
		}

		if strings.EqualFold(choice, Quit) || strings.EqualFold(choice, "quit") {
			logger.Info("User quit selection", zap.String("prompt", p.Prompt))
			return zero, hermes_err.NewUserCancelledError("selection")
		}

		idx, convErr := strconv.Atoi(choice)
		if convErr == nil && idx >= 1 && idx <= len(items) {
			logger.Debug("User selected candidate",
				zap.Int("index", idx),
				zap.String("value", labels[idx-1]))
			return items[idx-1], nil
		}

		logger.Warn("Invalid selection", zap.String("input", choice))
		logger.Info(fmt.Sprintf("terminal prompt: Invalid selection %q. Enter a number between 1 and %d, or q to quit.", choice, len(items)))
	}
}
