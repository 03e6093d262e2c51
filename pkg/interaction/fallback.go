package interaction

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// FallbackPrompter displays a list of fallback options and returns the selected option code.
func FallbackPrompter(rc *hermes_io.RuntimeContext, title string, options []FallbackOption) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Debug("Prompting fallback options", zap.String("title", title))

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}

	choice, err := PromptSelect(rc, title, labels)
	if err != nil {
		return "", err
	}

	for _, opt := range options {
		if opt.Label == choice {
			logger.Debug("User selected fallback option",
				zap.String("label", opt.Label),
				zap.String("code", opt.Code),
			)
			return opt.Code, nil
		}
	}

	logger.Warn("Selected label not recognized", zap.String("label", choice))
	return "", fmt.Errorf("invalid fallback choice: %s", choice)
}

// HandleFallbackChoice executes the appropriate handler for the user's fallback choice.
func HandleFallbackChoice(rc *hermes_io.RuntimeContext, choice string, handlers map[string]func() error) error {
	if handler, ok := handlers[choice]; ok {
		return handler()
	}
	otelzap.Ctx(rc.Ctx).Error("Unexpected fallback choice", zap.String("choice", choice))
	return fmt.Errorf("invalid fallback choice: %s", choice)
}
