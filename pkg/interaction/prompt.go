// pkg/interaction/prompt.go

package interaction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// PromptIfMissing returns the value of a CLI flag or prompts the user if it's unset.
// If `isSecret` is true, the input is hidden (e.g. passwords).
func PromptIfMissing(rc *hermes_io.RuntimeContext, cmd *cobra.Command, flagName, prompt string, isSecret bool) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	val, err := cmd.Flags().GetString(flagName)
	if err != nil {
		logger.Error("Failed to get CLI flag", zap.String("flag", flagName), zap.Error(err))
		return "", err
	}
	if val != "" {
		logger.Debug("CLI flag provided", zap.String("flag", flagName))
		return val, nil
	}

	logger.Debug("Prompting for missing flag", zap.String("flag", flagName), zap.Bool("is_secret", isSecret))

	if isSecret {
		return hermes_io.PromptSecurePassword(rc, prompt)
	}
	return PromptInput(rc, prompt, "")
}

// PromptInput asks for user input with an optional default fallback.
func PromptInput(rc *hermes_io.RuntimeContext, prompt, defaultVal string) (string, error) {
	label := prompt
	if defaultVal != "" {
		label = fmt.Sprintf("%s [%s]", prompt, defaultVal)
	}

	input, err := ReadLine(rc.Ctx, promptReader(), label)
	if err != nil {
		return "", err
	}
	if input == "" {
		otelzap.Ctx(rc.Ctx).Debug("Using default value", zap.String("default", defaultVal))
		return defaultVal, nil
	}
	return input, nil
}

// PromptRequired prompts the user for input and returns the trimmed value.
// It keeps asking until a non-empty string is entered.
func PromptRequired(rc *hermes_io.RuntimeContext, label string) (string, error) {
	return PromptValidated(rc, label, ValidateNonEmpty)
}

// PromptValidated asks for input until the validator passes.
func PromptValidated(rc *hermes_io.RuntimeContext, label string, validator func(string) error) (string, error) {
	reader := promptReader()
	for {
		text, err := ReadLine(rc.Ctx, reader, label)
		if err != nil {
			return "", err
		}
		if verr := validator(text); verr != nil {
			otelzap.Ctx(rc.Ctx).Info("terminal prompt: " + verr.Error())
			continue
		}
		return text, nil
	}
}

// PromptSelect displays numbered options and returns the selected value.
// The operator can abort with "q"; invalid entries re-prompt.
func PromptSelect(rc *hermes_io.RuntimeContext, prompt string, options []string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Debug("Prompting selection", zap.String("prompt", prompt), zap.Int("num_options", len(options)))

	if len(options) == 0 {
		return "", ErrNoCandidates
	}

	printChoices(rc, prompt, options)

	reader := promptReader()
	for {
		choice, err := ReadLine(rc.Ctx, reader, EnterChoicePrompt)
		if err != nil {
			return "", err
		}

		if strings.EqualFold(choice, Quit) || strings.EqualFold(choice, "quit") {
			logger.Info("User quit selection", zap.String("prompt", prompt))
			return "", hermes_err.NewUserCancelledError("selection")
		}

		idx, err := strconv.Atoi(choice)
		if err == nil && idx >= 1 && idx <= len(options) {
			logger.Debug("User selected option", zap.Int("index", idx), zap.String("value", options[idx-1]))
			return options[idx-1], nil
		}

		logger.Warn("Invalid selection", zap.String("input", choice))
		logger.Info(fmt.Sprintf("terminal prompt: Invalid selection %q. Enter a number between 1 and %d, or q to quit.", choice, len(options)))
	}
}

// PromptYesNo asks a yes/no question and returns true/false. Falls back to default if unknown.
func PromptYesNo(rc *hermes_io.RuntimeContext, prompt string, defaultYes bool) bool {
	logger := otelzap.Ctx(rc.Ctx)

	defPrompt := DefaultYesPrompt
	if !defaultYes {
		defPrompt = DefaultNoPrompt
	}
	label := fmt.Sprintf("%s [%s]", prompt, defPrompt)

	input, err := ReadLine(rc.Ctx, promptReader(), label)
	if err != nil {
		logger.Error("Failed to read yes/no input", zap.Error(err))
		return defaultYes
	}

	if answer, ok := NormalizeYesNoInput(input); ok {
		logger.Debug("User input parsed", zap.Bool("answer", answer))
		return answer
	}

	logger.Debug("Default applied", zap.String("prompt", prompt), zap.Bool("default_yes", defaultYes))
	return defaultYes
}

// NormalizeYesNoInput returns true if the provided input string is an affirmative response like "y" or "yes".
// It trims whitespace and lowercases input before comparison.
func NormalizeYesNoInput(input string) (bool, bool) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == YesShort || input == YesLong {
		return true, true
	}
	if input == NoShort || input == NoLong {
		return false, true
	}
	return false, false // unknown
}
