package hermes_io

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	// MaxInputLength defines the maximum allowed length for user input
	MaxInputLength = 4096

	// MaxPasswordLength defines the maximum allowed password length
	MaxPasswordLength = 256
)

var (
	// controlCharRegex matches dangerous control characters
	controlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F-\x9F]`)

	// ansiEscapeRegex matches ANSI escape sequences
	ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]|\x9b[0-9;]*[A-Za-z]`)
)

// InputValidationError represents input validation errors
type InputValidationError struct {
	Field  string
	Reason string
	Input  string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Field, e.Reason)
}

// ValidateUserInput rejects empty, oversized, or terminal-manipulating input.
func ValidateUserInput(input, fieldName string) error {
	if strings.TrimSpace(input) == "" {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "cannot be empty",
			Input:  input,
		}
	}

	if len(input) > MaxInputLength {
		return &InputValidationError{
			Field:  fieldName,
			Reason: fmt.Sprintf("too long (%d chars, max %d)", len(input), MaxInputLength),
			Input:  input[:50] + "...", // Truncate for logging
		}
	}

	if !utf8.ValidString(input) {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "contains invalid UTF-8 sequences",
			Input:  input,
		}
	}

	if controlCharRegex.MatchString(input) {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "contains dangerous control characters",
			Input:  input,
		}
	}

	if ansiEscapeRegex.MatchString(input) {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "contains ANSI escape sequences",
			Input:  input,
		}
	}

	return nil
}

// SanitizeUserInput removes dangerous characters from user input. Escape
// sequences are stripped whole before the remaining control characters, so
// the printable payload of a sequence does not survive sanitization.
func SanitizeUserInput(input string) string {
	sanitized := ansiEscapeRegex.ReplaceAllString(input, "")
	sanitized = controlCharRegex.ReplaceAllString(sanitized, "")
	sanitized = strings.ReplaceAll(sanitized, "\x00", "")
	sanitized = strings.ReplaceAll(sanitized, "\x9b", "")

	if !utf8.ValidString(sanitized) {
		var result strings.Builder
		for _, r := range sanitized {
			if r != utf8.RuneError {
				result.WriteRune(r)
			}
		}
		sanitized = result.String()
	}

	return strings.TrimSpace(sanitized)
}

// validatePasswordInput validates password input; more permissive than
// ValidateUserInput since passwords legitimately contain symbols.
func validatePasswordInput(password, fieldName string) error {
	if len(password) == 0 {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "cannot be empty",
			Input:  "[PASSWORD]",
		}
	}

	if len(password) > MaxPasswordLength {
		return &InputValidationError{
			Field:  fieldName,
			Reason: fmt.Sprintf("too long (%d chars, max %d)", len(password), MaxPasswordLength),
			Input:  "[PASSWORD]",
		}
	}

	if !utf8.ValidString(password) {
		return &InputValidationError{
			Field:  fieldName,
			Reason: "contains invalid UTF-8 sequences",
			Input:  "[PASSWORD]",
		}
	}

	for _, r := range password {
		if r < 32 && r != '\t' && r != '\n' {
			return &InputValidationError{
				Field:  fieldName,
				Reason: "contains dangerous control characters",
				Input:  "[PASSWORD]",
			}
		}
		if r >= 127 && r <= 159 {
			return &InputValidationError{
				Field:  fieldName,
				Reason: "contains C1 control characters",
				Input:  "[PASSWORD]",
			}
		}
	}

	return nil
}

// sanitizePasswordInput strips sequence characters while preserving the rest.
func sanitizePasswordInput(password string) string {
	sanitized := strings.ReplaceAll(password, "\x00", "")
	sanitized = ansiEscapeRegex.ReplaceAllString(sanitized, "")
	sanitized = strings.ReplaceAll(sanitized, "\x9b", "")
	return sanitized
}

// PromptSecurePassword prompts for a password without echoing to screen.
func PromptSecurePassword(rc *RuntimeContext, prompt string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS - Check if we can read from terminal
	logger.Debug("Assessing secure password input capability")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", shared.ErrNotTTY
	}

	// INTERVENE - Read password securely
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr) // Add newline after password input

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	passwordStr := string(password)

	// EVALUATE - Validate password input
	if err := validatePasswordInput(passwordStr, "password"); err != nil {
		logger.Warn("Invalid password input", zap.Error(err))
		return "", err
	}

	sanitized := sanitizePasswordInput(passwordStr)

	logger.Debug("Successfully read secure password input")
	return sanitized, nil
}
