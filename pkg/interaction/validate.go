// pkg/interaction/validate.go
package interaction

import (
	"errors"
	"regexp"
	"strings"
)

// ---------------- VALIDATORS ---------------- //

var dnComponentRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*=.+$`)

// ValidateNonEmpty ensures the input is not empty.
func ValidateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// ValidateDN checks that the input is shaped like a distinguished name:
// comma-separated attr=value components ("OU=Staff,DC=example,DC=com").
func ValidateDN(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("DN cannot be empty")
	}
	for _, part := range strings.Split(input, ",") {
		if !dnComponentRegex.MatchString(strings.TrimSpace(part)) {
			return errors.New("invalid DN (expected attr=value components, e.g. OU=Staff,DC=example,DC=com)")
		}
	}
	return nil
}
