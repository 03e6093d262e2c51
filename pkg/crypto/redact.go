// pkg/crypto/redact.go

package crypto

import "strings"

// Redact returns a string of asterisks of the same length as the input.
// Use for masking secrets in logs (not cryptographically secure).
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", len([]rune(s)))
}

// RedactPreview masks all but the last visible runes, so an operator can
// confirm which credential is configured without exposing it. Values too
// short to mask meaningfully are fully redacted.
func RedactPreview(s string, visible int) string {
	runes := []rune(s)
	if s == "" {
		return "(empty)"
	}
	if visible <= 0 || len(runes) <= visible*2 {
		return Redact(s)
	}
	return strings.Repeat("*", len(runes)-visible) + string(runes[len(runes)-visible:])
}
