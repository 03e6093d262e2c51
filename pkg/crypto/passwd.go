/* pkg/crypto/passwd.go */

package crypto

import (
	"crypto/rand"
	"math/big"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
)

const (
	// MinPasswordLength and MaxPasswordLength bound GeneratePassword requests.
	MinPasswordLength = 1
	MaxPasswordLength = 127

	// DefaultPasswordLength is what callers substitute when the operator asks
	// for "a password" without naming a length. The substitution happens at
	// the command layer, never here.
	DefaultPasswordLength = 8
)

// Character classes with the visually ambiguous set {0 O o 1 l I i} removed.
const (
	PasswordCharsUpper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	PasswordCharsLower   = "abcdefghjkmnpqrstuvwxyz"
	PasswordCharsDigits  = "23456789"
	PasswordCharsSymbols = "!@#$%&*?" // bash-safe
)

// passwordAlphabet is the sampling pool: the union of all four classes.
const passwordAlphabet = PasswordCharsUpper + PasswordCharsLower + PasswordCharsDigits + PasswordCharsSymbols

// GeneratePassword draws length characters independently and uniformly, with
// replacement, from passwordAlphabet using crypto/rand. No character class is
// guaranteed to appear; uniformity is the property callers can rely on.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", hermes_err.NewValidationError(
			"password length must be between 1 and 127",
			"Pass a length in range, or 0 to accept the default of 8")
	}

	pw := make([]byte, length)
	for i := range pw {
		c, err := randomChar(passwordAlphabet)
		if err != nil {
			return "", err
		}
		pw[i] = c
	}
	return string(pw), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
