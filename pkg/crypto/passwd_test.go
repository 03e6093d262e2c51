package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordEveryValidLength(t *testing.T) {
	t.Parallel()

	for length := MinPasswordLength; length <= MaxPasswordLength; length++ {
		pw, err := GeneratePassword(length)
		require.NoErrorf(t, err, "length %d should be accepted", length)
		assert.Lenf(t, pw, length, "length %d: wrong output length", length)

		for _, c := range pw {
			assert.Containsf(t, passwordAlphabet, string(c),
				"length %d: character %q outside alphabet", length, c)
		}
	}
}

func TestGeneratePasswordRejectsOutOfRangeLengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
	}{
		{name: "zero", length: 0},
		{name: "negative", length: -1},
		{name: "just_over_max", length: 128},
		{name: "far_over_max", length: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pw, err := GeneratePassword(tt.length)
			require.Error(t, err)
			assert.Empty(t, pw)
			assert.Contains(t, err.Error(), "between 1 and 127")
		})
	}
}

func TestGeneratePasswordExcludesAmbiguousCharacters(t *testing.T) {
	t.Parallel()

	const ambiguous = "0Oo1lIi"

	// The alphabet itself must not carry any ambiguous character
	for _, c := range ambiguous {
		assert.NotContainsf(t, passwordAlphabet, string(c),
			"alphabet contains ambiguous character %q", c)
	}

	// Neither may any generated password
	for i := 0; i < 50; i++ {
		pw, err := GeneratePassword(MaxPasswordLength)
		require.NoError(t, err)
		assert.Equal(t, -1, strings.IndexAny(pw, ambiguous),
			"password %q contains an ambiguous character", pw)
	}
}

func TestGeneratePasswordCoversWholeAlphabet(t *testing.T) {
	t.Parallel()

	// Enough draws that every alphabet character shows up and none dominates.
	counts := make(map[rune]int, len(passwordAlphabet))
	const rounds = 400
	for i := 0; i < rounds; i++ {
		pw, err := GeneratePassword(MaxPasswordLength)
		require.NoError(t, err)
		for _, c := range pw {
			counts[c]++
		}
	}

	draws := rounds * MaxPasswordLength
	expected := draws / len(passwordAlphabet)

	for _, c := range passwordAlphabet {
		n := counts[c]
		assert.Greaterf(t, n, 0, "character %q never drawn in %d draws", c, draws)
		assert.Lessf(t, n, expected*3, "character %q drawn %d times, expected near %d", c, n, expected)
	}
	assert.Len(t, counts, len(passwordAlphabet), "draws produced characters outside the alphabet")
}

func TestGeneratePasswordOutputsAreIndependent(t *testing.T) {
	t.Parallel()

	a, err := GeneratePassword(32)
	require.NoError(t, err)
	b, err := GeneratePassword(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "two 32-character passwords should never collide")
}

func TestPasswordCharacterClassesAreDisjoint(t *testing.T) {
	t.Parallel()

	classes := []string{PasswordCharsUpper, PasswordCharsLower, PasswordCharsDigits, PasswordCharsSymbols}
	seen := make(map[rune]int)
	for _, class := range classes {
		for _, c := range class {
			seen[c]++
		}
	}
	for c, n := range seen {
		assert.Equalf(t, 1, n, "character %q appears in %d classes", c, n)
	}
	assert.Len(t, passwordAlphabet, len(seen))
}

func FuzzGeneratePassword(f *testing.F) {
	seeds := []int{-1, 0, 1, 2, 7, 8, 16, 64, 127, 128, 1000}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, length int) {
		pw, err := GeneratePassword(length)

		if length < MinPasswordLength || length > MaxPasswordLength {
			if err == nil {
				t.Errorf("length %d out of range but no error", length)
			}
			if pw != "" {
				t.Errorf("length %d out of range but got output %q", length, pw)
			}
			return
		}

		if err != nil {
			t.Fatalf("length %d in range but got error: %v", length, err)
		}
		if len(pw) != length {
			t.Errorf("requested %d characters, got %d", length, len(pw))
		}
		for _, c := range pw {
			if !strings.ContainsRune(passwordAlphabet, c) {
				t.Errorf("character %q outside alphabet", c)
			}
		}
		if strings.ContainsAny(pw, "0Oo1lIi") {
			t.Errorf("password %q contains ambiguous characters", pw)
		}
	})
}
