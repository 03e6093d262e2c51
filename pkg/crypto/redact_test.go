package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty_string", input: "", want: "(empty)"},
		{name: "short_secret", input: "abc", want: "***"},
		{name: "typical_password", input: "K7#mQ!x@", want: "********"},
		{name: "unicode_counts_runes_not_bytes", input: "密码", want: "**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Redact(tt.input))
		})
	}
}

func TestRedactPreview(t *testing.T) {
	t.Parallel()

	t.Run("reveals_only_the_tail", func(t *testing.T) {
		t.Parallel()
		got := RedactPreview("hunter2-secret", 4)
		assert.Equal(t, "**********cret", got)
		assert.NotContains(t, got, "hunter2")
	})

	t.Run("fully_redacts_short_values", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "****", RedactPreview("abcd", 4))
		assert.Equal(t, "(empty)", RedactPreview("", 4))
	})

	t.Run("zero_visible_means_full_redaction", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "******", RedactPreview("secret", 0))
	})
}
