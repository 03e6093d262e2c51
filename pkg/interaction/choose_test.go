package interaction

import (
	"context"
	"strings"
	"testing"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptStdin replaces stdin with scripted input lines for one test.
func scriptStdin(t *testing.T, input string) {
	t.Helper()
	testStdin = strings.NewReader(input)
	t.Cleanup(func() { testStdin = nil })
}

func testRC() *hermes_io.RuntimeContext {
	return &hermes_io.RuntimeContext{Ctx: context.Background()}
}

func userPresenter() Presenter[string] {
	return Presenter[string]{
		Prompt: "Multiple accounts matched",
		Render: func(s string) string { return s },
	}
}

func TestChooseOneEmptySet(t *testing.T) {
	scriptStdin(t, "")

	_, err := ChooseOne(testRC(), []string{}, userPresenter())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestChooseOneSingleCandidateSkipsPrompt(t *testing.T) {
	// An exhausted reader would fail any read; a single candidate must not read.
	scriptStdin(t, "")

	got, err := ChooseOne(testRC(), []string{"alice@example.com"}, userPresenter())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)
}

func TestChooseOneOrdinalSelection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "first_option", input: "1\n", want: "alice"},
		{name: "middle_option", input: "2\n", want: "bob"},
		{name: "last_option", input: "3\n", want: "carol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scriptStdin(t, tt.input)

			got, err := ChooseOne(testRC(), []string{"alice", "bob", "carol"}, userPresenter())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseOneRepromptsUntilValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "non_numeric_then_valid", input: "x\n2\n", want: "bob"},
		{name: "zero_then_valid", input: "0\n1\n", want: "alice"},
		{name: "out_of_range_then_valid", input: "4\n3\n", want: "carol"},
		{name: "negative_then_valid", input: "-1\n2\n", want: "bob"},
		{name: "empty_then_valid", input: "\n1\n", want: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scriptStdin(t, tt.input)

			got, err := ChooseOne(testRC(), []string{"alice", "bob", "carol"}, userPresenter())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChooseOneQuit(t *testing.T) {
	for _, input := range []string{"q\n", "Q\n", "quit\n"} {
		scriptStdin(t, input)

		_, err := ChooseOne(testRC(), []string{"alice", "bob"}, userPresenter())
		require.Error(t, err)
		assert.True(t, hermes_err.IsUserCancelled(err), "quit must surface as user cancellation")
	}
}

func TestChooseOneReadFailure(t *testing.T) {
	// Script runs dry before a valid answer arrives
	scriptStdin(t, "bogus\n")

	_, err := ChooseOne(testRC(), []string{"alice", "bob"}, userPresenter())
	require.Error(t, err)
	assert.False(t, hermes_err.IsUserCancelled(err))
}

func TestChooseOneRendersViaPresenter(t *testing.T) {
	type account struct {
		DN   string
		Mail string
	}
	scriptStdin(t, "2\n")

	items := []account{
		{DN: "CN=Alice,OU=Staff,DC=example,DC=com", Mail: "alice@example.com"},
		{DN: "CN=Alicia,OU=Staff,DC=example,DC=com", Mail: "alicia@example.com"},
	}
	got, err := ChooseOne(testRC(), items, Presenter[account]{
		Prompt: "Which account?",
		Render: func(a account) string { return a.DN + " <" + a.Mail + ">" },
	})
	require.NoError(t, err)
	assert.Equal(t, "alicia@example.com", got.Mail)
}

func TestPromptSelect(t *testing.T) {
	t.Run("returns_selected_option", func(t *testing.T) {
		scriptStdin(t, "2\n")

		got, err := PromptSelect(testRC(), "Pick a strategy", []string{"narrow", "widen", "give up"})
		require.NoError(t, err)
		assert.Equal(t, "widen", got)
	})

	t.Run("empty_options_error", func(t *testing.T) {
		scriptStdin(t, "")

		_, err := PromptSelect(testRC(), "Pick", nil)
		assert.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("quit_cancels", func(t *testing.T) {
		scriptStdin(t, "q\n")

		_, err := PromptSelect(testRC(), "Pick", []string{"a", "b"})
		require.Error(t, err)
		assert.True(t, hermes_err.IsUserCancelled(err))
	})
}

func TestConfirmOrRetry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Decision
	}{
		{name: "enter_continues", input: "\n", want: DecisionContinue},
		{name: "c_continues", input: "c\n", want: DecisionContinue},
		{name: "continue_word", input: "continue\n", want: DecisionContinue},
		{name: "r_retries", input: "r\n", want: DecisionRetry},
		{name: "q_quits", input: "q\n", want: DecisionQuit},
		{name: "case_insensitive", input: "R\n", want: DecisionRetry},
		{name: "invalid_then_retry", input: "maybe\nr\n", want: DecisionRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scriptStdin(t, tt.input)

			got, err := ConfirmOrRetry(testRC(), "Found: CN=Alice,DC=example,DC=com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackPrompter(t *testing.T) {
	options := []FallbackOption{
		{Label: "Pick one of the matches", Code: "pick"},
		{Label: "Search again with a different base", Code: "rescope"},
		{Label: "Quit", Code: "abort"},
	}

	t.Run("maps_label_to_code", func(t *testing.T) {
		scriptStdin(t, "2\n")

		code, err := FallbackPrompter(testRC(), "No single match. What now?", options)
		require.NoError(t, err)
		assert.Equal(t, "rescope", code)
	})

	t.Run("quit_propagates_cancellation", func(t *testing.T) {
		scriptStdin(t, "q\n")

		_, err := FallbackPrompter(testRC(), "No single match. What now?", options)
		require.Error(t, err)
		assert.True(t, hermes_err.IsUserCancelled(err))
	})
}

func TestHandleFallbackChoice(t *testing.T) {
	var picked bool
	handlers := map[string]func() error{
		"pick": func() error { picked = true; return nil },
	}

	require.NoError(t, HandleFallbackChoice(testRC(), "pick", handlers))
	assert.True(t, picked)

	err := HandleFallbackChoice(testRC(), "no-such-code", handlers)
	assert.Error(t, err)
}
