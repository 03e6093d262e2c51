package send

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
)

// pointConfigAtMissing keeps the resolved settings on built-in defaults.
func pointConfigAtMissing(t *testing.T) {
	t.Helper()
	t.Setenv("HERMES_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestMailCommandFailsLoudlyWithoutRecipients(t *testing.T) {
	pointConfigAtMissing(t)
	SendCmd.SetArgs([]string{"mail", "--subject", "status", "--body", "all good", "--from", "hermes@example.com"})

	err := SendCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message has no recipients")
	assert.Equal(t, 2, hermes_err.GetExitCode(err))
}

func TestMailCommandDryRunSkipsDelivery(t *testing.T) {
	pointConfigAtMissing(t)
	SendCmd.SetArgs([]string{
		"mail",
		"--to", "dry@example.com",
		"--from", "hermes@example.com",
		"--subject", "status",
		"--body", "all good",
		"--dry-run",
	})

	out := captureStdout(t, func() {
		require.NoError(t, SendCmd.Execute())
	})

	assert.Contains(t, out, "Dry run, nothing sent")
	assert.Contains(t, out, "dry@example.com")
}

func TestMailCommandRequiresSubject(t *testing.T) {
	pointConfigAtMissing(t)
	SendCmd.SetArgs([]string{"mail", "--subject", "", "--body", "all good"})

	err := SendCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--subject")
	assert.Equal(t, 2, hermes_err.GetExitCode(err))
}

func TestMailCommandReportsUnreadableAttachment(t *testing.T) {
	pointConfigAtMissing(t)
	missing := filepath.Join(t.TempDir(), "missing.csv")
	SendCmd.SetArgs([]string{
		"mail",
		"--to", "ops@example.com",
		"--subject", "status",
		"--body", "all good",
		"--attach", missing,
	})

	err := SendCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not readable")

	var classified *hermes_err.ClassifiedError
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, hermes_err.CategoryValidation, classified.Category)
}

func TestMailCommandRejectsBodyConflict(t *testing.T) {
	pointConfigAtMissing(t)
	SendCmd.SetArgs([]string{"mail", "--body", "inline", "--body-file", "also-a-file.txt"})

	err := SendCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
