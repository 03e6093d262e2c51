// pkg/picker/picker.go
//
// Terminal file selection. On a TTY this runs a bubbletea file picker;
// everywhere else it falls back to a numbered prompt over the directory
// listing. Either way the result is one file path, or a user-cancelled
// error when the operator backs out.

package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
)

// PickFile lets the operator select one file under startDir. Extensions,
// when non-empty, restrict the selectable files (".csv" style, matched
// case-insensitively).
func PickFile(rc *hermes_io.RuntimeContext, startDir string, extensions []string) (string, error) {
	logger := otelzap.Ctx(rc.Ctx)

	if startDir == "" {
		startDir = "."
	}
	info, err := os.Stat(startDir)
	if err != nil || !info.IsDir() {
		return "", hermes_err.NewValidationError(
			fmt.Sprintf("%q is not a readable directory", startDir),
			"Pass a directory to pick from, e.g. --dir ./exports")
	}
	extensions = normalizeExtensions(extensions)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Debug("Stdin is not a terminal, using numbered fallback",
			zap.String("dir", startDir))
		return pickFilePlain(rc, startDir, extensions)
	}

	m := newModel(startDir, extensions)
	// The picker draws on stderr so stdout stays clean for results.
	final, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", hermes_err.NewInternalError("file picker failed", err)
	}

	result, ok := final.(model)
	if !ok || result.selected == "" {
		return "", hermes_err.NewUserCancelledError("file selection")
	}

	logger.Info("File selected", zap.String("path", result.selected))
	return result.selected, nil
}

// normalizeExtensions lowercases and dot-prefixes the filter list.
func normalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func hasAllowedExt(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
