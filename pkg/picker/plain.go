// pkg/picker/plain.go

package picker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/interaction"
)

// pickFilePlain is the non-TTY path: a numbered prompt over the directory
// listing. os.ReadDir already sorts by name, so the menu is stable.
func pickFilePlain(rc *hermes_io.RuntimeContext, dir string, extensions []string) (string, error) {
	names, err := listFiles(dir, extensions)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", hermes_err.NewNotFoundError(
			fmt.Sprintf("selectable file in %q", dir),
			"Check the directory and the extension filter")
	}

	choice, err := interaction.PromptSelect(rc,
		fmt.Sprintf("Pick a file from %s", dir), names)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, choice)
	otelzap.Ctx(rc.Ctx).Info("File selected", zap.String("path", path))
	return path, nil
}

func listFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, hermes_err.NewExternalError(
			fmt.Sprintf("failed to list %q", dir), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasAllowedExt(entry.Name(), extensions) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
