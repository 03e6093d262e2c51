/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/xdg"
)

// PlatformLogPaths returns fallback log paths in order of priority for the platform.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			xdg.XDGStatePath(shared.HermesID, "hermes.log"),
			shared.HermesLogsPWD,
			"/tmp/hermes/hermes.log",
		}
	case "linux":
		return []string{
			shared.HermesLogs, // best if writable
			xdg.XDGStatePath(shared.HermesID, "hermes.log"), // user-local fallback (~/.local/state/hermes/hermes.log)
			shared.HermesLogsPWD,                            // current working dir
			"/tmp/hermes/hermes.log",                        // ephemeral
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("ProgramData"), shared.HermesID, "hermes.log"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), shared.HermesID, "hermes.log"),
			".\\hermes.log",
		}
	default:
		return []string{shared.HermesLogsPWD}
	}
}
