// pkg/xdg/xdg.go

package xdg

import (
	"os"
	"path/filepath"
)

// DirPermStandard is the mode for directories holding non-secret artifacts.
const DirPermStandard = 0755

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

// XDGConfigPath locates app's config file (~/.config by default).
func XDGConfigPath(app, file string) string {
	base := GetEnvOrDefault("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config"))
	return filepath.Join(base, app, file)
}

// XDGStatePath locates app's state file (~/.local/state by default); logs
// and telemetry live here.
func XDGStatePath(app, file string) string {
	base := GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(os.Getenv("HOME"), ".local", "state"))
	return filepath.Join(base, app, file)
}

// EnsureDir creates the parent directory for path if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), DirPermStandard)
}
