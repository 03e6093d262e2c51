// pkg/hermes_cli/flags.go
//
// Flag helpers shared by every hermes command. Flags remain the primary
// interface; Viper layers environment variables underneath for anything the
// operator would rather not repeat on every invocation.

package hermes_cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AddStringFlag adds a string flag and optionally marks as required.
// Note: Errors marking flag as required are logged but don't fail - Cobra will validate at runtime.
func AddStringFlag(cmd *cobra.Command, name, shorthand, def, help string, required bool) {
	cmd.Flags().StringP(name, shorthand, def, help)
	if required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			// This error is extremely rare (only if flag doesn't exist)
			fmt.Fprintf(os.Stderr, "warning: failed to mark flag %s as required: %v\n", name, err)
		}
	}
}

// AddBoolFlag adds a boolean flag.
func AddBoolFlag(cmd *cobra.Command, name, shorthand string, def bool, help string) {
	cmd.Flags().BoolP(name, shorthand, def, help)
}

// AddIntFlag adds an int flag.
func AddIntFlag(cmd *cobra.Command, name, shorthand string, def int, help string) {
	cmd.Flags().IntP(name, shorthand, def, help)
}

// AddStringSliceFlag adds a string slice flag.
func AddStringSliceFlag(cmd *cobra.Command, name, shorthand string, def []string, help string, required bool) {
	cmd.Flags().StringSliceP(name, shorthand, def, help)
	if required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to mark flag %s as required: %v\n", name, err)
		}
	}
}

// SetViperEnvPrefix lets Viper read env with prefix, so the config keys
// mail.host and directory.server become HERMES_MAIL_HOST / HERMES_DIRECTORY_SERVER.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
}

// GetStringOrEmpty returns the string value or empty string if error.
// For required flags, use Cobra's built-in validation instead.
func GetStringOrEmpty(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to get flag %s: %v\n", name, err)
		return ""
	}
	return val
}

// GetRequiredString returns the string value or an error when empty.
func GetRequiredString(cmd *cobra.Command, name string) (string, error) {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("flag error for --%s: %w", name, err)
	}
	if val == "" {
		return "", fmt.Errorf("required flag --%s is empty", name)
	}
	return val, nil
}
