// cmd/read/config.go

package read

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/config"
	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration with secrets redacted",
	Long: `Print the configuration hermes resolved at startup: defaults, the
optional config file, and HERMES_* environment overrides, merged in that
order. Passwords are masked.

With --export the same redacted view is written out as a YAML file, which
makes a reasonable starting point for a config file. Replace the masked
passwords before using it.`,
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

		settings, err := config.Load(rc)
		if err != nil {
			return err
		}

		if exportPath := hermes.GetStringOrEmpty(cmd, "export"); exportPath != "" {
			if err := hermes_io.WriteYAML(rc.Ctx, exportPath, settings.Redacted()); err != nil {
				return err
			}
			logger.Info("terminal prompt: Configuration written",
				zap.String("file", exportPath))
			return nil
		}

		out, err := yaml.Marshal(settings.Redacted())
		if err != nil {
			return hermes_err.NewInternalError("failed to render configuration", err)
		}

		logger.Info("terminal prompt: Effective configuration",
			zap.String("file", config.ConfigFilePath()),
			zap.String("output", strings.TrimRight(string(out), "\n")))
		return nil
	}),
}

func init() {
	ReadCmd.AddCommand(configCmd)

	configCmd.Flags().String("export", "", "Write the redacted configuration to this YAML file")
}
