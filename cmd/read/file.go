// cmd/read/file.go

package read

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/picker"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Pick a file interactively and print its path",
	Long: `Browse a directory and select one file. On a terminal this is a full
picker; without one it falls back to a numbered listing. The selected
path prints on stdout so it can feed a shell pipeline.

Examples:
  hermes read file --dir /var/reports --ext .csv
  vim "$(hermes read file)"`,
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		exts, _ := cmd.Flags().GetStringSlice("ext")

		path, err := picker.PickFile(rc, dir, exts)
		if err != nil {
			return err
		}

		otelzap.Ctx(rc.Ctx).Info("terminal prompt: " + path)
		return nil
	}),
}

func init() {
	ReadCmd.AddCommand(fileCmd)

	hermes.AddStringFlag(fileCmd, "dir", "d", "", "Directory to browse (defaults to the current one)", false)
	hermes.AddStringSliceFlag(fileCmd, "ext", "", nil, "Only offer files with these extensions (e.g. .csv)", false)
}
