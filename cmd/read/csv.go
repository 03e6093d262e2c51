// cmd/read/csv.go

package read

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"

	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/picker"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/tabular"
)

// badRosterOptions is offered when a picked roster lacks required columns.
var badRosterOptions = []interaction.FallbackOption{
	{Label: "Pick a different file", Code: "repick"},
	{Label: "Quit", Code: "quit"},
}

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Load a CSV roster and look up rows",
	Long: `Load a CSV roster, check that the columns you rely on are present, and
optionally search it. When --path is omitted a file picker runs first.

A roster that is missing required columns is rejected with every missing
column named at once; you are then offered a different file or a clean
exit. Search matches any field, case-insensitive; multiple hits become a
numbered menu.

Examples:
  # Browse for a roster, then search it
  hermes read csv --search "smith"

  # Fail unless the roster carries the columns a later import needs
  hermes read csv --path users.csv --require Name,Email

  # Re-write a roster after inspecting it
  hermes read csv --path users.csv --export checked.csv`,
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

		path := hermes.GetStringOrEmpty(cmd, "path")
		searchTerm := hermes.GetStringOrEmpty(cmd, "search")
		required, _ := cmd.Flags().GetStringSlice("require")
		exportPath := hermes.GetStringOrEmpty(cmd, "export")

		for {
			if path == "" {
				picked, err := picker.PickFile(rc, "", []string{".csv"})
				if err != nil {
					return err
				}
				path = picked
			}

			table, err := tabular.Load(rc, path)
			if err != nil {
				return err
			}

			missing := table.MissingFields(required)
			if missing == nil {
				return inspectTable(rc, table, searchTerm, exportPath)
			}

			logger.Warn("Roster is missing required columns",
				zap.String("path", path),
				zap.Error(missing))

			choice, err := interaction.FallbackPrompter(rc,
				fmt.Sprintf("%s cannot be used: %v", filepath.Base(path), missing),
				badRosterOptions)
			if err != nil {
				return err
			}
			err = interaction.HandleFallbackChoice(rc, choice, map[string]func() error{
				"repick": func() error { path = ""; return nil },
				"quit":   func() error { return hermes_err.NewUserCancelledError("roster load") },
			})
			if err != nil {
				return err
			}
		}
	}),
}

func inspectTable(rc *hermes_io.RuntimeContext, table *tabular.Table, searchTerm, exportPath string) error {
	logger := otelzap.Ctx(rc.Ctx)

	logger.Info("terminal prompt: Loaded roster",
		zap.String("file", table.Path),
		zap.Int("rows", len(table.Rows)),
		zap.String("columns", strings.Join(table.Headers, ", ")))

	if searchTerm != "" {
		matches := table.Search(searchTerm)
		if len(matches) == 0 {
			return hermes_err.NewNotFoundError(
				fmt.Sprintf("row matching %q", searchTerm),
				"Try a shorter or different search term")
		}

		row, err := interaction.ChooseOne(rc, matches, interaction.Presenter[tabular.Row]{
			Prompt: fmt.Sprintf("%d rows match %q", len(matches), searchTerm),
			Render: table.Describe,
		})
		if err != nil {
			return err
		}

		var b strings.Builder
		for _, h := range table.Headers {
			fmt.Fprintf(&b, "%s: %s\n", h, table.Field(row, h))
		}
		logger.Info("terminal prompt: Selected row",
			zap.String("output", strings.TrimRight(b.String(), "\n")))
	}

	if exportPath != "" {
		// An existing export target prompts before being overwritten.
		// Scripted runs (no TTY on stdin) overwrite without asking.
		if _, statErr := os.Stat(exportPath); statErr == nil && term.IsTerminal(int(os.Stdin.Fd())) {
			if !interaction.PromptYesNo(rc, fmt.Sprintf("%s exists, overwrite", exportPath), false) {
				return hermes_err.NewUserCancelledError("roster export")
			}
		}
		if err := tabular.Write(rc, exportPath, table); err != nil {
			return err
		}
		logger.Info("terminal prompt: Roster written",
			zap.String("file", exportPath),
			zap.Int("rows", len(table.Rows)))
	}
	return nil
}

func init() {
	ReadCmd.AddCommand(csvCmd)

	csvCmd.Flags().String("path", "", "CSV file to load (omit to pick interactively)")
	csvCmd.Flags().String("search", "", "Search term matched against every field")
	csvCmd.Flags().StringSlice("require", nil, "Column names that must be present")
	csvCmd.Flags().String("export", "", "Write the loaded roster back out to this file")
}
