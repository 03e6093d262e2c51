/* cmd/root.go */

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Subcommands
	"github.com/CodeMonkeyCybersecurity/hermes/cmd/create"
	"github.com/CodeMonkeyCybersecurity/hermes/cmd/read"
	"github.com/CodeMonkeyCybersecurity/hermes/cmd/send"

	// Internal packages
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/telemetry"
)

var helpLogged bool // global guard to log help only once

// RootCmd is the base command for hermes.
var RootCmd = &cobra.Command{
	Use:     "hermes",
	Short:   "Hermes CLI for credentials, rosters, directory lookups, and mail",
	Version: shared.Version,
	Long: `Hermes is a command-line application for everyday service-desk plumbing:
secure password generation, CSV roster lookups, directory user searches,
and outbound mail.`,

	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		fmt.Println("⚠️  No subcommand provided. Try `hermes help`.")
		return cmd.Help()
	}),
}

// HelpCmd wraps help so that it can be invoked like a normal command.
var HelpCmd = &cobra.Command{
	Use:   "help",
	Short: "Help about any command",
	Long:  "Displays help for hermes or a specific subcommand.",
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		// If no arguments, show root help
		if len(args) == 0 {
			return RootCmd.Help()
		}
		// Otherwise, find the command and show its help.
		c, _, err := RootCmd.Find(args)
		if err != nil || c == nil {
			return fmt.Errorf("command not found: %s", strings.Join(args, " "))
		}
		return c.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.SetHelpCommand(HelpCmd)

	log := logger.L()

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if !helpLogged {
			log.Info("Global help triggered via --help or -h", zap.String("command", cmd.Name()))
			helpLogged = true
			defer log.Info("Global help display complete", zap.String("command", cmd.Name()))
		}
		if err := cmd.Root().Usage(); err != nil {
			log.Warn("Failed to print usage", zap.Error(err))
		}
	})

	// Group subcommands for cleanliness
	for _, subCmd := range []*cobra.Command{
		create.CreateCmd,
		read.ReadCmd,
		send.SendCmd,
	} {
		RootCmd.AddCommand(subCmd)
	}
}

// flush drains batched telemetry spans and buffered log entries. It is
// called explicitly on every exit path because os.Exit skips deferred
// functions.
func flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := telemetry.Shutdown(ctx); err != nil {
		logger.L().Warn("Telemetry flush failed", zap.Error(err))
	}
	if err := logger.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Failed to flush logs: %v\n", err)
	}
}

// Execute initializes and runs the root command. The context comes from the
// signal handler so Ctrl-C cancels in-flight prompts and lookups.
func Execute(ctx context.Context) {
	RegisterCommands()

	err := RootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		flush()
	case hermes_err.IsExpectedUserError(err):
		logger.L().Warn("CLI completed with user error", zap.Error(err))
		flush()
		os.Exit(0) // <-- gracefully allow 0 exit code for user errors
	case hermes_err.IsUserCancelled(err):
		logger.L().Warn("CLI cancelled by user", zap.Error(err))
		flush()
		os.Exit(hermes_err.GetExitCode(err))
	default:
		logger.L().Error("CLI execution error", zap.Error(err))
		flush()
		os.Exit(hermes_err.GetExitCode(err))
	}
}
