// cmd/read/user.go

package read

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/config"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/directory"
	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/interaction"
)

var userCmd = &cobra.Command{
	Use:   "user <logon>",
	Short: "Look up a directory account by logon name",
	Long: `Search the configured directory server for an account by sAMAccountName
or uid and print the resolved entry.

A single match asks for confirmation before continuing. Multiple matches
become a numbered menu, with the option to search again under a different
base DN instead. With --non-interactive an ambiguous result fails instead
of prompting.

Examples:
  hermes read user jsmith
  hermes read user jsmith --base OU=Contractors,DC=example,DC=com
  hermes read user jsmith --server dc01.example.com --non-interactive`,
	Args: cobra.ExactArgs(1),
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)
		logon := args[0]

		// The logon goes into an LDAP filter and into log lines, so it is
		// checked before anything touches configuration or the network.
		if err := hermes_io.ValidateUserInput(logon, "logon"); err != nil {
			return hermes_err.NewValidationError(err.Error())
		}

		settings, err := config.Load(rc)
		if err != nil {
			return err
		}

		// Flags override a private copy; the loaded settings stay untouched.
		cfg := settings.Directory
		if server, _ := cmd.Flags().GetString("server"); server != "" {
			cfg.Server = server
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}
		base, _ := cmd.Flags().GetString("base")
		nonInteractive, _ := cmd.Flags().GetBool("non-interactive")

		// A bind DN with no stored password prompts for one. Scripted runs
		// skip the prompt and attempt an unauthenticated bind instead.
		if !nonInteractive && cfg.BindDN != "" && cfg.Password == "" {
			pass, err := interaction.PromptIfMissing(rc, cmd, "bind-pass", "Directory bind password: ", true)
			if err != nil {
				return err
			}
			cfg.Password = pass
		}

		logger.Info("Resolving directory user",
			zap.String("logon", logon),
			zap.String("server", cfg.URL()),
			zap.Bool("non_interactive", nonInteractive))

		svc := directory.NewService(&cfg)
		resolve := directory.ResolveUser
		if nonInteractive {
			resolve = directory.ResolveUserNonInteractive
		}

		user, err := resolve(rc, svc, logon, base)
		if err != nil {
			// Interactive sessions treat a no-match answer as an expected
			// outcome; scripted runs keep the hard error and its exit code.
			if !nonInteractive && hermes_err.IsNotFound(err) {
				return hermes_err.NewExpectedError(rc.Ctx, err)
			}
			return err
		}

		fields := []zap.Field{
			zap.String("logon", user.Logon),
			zap.String("dn", user.DN),
		}
		if user.Mail != "" {
			fields = append(fields, zap.String("mail", user.Mail))
		}
		if user.Domain != "" {
			fields = append(fields, zap.String("domain", user.Domain))
		}
		logger.Info("terminal prompt: "+user.CommonName, fields...)
		return nil
	}),
}

func init() {
	ReadCmd.AddCommand(userCmd)

	userCmd.Flags().String("server", "", "Directory server host (defaults to the configured one)")
	userCmd.Flags().Int("port", 0, "Directory server port (defaults to the configured one)")
	userCmd.Flags().String("base", "", "Search base DN (defaults to the configured one)")
	userCmd.Flags().String("bind-pass", "", "Password for the configured bind DN (prompted for when omitted)")
	userCmd.Flags().Bool("non-interactive", false, "Fail on ambiguous results instead of prompting")
}
