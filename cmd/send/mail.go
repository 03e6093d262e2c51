// cmd/send/mail.go

package send

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/clean"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/config"
	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/mail"
)

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Send an email through the configured relay",
	Long: `Build and deliver one email over the configured SMTP relay.

Validation runs before any connection is made: a message with no
recipients or a malformed address fails immediately and nothing is
dialed. Delivery is attempted exactly once; failures are reported,
never retried. --dry-run stops after validating and rendering.

Examples:
  hermes send mail --to ops@example.com --subject "Disk alert" --body "Root volume at 91%"

  hermes send mail --to a@example.com,b@example.com --cc lead@example.com \
    --subject "Weekly report" --body-file report.txt --attach usage.csv`,
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

		settings, err := config.Load(rc)
		if err != nil {
			return err
		}

		to, _ := cmd.Flags().GetStringSlice("to")
		cc, _ := cmd.Flags().GetStringSlice("cc")
		bcc, _ := cmd.Flags().GetStringSlice("bcc")
		body, _ := cmd.Flags().GetString("body")
		bodyFile, _ := cmd.Flags().GetString("body-file")
		asHTML, _ := cmd.Flags().GetBool("html")
		attachPaths, _ := cmd.Flags().GetStringSlice("attach")
		from, _ := cmd.Flags().GetString("from")

		if body != "" && bodyFile != "" {
			return hermes_err.NewValidationError(
				"--body and --body-file are mutually exclusive",
				"Pass the text inline or in a file, not both")
		}
		if bodyFile != "" {
			data, err := os.ReadFile(bodyFile)
			if err != nil {
				return hermes_err.NewValidationError(
					fmt.Sprintf("body file %q is not readable: %v", bodyFile, err),
					"Check the path and permissions")
			}
			body = string(data)
		}
		subject, err := hermes.GetRequiredString(cmd, "subject")
		if err != nil {
			return hermes_err.NewValidationError(err.Error(),
				"Give the message a subject with --subject")
		}
		if from == "" {
			from = settings.Mail.From
		}

		msg := &mail.Message{
			From:    from,
			To:      to,
			Cc:      cc,
			Bcc:     bcc,
			Subject: subject,
		}
		if asHTML {
			msg.HTML = body
		} else {
			msg.Text = body
		}

		for _, p := range attachPaths {
			data, err := os.ReadFile(p)
			if err != nil {
				return hermes_err.NewValidationError(
					fmt.Sprintf("attachment %q is not readable: %v", p, err),
					"Check the path and permissions")
			}
			msg.Attachments = append(msg.Attachments, mail.Attachment{
				Filename:    clean.FileName(filepath.Base(p)),
				ContentType: mime.TypeByExtension(filepath.Ext(p)),
				Data:        data,
			})
		}

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			if err := msg.Validate(); err != nil {
				return err
			}
			raw, err := mail.BuildMIME(msg)
			if err != nil {
				return err
			}
			rcpts, err := msg.Recipients()
			if err != nil {
				return err
			}
			logger.Info("terminal prompt: Dry run, nothing sent",
				zap.String("server", settings.Mail.Addr()),
				zap.Strings("recipients", rcpts),
				zap.Int("message_bytes", len(raw)))
			return nil
		}

		sender := mail.NewSender(&settings.Mail)
		if err := sender.Send(rc, msg); err != nil {
			return err
		}

		logger.Info("terminal prompt: Message sent",
			zap.Strings("to", to),
			zap.String("subject", subject))
		return nil
	}),
}

func init() {
	SendCmd.AddCommand(mailCmd)

	mailCmd.Flags().StringSlice("to", nil, "Recipient addresses")
	mailCmd.Flags().StringSlice("cc", nil, "Carbon-copy addresses")
	mailCmd.Flags().StringSlice("bcc", nil, "Blind-carbon-copy addresses (never shown in headers)")
	mailCmd.Flags().String("subject", "", "Message subject (required)")
	mailCmd.Flags().String("body", "", "Message body text")
	mailCmd.Flags().String("body-file", "", "Read the message body from this file")
	mailCmd.Flags().Bool("html", false, "Treat the body as HTML")
	mailCmd.Flags().StringSlice("attach", nil, "Attach these files")
	mailCmd.Flags().String("from", "", "Sender address (defaults to the configured one)")
	mailCmd.Flags().Bool("dry-run", false, "Validate and render the message without dialing the server")
}
