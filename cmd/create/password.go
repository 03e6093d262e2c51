// cmd/create/password.go

package create

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/crypto"
	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
)

var passwordCmd = &cobra.Command{
	Use:     "password",
	Aliases: []string{"passwd"},
	Short:   "Generate cryptographically secure random passwords",
	Long: `Generate random passwords drawn from crypto/rand over letters, digits,
and symbols, minus the characters that are routinely misread when printed
or dictated (0, O, o, 1, l, I, i).

Lengths from 1 to 127 are accepted. --length 0 means "use the default of 8".

Examples:
  # One 20-character password
  hermes create password --length 20

  # Five passwords with a bcrypt hash next to each
  hermes create password --count 5 --hash`,
	RunE: hermes.Wrap(func(rc *hermes_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

		length, _ := cmd.Flags().GetInt("length")
		count, _ := cmd.Flags().GetInt("count")
		withHash, _ := cmd.Flags().GetBool("hash")

		// The flag default 0 means "not specified"; the generator itself
		// treats its length argument literally.
		if length == 0 {
			length = crypto.DefaultPasswordLength
		}
		if count < 1 {
			count = 1
		}

		logger.Info("Generating passwords",
			zap.Int("length", length),
			zap.Int("count", count),
			zap.Bool("hash", withHash))

		for i := 0; i < count; i++ {
			password, err := crypto.GeneratePassword(length)
			if err != nil {
				return err
			}
			line := password
			if withHash {
				hash, err := crypto.HashPassword(password)
				if err != nil {
					return err
				}
				line = password + "  " + hash
			}
			// Terminal prompt entries print to stdout and never reach
			// the log file.
			logger.Info("terminal prompt: " + line)
		}
		return nil
	}),
}

func init() {
	CreateCmd.AddCommand(passwordCmd)

	hermes.AddIntFlag(passwordCmd, "length", "l", 0, "Password length, 1 to 127 (0 uses the default of 8)")
	hermes.AddIntFlag(passwordCmd, "count", "n", 1, "How many passwords to generate")
	hermes.AddBoolFlag(passwordCmd, "hash", "", false, "Print a bcrypt hash next to each password")
}
