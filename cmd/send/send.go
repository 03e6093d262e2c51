// cmd/send/send.go

package send

import (
	"github.com/spf13/cobra"
)

// SendCmd groups outbound delivery commands.
var SendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send resources (e.g., mail)",
	Long:  `The send command groups outbound delivery, currently mail through the configured relay.`,
}
