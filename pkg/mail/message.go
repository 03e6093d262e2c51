// pkg/mail/message.go

package mail

import (
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
)

// Attachment is one file carried by a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one outbound mail. Text is the plain body; HTML, when
// non-empty, rides along as a multipart/alternative rendition.
type Message struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Validate checks the message before any transport work happens. A message
// with no recipients at all is rejected here, never at the server.
func (m *Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return hermes_err.NewValidationError("message has no sender",
			"Set the From address, e.g. --from hermes@example.com")
	}
	if _, err := netmail.ParseAddress(m.From); err != nil {
		return hermes_err.NewValidationError(
			fmt.Sprintf("sender address %q is invalid", m.From),
			"Use a plain address or Name <address> form")
	}

	if len(m.To)+len(m.Cc)+len(m.Bcc) == 0 {
		return hermes_err.NewValidationError("message has no recipients",
			"Add at least one To, Cc, or Bcc address")
	}

	for _, group := range [][]string{m.To, m.Cc, m.Bcc} {
		for _, raw := range group {
			if _, err := netmail.ParseAddress(raw); err != nil {
				return hermes_err.NewValidationError(
					fmt.Sprintf("recipient address %q is invalid", raw),
					"Use a plain address or Name <address> form")
			}
		}
	}
	return nil
}

// SenderAddress returns the bare envelope sender.
func (m *Message) SenderAddress() (string, error) {
	addr, err := netmail.ParseAddress(m.From)
	if err != nil {
		return "", hermes_err.NewValidationError(
			fmt.Sprintf("sender address %q is invalid", m.From))
	}
	return addr.Address, nil
}

// Recipients returns every envelope recipient (To, Cc and Bcc) as bare
// addresses, in header order.
func (m *Message) Recipients() ([]string, error) {
	rcpts := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	for _, group := range [][]string{m.To, m.Cc, m.Bcc} {
		for _, raw := range group {
			addr, err := netmail.ParseAddress(raw)
			if err != nil {
				return nil, hermes_err.NewValidationError(
					fmt.Sprintf("recipient address %q is invalid", raw))
			}
			rcpts = append(rcpts, addr.Address)
		}
	}
	return rcpts, nil
}
