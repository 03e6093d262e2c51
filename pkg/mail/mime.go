// pkg/mail/mime.go

package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	netmail "net/mail"
	"net/textproto"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// BuildMIME renders the wire form of a message: canonical headers, a
// multipart/alternative body when both renditions exist, and a
// multipart/mixed wrapper when attachments are present. Bcc addresses go
// on the envelope only, never into headers.
func BuildMIME(m *Message) ([]byte, error) {
	from, err := netmail.ParseAddress(m.From)
	if err != nil {
		return nil, cerr.Wrapf(err, "sender address %q", m.From)
	}

	var body bytes.Buffer
	contentType, err := writeBody(&body, m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from.String())
	if len(m.To) > 0 {
		fmt.Fprintf(&buf, "To: %s\r\n", headerAddresses(m.To))
	}
	if len(m.Cc) > 0 {
		fmt.Fprintf(&buf, "Cc: %s\r\n", headerAddresses(m.Cc))
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", uuid.New().String(), senderDomain(from.Address))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
	buf.WriteString("\r\n")
	buf.Write(body.Bytes())
	return buf.Bytes(), nil
}

// headerAddresses renders a recipient list for a To or Cc header,
// normalizing each address through net/mail.
func headerAddresses(raw []string) string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if addr, err := netmail.ParseAddress(r); err == nil {
			out = append(out, addr.String())
		} else {
			out = append(out, r)
		}
	}
	return strings.Join(out, ", ")
}

func senderDomain(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i+1 < len(addr) {
		return addr[i+1:]
	}
	return "localhost"
}

func writeBody(body *bytes.Buffer, m *Message) (string, error) {
	if len(m.Attachments) == 0 {
		if m.HTML == "" {
			body.WriteString(m.Text)
			return "text/plain; charset=utf-8", nil
		}
		w := multipart.NewWriter(body)
		if err := writeAlternative(w, m.Text, m.HTML); err != nil {
			return "", err
		}
		if err := w.Close(); err != nil {
			return "", err
		}
		return fmt.Sprintf("multipart/alternative; boundary=%s", w.Boundary()), nil
	}

	w := multipart.NewWriter(body)
	if err := writeBodyPart(w, m); err != nil {
		return "", err
	}
	for _, att := range m.Attachments {
		if err := writeAttachment(w, att); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("multipart/mixed; boundary=%s", w.Boundary()), nil
}

// writeBodyPart nests the body renditions inside a mixed wrapper.
func writeBodyPart(w *multipart.Writer, m *Message) error {
	if m.HTML == "" {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type": {"text/plain; charset=utf-8"},
		})
		if err != nil {
			return err
		}
		_, err = part.Write([]byte(m.Text))
		return err
	}

	var alt bytes.Buffer
	aw := multipart.NewWriter(&alt)
	if err := writeAlternative(aw, m.Text, m.HTML); err != nil {
		return err
	}
	if err := aw.Close(); err != nil {
		return err
	}
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {fmt.Sprintf("multipart/alternative; boundary=%s", aw.Boundary())},
	})
	if err != nil {
		return err
	}
	_, err = part.Write(alt.Bytes())
	return err
}

// Renditions go least-preferred first per RFC 2046.
func writeAlternative(w *multipart.Writer, text, html string) error {
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(text)); err != nil {
		return err
	}

	part, err = w.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=utf-8"},
	})
	if err != nil {
		return err
	}
	_, err = part.Write([]byte(html))
	return err
}

func writeAttachment(w *multipart.Writer, att Attachment) error {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
	h.Set("Content-Transfer-Encoding", "base64")

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(wrapBase64(att.Data))
	return err
}

// wrapBase64 encodes data and folds it at 76 columns per RFC 2045.
func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)
	var out bytes.Buffer
	for len(encoded) > 76 {
		out.WriteString(encoded[:76])
		out.WriteString("\r\n")
		encoded = encoded[76:]
	}
	out.WriteString(encoded)
	return out.Bytes()
}
