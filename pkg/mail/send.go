// pkg/mail/send.go

package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
)

// DefaultTimeout bounds the dial and each SMTP command.
const DefaultTimeout = 15 * time.Second

// Config holds the mail submission settings. Like the directory config it
// is resolved once at startup and read-only afterwards.
type Config struct {
	Host     string        `yaml:"host" mapstructure:"host" validate:"required"`
	Port     int           `yaml:"port" mapstructure:"port" validate:"required,min=1,max=65535"`
	Username string        `yaml:"username" mapstructure:"username"`
	Password string        `yaml:"password" mapstructure:"password"`
	From     string        `yaml:"from" mapstructure:"from" validate:"omitempty,email"`
	StartTLS bool          `yaml:"starttls" mapstructure:"starttls"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DefaultConfig returns submission settings for a local relay.
func DefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     shared.DefaultSMTPPort,
		StartTLS: true,
		Timeout:  DefaultTimeout,
	}
}

// Addr renders the host:port dial target.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EffectiveTimeout guards against a zero value from a partial config file.
func (c *Config) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Sender submits messages over SMTP. The dial is injectable so tests can
// prove that validation happens before any network activity.
type Sender struct {
	Cfg  *Config
	dial func(addr string, timeout time.Duration) (net.Conn, error)
}

func NewSender(cfg *Config) *Sender {
	return &Sender{Cfg: cfg, dial: dialTCP}
}

func dialTCP(addr string, timeout time.Duration) (net.Conn, error) {
	return (&net.Dialer{Timeout: timeout}).Dial("tcp", addr)
}

// Send validates, renders, and submits one message. A message that fails
// validation never reaches the network, and a delivery failure is reported
// once, never retried.
func (s *Sender) Send(rc *hermes_io.RuntimeContext, msg *Message) error {
	logger := otelzap.Ctx(rc.Ctx)

	// ASSESS
	if err := msg.Validate(); err != nil {
		return err
	}
	from, err := msg.SenderAddress()
	if err != nil {
		return err
	}
	rcpts, err := msg.Recipients()
	if err != nil {
		return err
	}
	raw, err := BuildMIME(msg)
	if err != nil {
		return hermes_err.NewInternalError("failed to render message", err)
	}

	// INTERVENE
	timeout := s.Cfg.EffectiveTimeout()
	logger.Info("Submitting message",
		zap.String("server", s.Cfg.Addr()),
		zap.Int("recipients", len(rcpts)),
		zap.Int("bytes", len(raw)))

	conn, err := s.dial(s.Cfg.Addr(), timeout)
	if err != nil {
		return hermes_err.NewExternalError(
			fmt.Sprintf("failed to connect to mail server %s", s.Cfg.Addr()), err,
			"Check the SMTP host and port",
			"Check that the server is reachable from this machine")
	}

	var client *smtp.Client
	if s.Cfg.StartTLS {
		c, err := smtp.NewClientStartTLS(conn, &tls.Config{ServerName: s.Cfg.Host})
		if err != nil {
			return hermes_err.NewExternalError("mail server rejected STARTTLS", err,
				"Set starttls: false only for servers that cannot offer TLS")
		}
		client = c
	} else {
		client = smtp.NewClient(conn)
	}
	defer func() { _ = client.Close() }()
	client.CommandTimeout = timeout
	if s.Cfg.Username != "" {
		if err := client.Auth(sasl.NewPlainClient("", s.Cfg.Username, s.Cfg.Password)); err != nil {
			return hermes_err.NewExternalError("mail server rejected authentication", err,
				"Check the SMTP username and password")
		}
	}

	if err := client.SendMail(from, rcpts, bytes.NewReader(raw)); err != nil {
		return hermes_err.NewExternalError("message delivery failed", err,
			"Fix the reported cause and send again; nothing was retried")
	}

	// EVALUATE
	if err := client.Quit(); err != nil {
		logger.Warn("SMTP quit failed", zap.Error(err))
	}
	logger.Info("Message accepted by mail server",
		zap.String("from", from),
		zap.Strings("to", rcpts))
	return nil
}
