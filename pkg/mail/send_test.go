package mail

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/verify"
)

func testRC() *hermes_io.RuntimeContext {
	return &hermes_io.RuntimeContext{Ctx: context.Background()}
}

// dialRecorder counts dial attempts and refuses them all.
type dialRecorder struct {
	calls int
}

func (d *dialRecorder) dial(string, time.Duration) (net.Conn, error) {
	d.calls++
	return nil, errors.New("dial refused by test")
}

func testSender(rec *dialRecorder) *Sender {
	s := NewSender(&Config{Host: "mail.example.com", Port: 587, Timeout: time.Second})
	s.dial = rec.dial
	return s
}

func TestSendNoRecipientsNeverDials(t *testing.T) {
	rec := &dialRecorder{}
	s := testSender(rec)

	err := s.Send(testRC(), &Message{
		From:    "hermes@example.com",
		Subject: "orphan",
		Text:    "this must not leave the process",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "message has no recipients")

	var classified *hermes_err.ClassifiedError
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, hermes_err.CategoryValidation, classified.Category)

	assert.Equal(t, 0, rec.calls, "validation failures must not reach the network")
}

func TestSendInvalidSenderNeverDials(t *testing.T) {
	rec := &dialRecorder{}
	s := testSender(rec)

	err := s.Send(testRC(), &Message{
		From: "broken address",
		To:   []string{"ops@example.com"},
	})

	require.Error(t, err)
	assert.Equal(t, 0, rec.calls)
}

func TestSendDialFailureIsExternal(t *testing.T) {
	rec := &dialRecorder{}
	s := testSender(rec)

	err := s.Send(testRC(), &Message{
		From:    "hermes@example.com",
		To:      []string{"ops@example.com"},
		Subject: "hi",
		Text:    "body",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to mail server mail.example.com:587")

	var classified *hermes_err.ClassifiedError
	require.True(t, errors.As(err, &classified))
	assert.Equal(t, hermes_err.CategoryExternal, classified.Category)

	assert.Equal(t, 1, rec.calls, "delivery is attempted exactly once, never retried")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "localhost:587", cfg.Addr())
	assert.True(t, cfg.StartTLS)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	require.NoError(t, verify.Struct(cfg))
}

func TestEffectiveTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, (&Config{}).EffectiveTimeout())
	assert.Equal(t, 2*time.Second, (&Config{Timeout: 2 * time.Second}).EffectiveTimeout())
}

func TestConfigValidation(t *testing.T) {
	t.Run("reports_missing_host_and_port", func(t *testing.T) {
		err := verify.Struct(&Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Host is required")
		assert.Contains(t, err.Error(), "Port is required")
	})

	t.Run("rejects_malformed_from_address", func(t *testing.T) {
		err := verify.Struct(&Config{Host: "mail.example.com", Port: 587, From: "not-an-address"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "From must be a valid email")
	})
}
