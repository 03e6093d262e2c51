// pkg/directory/connect.go

package directory

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/go-ldap/ldap/v3"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
)

// Connect dials the configured directory server and binds. The dial and
// every request on the returned connection run under the configured
// timeout. Callers own the connection and must Close it.
func Connect(rc *hermes_io.RuntimeContext, cfg *Config) (*ldap.Conn, error) {
	logger := otelzap.Ctx(rc.Ctx)

	timeout := cfg.EffectiveTimeout()
	opts := []ldap.DialOpt{
		ldap.DialWithDialer(&net.Dialer{Timeout: timeout}),
	}
	if cfg.UseTLS {
		opts = append(opts, ldap.DialWithTLSConfig(&tls.Config{ServerName: cfg.Server}))
	}

	logger.Debug("Connecting to directory server",
		zap.String("url", cfg.URL()),
		zap.Duration("timeout", timeout))

	conn, err := ldap.DialURL(cfg.URL(), opts...)
	if err != nil {
		return nil, hermes_err.NewExternalError(
			fmt.Sprintf("failed to connect to directory server %s", cfg.URL()), err,
			"Check that the server address and port are correct",
			"Check that the server is reachable from this machine")
	}
	conn.SetTimeout(timeout)

	if err := bind(conn, cfg); err != nil {
		_ = conn.Close()
		return nil, hermes_err.NewExternalError(
			fmt.Sprintf("directory bind as %q failed", cfg.BindDN), err,
			"Check the bind DN and password")
	}

	logger.Debug("Directory connection established", zap.String("bind_dn", cfg.BindDN))
	return conn, nil
}

func bind(conn *ldap.Conn, cfg *Config) error {
	if cfg.BindDN == "" {
		return conn.UnauthenticatedBind("")
	}
	if cfg.Password == "" {
		return conn.UnauthenticatedBind(cfg.BindDN)
	}
	return conn.Bind(cfg.BindDN, cfg.Password)
}
