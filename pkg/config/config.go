// pkg/config/config.go
//
// Process-wide settings: the directory server and the mail relay. Resolved
// exactly once at startup and read-only afterwards; every consumer gets the
// struct handed to it instead of reaching for globals.
//
// Precedence, highest first: environment (HERMES_*), the optional YAML
// config file, .env in the working directory, built-in defaults.

package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/directory"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/mail"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/verify"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/xdg"
)

// Settings is the full process configuration.
type Settings struct {
	Directory directory.Config `yaml:"directory" mapstructure:"directory"`
	Mail      mail.Config      `yaml:"mail" mapstructure:"mail"`
}

var (
	loadOnce sync.Once
	loaded   *Settings
	loadErr  error
)

// Load resolves the settings on first call and returns the same value for
// the rest of the process lifetime.
func Load(rc *hermes_io.RuntimeContext) (*Settings, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load(rc)
	})
	return loaded, loadErr
}

// ConfigFilePath returns the YAML file consulted at startup. HERMES_CONFIG
// overrides the XDG default.
func ConfigFilePath() string {
	if path := os.Getenv("HERMES_CONFIG"); path != "" {
		return path
	}
	return xdg.XDGConfigPath(shared.HermesID, shared.DefaultConfigFilename)
}

func load(rc *hermes_io.RuntimeContext) (*Settings, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// A .env next to the invocation is a convenience for lab setups; a
	// missing file is the normal case.
	if err := godotenv.Load(shared.DefaultEnvFilename); err == nil {
		logger.Debug("Loaded .env from working directory")
	}

	v := viper.New()
	hermes_cli.SetViperEnvPrefix(v, "HERMES")
	bindEnvAliases(v)
	setDefaults(v)

	path := ConfigFilePath()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err == nil {
		logger.Info("Using configuration file", zap.String("path", v.ConfigFileUsed()))
	} else {
		logger.Debug("No configuration file loaded",
			zap.String("path", path),
			zap.Error(err))
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, hermes_err.NewValidationError(
			"configuration could not be parsed: "+err.Error(),
			"Check the types in "+path)
	}

	if err := verify.Struct(s); err != nil {
		return nil, hermes_err.NewValidationError(err.Error(),
			"Fix the reported settings and rerun")
	}

	logger.Debug("Configuration resolved",
		zap.String("directory_server", s.Directory.URL()),
		zap.String("mail_server", s.Mail.Addr()),
		zap.String("bind_dn", s.Directory.BindDN),
		zap.String("directory_password", crypto.Redact(s.Directory.Password)),
		zap.String("mail_password", crypto.Redact(s.Mail.Password)))
	return s, nil
}

// bindEnvAliases pins the documented variable names; AutomaticEnv covers
// the long forms (HERMES_DIRECTORY_BASE_DN and friends) on its own.
func bindEnvAliases(v *viper.Viper) {
	_ = v.BindEnv("directory.server", "HERMES_DIRECTORY_SERVER")
	_ = v.BindEnv("directory.port", "HERMES_DIRECTORY_PORT")
	_ = v.BindEnv("directory.base_dn", "HERMES_DIRECTORY_BASE_DN")
	_ = v.BindEnv("directory.bind_dn", "HERMES_DIRECTORY_BIND_DN")
	_ = v.BindEnv("directory.password", "HERMES_DIRECTORY_PASS")
	_ = v.BindEnv("mail.host", "HERMES_SMTP_HOST")
	_ = v.BindEnv("mail.port", "HERMES_SMTP_PORT")
	_ = v.BindEnv("mail.username", "HERMES_SMTP_USER")
	_ = v.BindEnv("mail.password", "HERMES_SMTP_PASS")
	_ = v.BindEnv("mail.from", "HERMES_MAIL_FROM")
}

func setDefaults(v *viper.Viper) {
	dir := directory.DefaultConfig()
	v.SetDefault("directory.server", dir.Server)
	v.SetDefault("directory.port", dir.Port)
	v.SetDefault("directory.use_tls", dir.UseTLS)
	v.SetDefault("directory.base_dn", dir.BaseDN)
	v.SetDefault("directory.timeout", dir.Timeout)

	m := mail.DefaultConfig()
	v.SetDefault("mail.host", m.Host)
	v.SetDefault("mail.port", m.Port)
	v.SetDefault("mail.starttls", m.StartTLS)
	v.SetDefault("mail.timeout", m.Timeout)
}

// Redacted renders the settings for display with secrets masked. Passwords
// keep their last two characters so an operator can tell which credential is
// configured; log output always gets the full mask.
func (s *Settings) Redacted() map[string]any {
	return map[string]any{
		"directory": map[string]any{
			"server":   s.Directory.Server,
			"port":     s.Directory.Port,
			"use_tls":  s.Directory.UseTLS,
			"bind_dn":  s.Directory.BindDN,
			"password": crypto.RedactPreview(s.Directory.Password, 2),
			"base_dn":  s.Directory.BaseDN,
			"timeout":  s.Directory.EffectiveTimeout().String(),
		},
		"mail": map[string]any{
			"host":     s.Mail.Host,
			"port":     s.Mail.Port,
			"starttls": s.Mail.StartTLS,
			"username": s.Mail.Username,
			"password": crypto.RedactPreview(s.Mail.Password, 2),
			"from":     s.Mail.From,
			"timeout":  s.Mail.EffectiveTimeout().String(),
		},
	}
}
