// pkg/directory/config.go

package directory

import (
	"fmt"
	"time"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
)

// DefaultTimeout bounds every dial and request against the directory server.
const DefaultTimeout = 10 * time.Second

// Config holds the directory connection settings. It is resolved once at
// startup and passed to lookups read-only; nothing mutates it afterwards.
type Config struct {
	Server   string        `yaml:"server" mapstructure:"server" validate:"required"`
	Port     int           `yaml:"port" mapstructure:"port" validate:"required,min=1,max=65535"`
	UseTLS   bool          `yaml:"use_tls" mapstructure:"use_tls"`
	BindDN   string        `yaml:"bind_dn" mapstructure:"bind_dn"`
	Password string        `yaml:"password" mapstructure:"password"`
	BaseDN   string        `yaml:"base_dn" mapstructure:"base_dn" validate:"required"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DefaultConfig returns settings for a plaintext localhost directory,
// suitable as the bottom layer under env and file overrides.
func DefaultConfig() *Config {
	return &Config{
		Server:  "localhost",
		Port:    shared.DefaultDirectoryPort,
		UseTLS:  false,
		BaseDN:  "dc=domain,dc=com",
		Timeout: DefaultTimeout,
	}
}

// URL renders the server address for DialURL, honoring the TLS setting.
func (c *Config) URL() string {
	scheme := "ldap"
	if c.UseTLS {
		scheme = "ldaps"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Server, c.Port)
}

// EffectiveTimeout guards against a zero value sneaking in from a partial
// config file.
func (c *Config) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
