package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directoryConfig struct {
	Server  string `validate:"required,hostname_rfc1123"`
	Port    int    `validate:"required,min=1,max=65535"`
	BaseDN  string `validate:"required"`
	BindDN  string `validate:"omitempty"`
	Contact string `validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("accepts_valid_config", func(t *testing.T) {
		t.Parallel()
		cfg := directoryConfig{
			Server: "dc1.example.com",
			Port:   636,
			BaseDN: "dc=example,dc=com",
		}
		assert.NoError(t, Struct(cfg))
	})

	t.Run("reports_missing_required_fields", func(t *testing.T) {
		t.Parallel()
		err := Struct(directoryConfig{Port: 389})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Server is required")
		assert.Contains(t, err.Error(), "BaseDN is required")
	})

	t.Run("reports_all_failures_not_just_first", func(t *testing.T) {
		t.Parallel()
		err := Struct(directoryConfig{
			Server:  "dc1.example.com",
			Port:    99999,
			BaseDN:  "dc=example,dc=com",
			Contact: "not-an-email",
		})
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "Port must be at most 65535")
		assert.Contains(t, msg, "Contact must be a valid email address")
		assert.Equal(t, 2, strings.Count(msg, "\n  - "), "expected one line per failed field")
	})

	t.Run("rejects_non_struct_values", func(t *testing.T) {
		t.Parallel()
		err := Struct("not a struct")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a validatable struct")
	})
}

func TestContextValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("nil_context_passes", func(t *testing.T) {
		t.Parallel()
		var v *Context
		assert.NoError(t, v.ValidateAll())
	})

	t.Run("empty_context_passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, NewContext().ValidateAll())
	})

	t.Run("registered_config_is_validated", func(t *testing.T) {
		t.Parallel()
		v := NewContext()
		v.Cfg = directoryConfig{}
		assert.Error(t, v.ValidateAll())
	})

	t.Run("registered_valid_config_passes", func(t *testing.T) {
		t.Parallel()
		v := NewContext()
		v.Cfg = directoryConfig{Server: "ldap.internal", Port: 389, BaseDN: "dc=example,dc=com"}
		assert.NoError(t, v.ValidateAll())
	})
}
