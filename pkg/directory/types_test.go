package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCN(t *testing.T) {
	tests := []struct {
		name string
		dn   string
		want string
	}{
		{name: "uppercase_attribute", dn: "CN=Jane Doe,OU=Staff,DC=example,DC=com", want: "Jane Doe"},
		{name: "lowercase_attribute", dn: "cn=admin,dc=domain,dc=com", want: "admin"},
		{name: "spaces_around_components", dn: " CN=Jane Doe , OU=Staff , DC=example", want: "Jane Doe"},
		{name: "no_cn_component", dn: "OU=Staff,DC=example,DC=com", want: ""},
		{name: "empty_dn", dn: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCN(tt.dn))
		})
	}
}

func TestDomainFromDN(t *testing.T) {
	tests := []struct {
		name string
		dn   string
		want string
	}{
		{name: "typical_ad_dn", dn: "CN=Jane Doe,OU=Staff,DC=example,DC=com", want: "example.com"},
		{name: "lowercase_components", dn: "uid=jdoe,ou=people,dc=corp,dc=example,dc=com", want: "corp.example.com"},
		{name: "domain_root_only", dn: "DC=example,DC=com", want: "example.com"},
		{name: "no_dc_components", dn: "CN=Jane Doe,OU=Staff", want: ""},
		{name: "empty_dn", dn: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainFromDN(tt.dn))
		})
	}
}

func TestUserSummary(t *testing.T) {
	t.Run("all_fields", func(t *testing.T) {
		got := alice.Summary()
		assert.Equal(t, "Alice Smith (asmith), asmith@example.com, CN=Alice Smith,OU=Staff,DC=example,DC=com", got)
	})

	t.Run("no_mail", func(t *testing.T) {
		got := carol.Summary()
		assert.Equal(t, "Carol Smith (csmith), CN=Carol Smith,OU=Contractors,DC=example,DC=com", got)
	})

	t.Run("bare_user", func(t *testing.T) {
		got := User{CommonName: "Jane", Logon: "jane"}.Summary()
		assert.Equal(t, "Jane (jane)", got)
	})
}
