/* pkg/directory/types.go */

package directory

import (
	"fmt"
	"strings"
)

// User is one directory account as returned by a lookup.
type User struct {
	DN         string
	Logon      string
	CommonName string
	Mail       string
	Domain     string
}

// Summary renders the fields an operator needs to recognise an account.
func (u User) Summary() string {
	parts := []string{fmt.Sprintf("%s (%s)", u.CommonName, u.Logon)}
	if u.Mail != "" {
		parts = append(parts, u.Mail)
	}
	if u.DN != "" {
		parts = append(parts, u.DN)
	}
	return strings.Join(parts, ", ")
}

// ExtractCN returns the CN portion from a DN string. Lookups use it as a
// fallback when an entry carries no cn attribute.
func ExtractCN(dn string) string {
	for _, part := range strings.Split(dn, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(strings.ToLower(part), "cn=") {
			return part[len("cn="):]
		}
	}
	return ""
}

// DomainFromDN joins the DC components of a DN into a dotted domain name.
// "CN=Jane,OU=Staff,DC=example,DC=com" becomes "example.com". Returns ""
// when the DN carries no DC components.
func DomainFromDN(dn string) string {
	var labels []string
	for _, part := range strings.Split(dn, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(strings.ToLower(part), "dc=") {
			labels = append(labels, part[len("dc="):])
		}
	}
	return strings.Join(labels, ".")
}
