// pkg/directory/search.go

package directory

import (
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
)

// Attributes fetched for every user lookup. The DN itself rides along on
// the entry and is not requested as an attribute.
var userAttributes = []string{"sAMAccountName", "uid", "cn", "mail"}

// Searcher is the lookup half of user resolution. Live lookups go through
// Service; tests substitute a fake.
type Searcher interface {
	SearchUsers(rc *hermes_io.RuntimeContext, logon, base string) ([]User, error)
}

// Service performs lookups against the configured directory server. One
// connection is dialed per search and closed when the search returns.
type Service struct {
	Cfg *Config
}

func NewService(cfg *Config) *Service {
	return &Service{Cfg: cfg}
}

// SearchUsers finds accounts whose logon name matches exactly, on
// sAMAccountName with a uid fallback so both AD and generic LDAP servers
// answer. A non-empty base overrides the configured BaseDN for this search
// only. Returns an empty, non-nil slice when nothing matched.
func (s *Service) SearchUsers(rc *hermes_io.RuntimeContext, logon, base string) ([]User, error) {
	logger := otelzap.Ctx(rc.Ctx)

	if logon == "" {
		return nil, hermes_err.NewValidationError("logon name is required",
			"Pass the account's logon name, e.g. jdoe")
	}
	if base == "" {
		base = s.Cfg.BaseDN
	}

	conn, err := Connect(rc, s.Cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("Failed to close directory connection", zap.Error(closeErr))
		}
	}()

	filter := fmt.Sprintf("(|(sAMAccountName=%s)(uid=%s))",
		ldap.EscapeFilter(logon), ldap.EscapeFilter(logon))

	req := ldap.NewSearchRequest(
		base,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		filter,
		userAttributes,
		nil,
	)

	logger.Debug("Searching directory",
		zap.String("base", base),
		zap.String("filter", filter))

	res, err := conn.Search(req)
	if err != nil {
		return nil, hermes_err.NewExternalError(
			fmt.Sprintf("directory search under %q failed", base), err,
			"Check that the search base DN exists",
			"Check that the bind account may read it")
	}

	users := make([]User, 0, len(res.Entries))
	for _, entry := range res.Entries {
		users = append(users, userFromEntry(entry))
	}

	logger.Info("Directory search complete",
		zap.String("logon", logon),
		zap.String("base", base),
		zap.Int("matches", len(users)))
	return users, nil
}

func userFromEntry(entry *ldap.Entry) User {
	logon := entry.GetAttributeValue("sAMAccountName")
	if logon == "" {
		logon = entry.GetAttributeValue("uid")
	}
	cn := entry.GetAttributeValue("cn")
	if cn == "" {
		cn = ExtractCN(entry.DN)
	}
	return User{
		DN:         entry.DN,
		Logon:      logon,
		CommonName: cn,
		Mail:       entry.GetAttributeValue("mail"),
		Domain:     DomainFromDN(entry.DN),
	}
}
