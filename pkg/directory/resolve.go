// pkg/directory/resolve.go
//
// Interactive resolution of a logon name to exactly one directory account.
//
// Each search round lands in one of three outcomes:
//
//	NotFound    -> classified error, caller decides what happens next
//	Unambiguous -> confirmation gate: Continue | Retry (new logon) | Quit
//	Ambiguous   -> pick one ordinal, re-search under a new base DN, or quit
//
// Retry and re-scoping feed the next round of the same loop. Resolved
// accounts commonly feed password resets and mail sends, so even a single
// match passes the confirmation gate before it is returned.

package directory

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_err"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/interaction"
)

// outcome classifies one search round.
type outcome int

const (
	outcomeNotFound outcome = iota
	outcomeUnambiguous
	outcomeAmbiguous
)

func classify(users []User) outcome {
	switch len(users) {
	case 0:
		return outcomeNotFound
	case 1:
		return outcomeUnambiguous
	default:
		return outcomeAmbiguous
	}
}

var ambiguousOptions = []interaction.FallbackOption{
	{Label: "Pick one of the matches", Code: "pick"},
	{Label: "Search again under a different base DN", Code: "rescope"},
	{Label: "Quit", Code: "quit"},
}

// ResolveUser narrows a logon name to exactly one confirmed account,
// prompting the operator whenever the lookup alone cannot decide.
func ResolveUser(rc *hermes_io.RuntimeContext, s Searcher, logon, base string) (User, error) {
	logger := otelzap.Ctx(rc.Ctx)

	for {
		users, err := s.SearchUsers(rc, logon, base)
		if err != nil {
			return User{}, err
		}

		switch classify(users) {
		case outcomeNotFound:
			logger.Info("No directory match",
				zap.String("logon", logon),
				zap.String("base", base))
			return User{}, hermes_err.NewNotFoundError(
				fmt.Sprintf("directory user %q", logon),
				"Check the logon name for typos",
				"Search again with a different base DN")

		case outcomeUnambiguous:
			candidate := users[0]
			decision, err := interaction.ConfirmOrRetry(rc, "Found "+candidate.Summary())
			if err != nil {
				return User{}, err
			}
			switch decision {
			case interaction.DecisionContinue:
				logger.Info("Directory user confirmed", zap.String("dn", candidate.DN))
				return candidate, nil
			case interaction.DecisionRetry:
				logon, err = interaction.PromptRequired(rc, "Logon name to search for")
				if err != nil {
					return User{}, err
				}
			case interaction.DecisionQuit:
				return User{}, hermes_err.NewUserCancelledError("directory lookup")
			}

		case outcomeAmbiguous:
			logger.Info("Ambiguous directory match",
				zap.String("logon", logon),
				zap.Int("matches", len(users)))
			choice, err := interaction.FallbackPrompter(rc,
				fmt.Sprintf("%d accounts match %q", len(users), logon), ambiguousOptions)
			if err != nil {
				return User{}, err
			}
			switch choice {
			case "pick":
				picked, err := interaction.ChooseOne(rc, users, interaction.Presenter[User]{
					Prompt: "Select the account",
					Render: User.Summary,
				})
				if err != nil {
					return User{}, err
				}
				logger.Info("Directory user picked from candidates", zap.String("dn", picked.DN))
				return picked, nil
			case "rescope":
				base, err = interaction.PromptValidated(rc, "Search base DN (subtree scope)", interaction.ValidateDN)
				if err != nil {
					return User{}, err
				}
			case "quit":
				return User{}, hermes_err.NewUserCancelledError("directory lookup")
			}
		}
	}
}

// ResolveUserNonInteractive resolves without prompting, for scripted runs.
// Ambiguity is an error instead of a menu, and no confirmation gate runs.
func ResolveUserNonInteractive(rc *hermes_io.RuntimeContext, s Searcher, logon, base string) (User, error) {
	users, err := s.SearchUsers(rc, logon, base)
	if err != nil {
		return User{}, err
	}

	switch classify(users) {
	case outcomeNotFound:
		return User{}, hermes_err.NewNotFoundError(
			fmt.Sprintf("directory user %q", logon),
			"Check the logon name for typos")
	case outcomeAmbiguous:
		return User{}, hermes_err.NewAmbiguousError(
			fmt.Sprintf("directory user %q", logon), len(users),
			"Narrow the search with an explicit base DN",
			"Run interactively to pick one of the matches")
	default:
		return users[0], nil
	}
}
