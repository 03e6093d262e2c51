/* pkg/interaction/types.go */

package interaction

// FallbackOption is one strategy offered to the operator when an operation
// cannot proceed on its own (e.g. an ambiguous lookup).
type FallbackOption struct {
	Label string // shown to user
	Code  string // passed back to logic
}

const (
	DefaultYesPrompt  = "Y/n"
	DefaultNoPrompt   = "y/N"
	EnterChoicePrompt = "Enter choice number (or q to quit)"
)

const (
	YesShort = "y"
	YesLong  = "yes"
	NoShort  = "n"
	NoLong   = "no"
	Quit     = "q"
)
