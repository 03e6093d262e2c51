// pkg/interaction/styles.go

package interaction

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_io"
	"github.com/charmbracelet/lipgloss"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/term"
)

// Common color palette for consistent styling
var (
	ColorPrimary = lipgloss.Color("#00ffff") // Cyan
	ColorSuccess = lipgloss.Color("#00ff00") // Green
	ColorWarning = lipgloss.Color("#ffaa00") // Orange
	ColorError   = lipgloss.Color("#ff0000") // Red
	ColorMuted   = lipgloss.Color("#666666") // Gray
)

// MenuStyles styles the candidate menus rendered during disambiguation.
type MenuStyles struct {
	Title  lipgloss.Style
	Number lipgloss.Style
	Item   lipgloss.Style
	Hint   lipgloss.Style
}

// NewMenuStyles creates the default menu styling.
func NewMenuStyles() MenuStyles {
	return MenuStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Number: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Item:   lipgloss.NewStyle(),
		Hint: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}

// printChoices writes a numbered candidate menu to stderr, keeping stdout
// for results. Styling only applies on a terminal; piped stderr gets plain
// text.
func printChoices(rc *hermes_io.RuntimeContext, title string, labels []string) {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Debug("Rendering candidate menu")

	var b strings.Builder
	if isTerminal(os.Stderr) {
		styles := NewMenuStyles()
		b.WriteString(styles.Title.Render(title) + "\n")
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styles.Number.Render(fmt.Sprintf("%d)", i+1)),
				styles.Item.Render(label)))
		}
		b.WriteString(styles.Hint.Render("(q to quit)") + "\n")
	} else {
		b.WriteString(title + "\n")
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, label))
		}
		b.WriteString("(q to quit)\n")
	}

	_, _ = fmt.Fprint(os.Stderr, b.String())
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
