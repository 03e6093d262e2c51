// pkg/picker/model.go

package picker

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#00ffff")
	colorMuted   = lipgloss.Color("#666666")
	colorError   = lipgloss.Color("#ff0000")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	hintStyle  = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	errStyle   = lipgloss.NewStyle().Foreground(colorError)
)

type clearErrorMsg struct{}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

type model struct {
	picker   filepicker.Model
	selected string
	quitting bool
	errText  string
}

func newModel(startDir string, extensions []string) model {
	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.AllowedTypes = extensions
	fp.Styles.Cursor = fp.Styles.Cursor.Foreground(colorPrimary)
	fp.Styles.Selected = fp.Styles.Selected.Foreground(colorPrimary).Bold(true)
	fp.Styles.Directory = fp.Styles.Directory.Foreground(lipgloss.Color("#0099ff"))
	return model{picker: fp}
}

func (m model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case clearErrorMsg:
		m.errText = ""
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.errText = path + " does not match the allowed file types"
		return m, tea.Batch(cmd, clearErrorAfter(2*time.Second))
	}

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	switch {
	case m.errText != "":
		b.WriteString(errStyle.Render(m.errText))
	default:
		b.WriteString(titleStyle.Render("Pick a file"))
		b.WriteString(" ")
		b.WriteString(hintStyle.Render("(enter selects, q quits)"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	return b.String()
}
