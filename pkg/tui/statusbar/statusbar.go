package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Model tracks footer/help/status rendering state.
type Model struct {
	helpLine   string
	statusLine string
	busy       bool
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	busyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// New returns an empty footer model.
func New() Model {
	return Model{}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// SetBusy toggles the in-flight request indicator.
func (m *Model) SetBusy(busy bool) {
	m.busy = busy
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	return 1
}

// View renders the footer string.
func (m Model) View() string {
	var segments []string
	if m.helpLine != "" {
		segments = append(segments, helpStyle.Render(m.helpLine))
	}
	if m.statusLine != "" {
		segments = append(segments, statusStyle.Render(m.statusLine))
	}
	if m.busy {
		segments = append(segments, busyStyle.Render("working..."))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
