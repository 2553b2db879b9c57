package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/certforge/certforge/internal/screen"
	"github.com/certforge/certforge/internal/ui/theme"
)

// PlaceholderScreen is a generic informational screen with no interaction.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and message.
func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

// NewUnconfigured creates the screen shown when no model API key is set.
func NewUnconfigured(title string) *PlaceholderScreen {
	return New(title,
		"╌╌ No API Key ╌╌\n\n"+
			"Set GEMINI_API_KEY to enable generation,\n"+
			"then restart certforge.\n\n"+
			"Run `certforge llm` to inspect the current configuration.")
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(p.message)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
