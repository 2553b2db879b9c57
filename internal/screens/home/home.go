package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/router"
	"github.com/certforge/certforge/internal/screen"
	"github.com/certforge/certforge/internal/screens/certview"
	"github.com/certforge/certforge/internal/screens/placeholder"
	"github.com/certforge/certforge/internal/screens/setup"
	"github.com/certforge/certforge/internal/ui/components"
	"github.com/certforge/certforge/internal/ui/theme"
)

const banner = ` ██████╗███████╗██████╗ ████████╗███████╗ ██████╗ ██████╗  ██████╗ ███████╗
██╔════╝██╔════╝██╔══██╗╚══██╔══╝██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
██║     █████╗  ██████╔╝   ██║   █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
██║     ██╔══╝  ██╔══██╗   ██║   ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
╚██████╗███████╗██║  ██║   ██║   ██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
 ╚═════╝╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

// resumeDoneMsg is sent when the saved-session load finishes.
type resumeDoneMsg struct {
	Result *builder.Result
	Err    error
}

// resetDoneMsg is sent when the saved session has been cleared.
type resetDoneMsg struct {
	Err error
}

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	builder *builder.Builder
	menu    components.Menu
	status  string
	loading bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. A nil builder means no model API key is
// configured; every action then leads to a setup hint.
func New(b *builder.Builder) *HomeScreen {
	h := &HomeScreen{builder: b}

	items := []components.MenuItem{
		{Label: "NEW CERTIFICATION", Action: func() tea.Cmd {
			if b == nil {
				return pushUnconfigured("New Certification")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(b)}
			}
		}},
		{Label: "RESUME SESSION", Action: func() tea.Cmd {
			if b == nil {
				return pushUnconfigured("Resume Session")
			}
			return h.resume()
		}},
		{Label: "RESET SAVED SESSION", Action: func() tea.Cmd {
			if b == nil {
				return pushUnconfigured("Reset")
			}
			return h.reset()
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func pushUnconfigured(title string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: placeholder.NewUnconfigured(title)}
	}
}

// resume loads the saved session off the UI loop.
func (h *HomeScreen) resume() tea.Cmd {
	h.loading = true
	h.status = "Loading saved session..."
	b := h.builder
	return func() tea.Msg {
		result, err := b.Resume(context.Background())
		return resumeDoneMsg{Result: result, Err: err}
	}
}

// reset clears the saved session.
func (h *HomeScreen) reset() tea.Cmd {
	b := h.builder
	return func() tea.Msg {
		return resetDoneMsg{Err: b.Reset(context.Background())}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumeDoneMsg:
		h.loading = false
		switch {
		case msg.Err != nil:
			h.status = "Error: " + msg.Err.Error()
		case msg.Result != nil:
			h.status = ""
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: certview.New(h.builder, msg.Result)}
			}
		default:
			h.status = "No saved session found."
		}
		return h, nil

	case resetDoneMsg:
		h.loading = false
		if msg.Err != nil {
			h.status = "Error: " + msg.Err.Error()
		} else {
			h.status = "Saved session cleared."
		}
		return h, nil
	}

	if h.loading {
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(banner))

	sections = append(sections, theme.Subtitle.Render(
		"AI-powered certification builder with a personal tutor"))

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	if h.status != "" {
		sections = append(sections, theme.Hint.Render(h.status))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
