// Package build renders the live agent crew while the certification
// pipeline runs.
package build

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/certforge/certforge/internal/agents"
	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/router"
	"github.com/certforge/certforge/internal/screen"
	"github.com/certforge/certforge/internal/screens/certview"
	"github.com/certforge/certforge/internal/ui/components"
	"github.com/certforge/certforge/internal/ui/layout"
	"github.com/certforge/certforge/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// BuildScreen runs the pipeline in the background and shows crew progress.
// Leaving the screen does not stop the pipeline; a finished build is still
// saved and resumable from the home menu.
type BuildScreen struct {
	builder *builder.Builder
	input   certification.BuildInput

	tick   int
	done   bool
	failed error
}

var _ screen.Screen = (*BuildScreen)(nil)
var _ screen.KeyHintProvider = (*BuildScreen)(nil)

// New creates a BuildScreen for the given input. The build starts on Init.
func New(b *builder.Builder, input certification.BuildInput) *BuildScreen {
	return &BuildScreen{builder: b, input: input}
}

func (s *BuildScreen) Init() tea.Cmd {
	b := s.builder
	input := s.input
	start := func() tea.Msg {
		result, err := b.Build(context.Background(), input)
		return buildDoneMsg{Result: result, Err: err}
	}

	return tea.Batch(start, s.spin())
}

func (s *BuildScreen) spin() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *BuildScreen) KeyHints() []layout.KeyHint {
	if s.failed != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Background"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *BuildScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		s.tick++
		if s.done {
			return s, nil
		}
		return s, s.spin()

	case buildDoneMsg:
		s.done = true
		if msg.Err != nil {
			s.failed = msg.Err
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: certview.New(s.builder, msg.Result)}
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && s.failed != nil {
			s.failed = nil
			s.done = false
			return s, s.Init()
		}
	}

	return s, nil
}

func (s *BuildScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Assembling Your Certification Crew"))
	sections = append(sections, "")

	snapshot := s.builder.Tracker().Snapshot()
	for _, a := range snapshot {
		sections = append(sections, s.renderAgent(a))
	}

	sections = append(sections, "")
	bar := components.NewProgressBar("Progress", s.builder.Tracker().Progress()/100, true, minInt(width-16, 64))
	sections = append(sections, bar.View())

	if s.failed != nil {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Build failed: "+s.failed.Error()))
		sections = append(sections, theme.Hint.Render("Press Enter to retry or Esc to go back."))
	}

	content := strings.Join(sections, "\n")
	box := theme.Card.Width(minInt(width-8, 76)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderAgent renders one crew row: status glyph, name, and either the live
// sub-status or the agent's role description.
func (s *BuildScreen) renderAgent(a agents.Agent) string {
	var glyph, line string

	switch a.Status {
	case agents.StatusCompleted:
		glyph = lipgloss.NewStyle().Foreground(theme.Success).Render("✔")
		line = theme.Unselected.Render(a.Name)
	case agents.StatusInProgress:
		frame := spinnerFrames[s.tick%len(spinnerFrames)]
		glyph = lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
		line = theme.Selected.Render(a.Name)
	case agents.StatusError:
		glyph = lipgloss.NewStyle().Foreground(theme.Error).Render("✘")
		line = lipgloss.NewStyle().Foreground(theme.Error).Render(a.Name)
	default:
		glyph = lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
		line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Name)
	}

	detail := a.Description
	if a.Status == agents.StatusInProgress && a.SubStatus != "" {
		detail = a.SubStatus
	}

	return glyph + " " + line + "  " + theme.Hint.Render(detail)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *BuildScreen) Title() string {
	return "Building"
}
