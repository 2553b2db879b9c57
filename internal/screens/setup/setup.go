// Package setup implements the certification build form: topic, optional
// details, audience level, duration, and tutor persona, collected step by
// step before the build starts.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/router"
	"github.com/certforge/certforge/internal/screen"
	buildscreen "github.com/certforge/certforge/internal/screens/build"
	"github.com/certforge/certforge/internal/ui/components"
	"github.com/certforge/certforge/internal/ui/layout"
	"github.com/certforge/certforge/internal/ui/theme"
)

type step int

const (
	stepTopic step = iota
	stepDetails
	stepLevel
	stepHours
	stepPersona
	stepConfirm
)

const defaultHours = 40

// SetupScreen collects build input one step at a time.
type SetupScreen struct {
	builder *builder.Builder
	step    step

	topicInput   components.TextInput
	detailsInput components.TextInput
	hoursInput   components.TextInput
	levelChoice  int
	persona      int

	input certification.BuildInput
	errs  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen.
func New(b *builder.Builder) *SetupScreen {
	return &SetupScreen{
		builder:      b,
		topicInput:   components.NewTextInput("e.g. Kubernetes Administration", false, 120),
		detailsInput: components.NewTextInput("optional focus areas, tools, constraints", false, 240),
		hoursInput:   components.NewTextInput("40", true, 4),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.topicInput.Init()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepLevel, stepPersona:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case stepConfirm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Build"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if isKey && kmsg.String() == "enter" {
		return s.advance()
	}

	switch s.step {
	case stepTopic:
		var cmd tea.Cmd
		s.topicInput, cmd = s.topicInput.Update(msg)
		return s, cmd
	case stepDetails:
		var cmd tea.Cmd
		s.detailsInput, cmd = s.detailsInput.Update(msg)
		return s, cmd
	case stepHours:
		var cmd tea.Cmd
		s.hoursInput, cmd = s.hoursInput.Update(msg)
		return s, cmd
	case stepLevel:
		if isKey {
			s.levelChoice = moveChoice(s.levelChoice, len(certification.Levels()), kmsg.String())
		}
	case stepPersona:
		if isKey {
			s.persona = moveChoice(s.persona, len(certification.Personas()), kmsg.String())
		}
	}

	return s, nil
}

func moveChoice(current, count int, key string) int {
	switch key {
	case "up", "k":
		if current > 0 {
			return current - 1
		}
	case "down", "j":
		if current < count-1 {
			return current + 1
		}
	}
	return current
}

// advance validates the current step and moves to the next one. The final
// step replaces this screen with the live build view.
func (s *SetupScreen) advance() (screen.Screen, tea.Cmd) {
	s.errs = ""

	switch s.step {
	case stepTopic:
		topic := strings.TrimSpace(s.topicInput.Value())
		if topic == "" {
			s.errs = "A topic is required."
			return s, nil
		}
		s.input.Topic = topic
		s.step = stepDetails
		return s, s.detailsInput.Init()

	case stepDetails:
		s.input.Details = strings.TrimSpace(s.detailsInput.Value())
		s.step = stepLevel

	case stepLevel:
		s.input.Level = certification.Levels()[s.levelChoice]
		s.step = stepHours
		return s, s.hoursInput.Init()

	case stepHours:
		hours := defaultHours
		if s.hoursInput.Value() != "" {
			n, err := s.hoursInput.NumericValue()
			if err != nil || n <= 0 {
				s.errs = "Duration must be a positive number of hours."
				return s, nil
			}
			hours = n
		}
		s.input.Hours = hours
		s.step = stepPersona

	case stepPersona:
		s.input.Persona = certification.Personas()[s.persona]
		s.step = stepConfirm

	case stepConfirm:
		b := s.builder
		input := s.input
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: buildscreen.New(b, input)}
		}
	}

	return s, nil
}

func (s *SetupScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Design Your Certification"))
	sections = append(sections, "")

	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	switch s.step {
	case stepTopic:
		sections = append(sections, label.Render("What should the certification cover?"))
		sections = append(sections, "")
		sections = append(sections, s.topicInput.View())

	case stepDetails:
		sections = append(sections, label.Render("Any additional details? (optional)"))
		sections = append(sections, theme.Hint.Render("Specific tools, target roles, or focus areas."))
		sections = append(sections, "")
		sections = append(sections, s.detailsInput.View())

	case stepLevel:
		sections = append(sections, label.Render("Who is the target audience?"))
		sections = append(sections, "")
		sections = append(sections, renderChoices(levelLabels(), s.levelChoice))

	case stepHours:
		sections = append(sections, label.Render("Total duration in hours?"))
		sections = append(sections, theme.Hint.Render("Leave empty for the default of 40 hours."))
		sections = append(sections, "")
		sections = append(sections, s.hoursInput.View())

	case stepPersona:
		sections = append(sections, label.Render("Pick your tutor's persona."))
		sections = append(sections, "")
		sections = append(sections, renderChoices(personaLabels(), s.persona))

	case stepConfirm:
		sections = append(sections, s.renderSummary())
		sections = append(sections, "")
		sections = append(sections, components.NewButton("ASSEMBLE THE CREW", true, nil).View())
	}

	if s.errs != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errs))
	}

	content := strings.Join(sections, "\n")
	box := theme.Card.Width(minInt(width-8, 72)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *SetupScreen) renderSummary() string {
	details := s.input.Details
	if details == "" {
		details = "(none)"
	}
	rows := []struct{ k, v string }{
		{"Topic", s.input.Topic},
		{"Details", details},
		{"Audience", string(s.input.Level)},
		{"Duration", components.FormatHours(float64(s.input.Hours))},
		{"Tutor", string(s.input.Persona)},
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(10)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(keyStyle.Render(r.k) + "  " + valStyle.Render(r.v) + "\n")
	}
	return b.String()
}

func renderChoices(labels []string, selected int) string {
	var b strings.Builder
	for i, l := range labels {
		if i == selected {
			b.WriteString(theme.Selected.Render("  ▸ "+l) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+l) + "\n")
		}
	}
	return b.String()
}

func levelLabels() []string {
	levels := certification.Levels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return out
}

func personaLabels() []string {
	personas := certification.Personas()
	out := make([]string, len(personas))
	for i, p := range personas {
		out[i] = string(p)
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *SetupScreen) Title() string {
	return "New Certification"
}
