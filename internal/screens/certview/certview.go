// Package certview renders a finished certification: overview, modules,
// sample quiz, capstone project, and the introductory video concept.
package certview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/router"
	"github.com/certforge/certforge/internal/screen"
	"github.com/certforge/certforge/internal/screens/chat"
	"github.com/certforge/certforge/internal/tutor"
	"github.com/certforge/certforge/internal/ui/components"
	"github.com/certforge/certforge/internal/ui/layout"
	"github.com/certforge/certforge/internal/ui/theme"
)

type section int

const (
	sectionOverview section = iota
	sectionModules
	sectionQuiz
	sectionCapstone
	sectionVideo
)

var sectionNames = []string{"Overview", "Modules", "Quiz", "Capstone", "Video"}

// CertViewScreen displays the built certification and routes into the
// tutor chat and on-demand explanations.
type CertViewScreen struct {
	builder *builder.Builder
	result  *builder.Result

	section  section
	selected int // module index within the Modules section
	expanded bool
	quizIdx  int
	quiz     []components.MultiChoice
	scroll   int
}

var _ screen.Screen = (*CertViewScreen)(nil)
var _ screen.KeyHintProvider = (*CertViewScreen)(nil)

// New creates a CertViewScreen over a finished build result.
func New(b *builder.Builder, result *builder.Result) *CertViewScreen {
	cert := result.Certification
	quiz := make([]components.MultiChoice, len(cert.SampleQuiz))
	for i, q := range cert.SampleQuiz {
		correct := 0
		for j, opt := range q.Options {
			if opt == q.CorrectAnswer {
				correct = j
			}
		}
		quiz[i] = components.NewMultiChoice(q.Question, q.Options, correct)
	}

	return &CertViewScreen{
		builder: b,
		result:  result,
		quiz:    quiz,
	}
}

func (s *CertViewScreen) Init() tea.Cmd {
	return nil
}

func (s *CertViewScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Section"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "t", Description: "Tutor chat"},
	}
	switch s.section {
	case sectionModules:
		hints = append(hints,
			layout.KeyHint{Key: "Enter", Description: "Expand"},
			layout.KeyHint{Key: "e", Description: "Explain"})
	case sectionVideo:
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	case sectionQuiz:
		hints = append(hints,
			layout.KeyHint{Key: "n/p", Description: "Question"},
			layout.KeyHint{Key: "Enter", Description: "Answer"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *CertViewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.section > sectionOverview {
			s.section--
			s.scroll = 0
		}
		return s, nil
	case "right", "l":
		if s.section < sectionVideo {
			s.section++
			s.scroll = 0
		}
		return s, nil
	case "t":
		return s, s.openChat(nil)
	}

	switch s.section {
	case sectionModules:
		return s.updateModules(kmsg)
	case sectionQuiz:
		return s.updateQuiz(kmsg, msg)
	default:
		switch kmsg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "e":
			if s.section == sectionVideo {
				scenes := s.result.Certification.IntroductoryVideoScenes
				if len(scenes) > 0 {
					return s, s.openChat(tutor.VideoConceptRequest{Scenes: scenes})
				}
			}
		}
	}

	return s, nil
}

func (s *CertViewScreen) updateModules(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	cert := s.result.Certification
	switch kmsg.String() {
	case "up", "k":
		if s.expanded {
			if s.scroll > 0 {
				s.scroll--
			}
		} else if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.expanded {
			s.scroll++
		} else if s.selected < len(cert.Modules)-1 {
			s.selected++
		}
	case "enter":
		s.expanded = !s.expanded
		s.scroll = 0
	case "e":
		if s.selected < len(cert.Modules) {
			req := tutor.ModuleRequest{Module: cert.Modules[s.selected]}
			return s, s.openChat(req)
		}
	}
	return s, nil
}

func (s *CertViewScreen) updateQuiz(kmsg tea.KeyMsg, msg tea.Msg) (screen.Screen, tea.Cmd) {
	if len(s.quiz) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "n":
		if s.quizIdx < len(s.quiz)-1 {
			s.quizIdx++
		}
		return s, nil
	case "p":
		if s.quizIdx > 0 {
			s.quizIdx--
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.quiz[s.quizIdx], cmd = s.quiz[s.quizIdx].Update(msg)
	return s, cmd
}

// openChat pushes the tutor chat, optionally seeding it with an explanation
// request. Video explanations use the storyboard as source content.
func (s *CertViewScreen) openChat(req tutor.Request) tea.Cmd {
	chatScreen := chat.New(s.builder.Tutor(), s.result, req)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: chatScreen}
	}
}

func (s *CertViewScreen) View(width, height int) string {
	cw := minInt(width-6, 96)

	tabs := s.renderTabs()
	var body string

	switch s.section {
	case sectionOverview:
		body = s.renderOverview(cw)
	case sectionModules:
		body = s.renderModules(cw)
	case sectionQuiz:
		body = s.renderQuiz(cw)
	case sectionCapstone:
		body = s.renderCapstone(cw)
	case sectionVideo:
		body = s.renderVideo(cw)
	}

	bodyHeight := height - lipgloss.Height(tabs) - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = clipLines(body, s.scroll, bodyHeight)

	content := tabs + "\n\n" + body
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 3).
		Render(content)
}

func (s *CertViewScreen) renderTabs() string {
	parts := make([]string, len(sectionNames))
	for i, name := range sectionNames {
		if section(i) == s.section {
			parts[i] = theme.Selected.Render("[ " + name + " ]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + name + "  ")
		}
	}
	return strings.Join(parts, " ")
}

func (s *CertViewScreen) renderOverview(width int) string {
	cert := s.result.Certification
	wrap := lipgloss.NewStyle().Width(width).Foreground(theme.Text)

	var sections []string
	sections = append(sections, theme.Title.Align(lipgloss.Left).Render(cert.Title))
	sections = append(sections, theme.Hint.Render(fmt.Sprintf(
		"%s · %s", cert.TargetAudience, components.FormatHours(cert.TotalDurationHours))))
	if len(s.result.Badge) > 0 {
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("◆ Badge generated (%d bytes, PNG)", len(s.result.Badge))))
	}
	sections = append(sections, "")
	sections = append(sections, wrap.Render(cert.Overview))

	if len(cert.Prerequisites) > 0 {
		sections = append(sections, "")
		sections = append(sections, sectionHeading("Prerequisites"))
		for _, p := range cert.Prerequisites {
			sections = append(sections, wrap.Render("  • "+p))
		}
	}

	if len(cert.Citations) > 0 {
		sections = append(sections, "")
		sections = append(sections, sectionHeading("Sources"))
		for _, c := range cert.Citations {
			sections = append(sections, wrap.Render("  • "+c.Title))
			sections = append(sections, theme.Hint.Render("    "+c.URI))
		}
	}

	return strings.Join(sections, "\n")
}

func (s *CertViewScreen) renderModules(width int) string {
	cert := s.result.Certification
	if s.expanded && s.selected < len(cert.Modules) {
		return renderModuleDetail(cert.Modules[s.selected], width)
	}

	var lines []string
	for i, mod := range cert.Modules {
		line := fmt.Sprintf("Module %d: %s", mod.ModuleNumber, mod.Title)
		meta := components.FormatHours(mod.DurationHours)
		if len(mod.DiagramImage) > 0 {
			meta += " · diagram"
		}
		if i == s.selected {
			lines = append(lines, theme.Selected.Render("  ▸ "+line)+"  "+theme.Hint.Render(meta))
		} else {
			lines = append(lines, theme.Unselected.Render("    "+line)+"  "+theme.Hint.Render(meta))
		}
	}
	return strings.Join(lines, "\n")
}

func renderModuleDetail(mod certification.Module, width int) string {
	wrap := lipgloss.NewStyle().Width(width).Foreground(theme.Text)

	var sections []string
	sections = append(sections, theme.Title.Align(lipgloss.Left).Render(
		fmt.Sprintf("Module %d: %s", mod.ModuleNumber, mod.Title)))
	sections = append(sections, theme.Hint.Render(components.FormatHours(mod.DurationHours)))
	sections = append(sections, "")
	sections = append(sections, wrap.Render(mod.Description))

	if len(mod.LearningOutcomes) > 0 {
		sections = append(sections, "")
		sections = append(sections, sectionHeading("Learning Outcomes"))
		for _, lo := range mod.LearningOutcomes {
			sections = append(sections, wrap.Render("  • "+lo.Outcome))
			sections = append(sections, theme.Hint.Render("    "+lo.Description))
		}
	}

	sections = append(sections, "")
	sections = append(sections, sectionHeading("Lab: "+mod.Lab.Title))
	sections = append(sections, wrap.Render(mod.Lab.Task))
	sections = append(sections, theme.Hint.Render("Deliverable: "+mod.Lab.Deliverable))

	if mod.TutorTip != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Tutor tip: "+mod.TutorTip))
	}
	if len(mod.DiagramImage) > 0 {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render(
			fmt.Sprintf("◆ Concept diagram attached (%d bytes, PNG)", len(mod.DiagramImage))))
	}

	return strings.Join(sections, "\n")
}

func (s *CertViewScreen) renderQuiz(width int) string {
	if len(s.quiz) == 0 {
		return theme.Hint.Render("This certification has no sample quiz.")
	}

	q := s.quiz[s.quizIdx]
	var sections []string
	sections = append(sections, theme.Hint.Render(
		fmt.Sprintf("Question %d of %d", s.quizIdx+1, len(s.quiz))))
	sections = append(sections, "")
	sections = append(sections, q.View())

	if q.Submitted {
		explanation := s.result.Certification.SampleQuiz[s.quizIdx].Explanation
		wrap := lipgloss.NewStyle().Width(width).Foreground(theme.TextDim)
		sections = append(sections, wrap.Render(explanation))
	}

	return strings.Join(sections, "\n")
}

func (s *CertViewScreen) renderCapstone(width int) string {
	cp := s.result.Certification.CapstoneProject
	wrap := lipgloss.NewStyle().Width(width).Foreground(theme.Text)

	var sections []string
	sections = append(sections, theme.Title.Align(lipgloss.Left).Render(cp.Title))
	sections = append(sections, "")
	sections = append(sections, wrap.Render(cp.Description))

	if len(cp.EvaluationCriteria) > 0 {
		sections = append(sections, "")
		sections = append(sections, sectionHeading("Evaluation Criteria"))
		for _, c := range cp.EvaluationCriteria {
			sections = append(sections, wrap.Render("  • "+c))
		}
	}
	if cp.TutorTip != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("Tutor tip: "+cp.TutorTip))
	}

	return strings.Join(sections, "\n")
}

func (s *CertViewScreen) renderVideo(width int) string {
	scenes := s.result.Certification.IntroductoryVideoScenes
	if len(scenes) == 0 {
		return theme.Hint.Render("No introductory video concept was generated.")
	}

	wrap := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
	var sections []string
	sections = append(sections, sectionHeading("Introductory Video Concept"))
	sections = append(sections, "")
	for _, sc := range scenes {
		sections = append(sections, theme.Selected.Render(sc.Scene))
		sections = append(sections, wrap.Render(sc.Description))
		sections = append(sections, "")
	}
	return strings.Join(sections, "\n")
}

func sectionHeading(text string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(text)
}

// clipLines windows rendered content for simple vertical scrolling.
func clipLines(content string, offset, height int) string {
	lines := strings.Split(content, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *CertViewScreen) Title() string {
	return s.result.Certification.Title
}
