package certview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/router"
)

func testResult() *builder.Result {
	return &builder.Result{
		Certification: &certification.Certification{
			Title:              "Certified Platform Engineer",
			TargetAudience:     "Mid-level engineers",
			TotalDurationHours: 40,
			Overview:           "A practical program.",
			Modules: []certification.Module{
				{ModuleNumber: 1, Title: "Foundations", DurationHours: 10, Description: "Basics."},
				{ModuleNumber: 2, Title: "Operations", DurationHours: 30, Description: "Day two."},
			},
			SampleQuiz: []certification.QuizQuestion{
				{
					Question:      "What is a pod?",
					Options:       []string{"A VM", "A container group", "A node", "A network"},
					CorrectAnswer: "A container group",
					Explanation:   "Pods group containers.",
				},
			},
			CapstoneProject: certification.CapstoneProject{Title: "Build a platform"},
		},
		Badge:   []byte("png"),
		Persona: certification.PersonaWittyExpert,
	}
}

func newTestScreen() *CertViewScreen {
	return New(builder.New(nil, nil, nil, nil), testResult())
}

func TestQuizMapsCorrectIndex(t *testing.T) {
	s := newTestScreen()
	if len(s.quiz) != 1 {
		t.Fatalf("expected 1 quiz question, got %d", len(s.quiz))
	}
	if s.quiz[0].CorrectIndex != 1 {
		t.Fatalf("correct index = %d, want 1", s.quiz[0].CorrectIndex)
	}
}

func TestSectionNavigationStaysInBounds(t *testing.T) {
	s := newTestScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.section != sectionOverview {
		t.Fatal("left from the first section must not move")
	}

	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if s.section != sectionVideo {
		t.Fatalf("section = %d, want the last section", s.section)
	}
}

func TestExplainModulePushesChat(t *testing.T) {
	s := newTestScreen()
	s.section = sectionModules
	s.selected = 1

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Fatal("pushed screen must not be nil")
	}
}

func TestOverviewRendersCoreFields(t *testing.T) {
	s := newTestScreen()
	view := s.View(100, 40)

	for _, want := range []string{"Certified Platform Engineer", "Mid-level engineers", "A practical program."} {
		if !strings.Contains(view, want) {
			t.Fatalf("overview missing %q", want)
		}
	}
}

func TestModuleListShowsSelection(t *testing.T) {
	s := newTestScreen()
	s.section = sectionModules
	view := s.View(100, 40)

	if !strings.Contains(view, "Module 1: Foundations") {
		t.Fatal("module list missing first module")
	}
	if !strings.Contains(view, "Module 2: Operations") {
		t.Fatal("module list missing second module")
	}
}

func TestQuizAnswerRevealsExplanation(t *testing.T) {
	s := newTestScreen()
	s.section = sectionQuiz

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !s.quiz[0].Submitted {
		t.Fatal("question must be submitted")
	}
	if !s.quiz[0].IsCorrect() {
		t.Fatal("option B should be correct")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Pods group containers.") {
		t.Fatal("explanation should appear after answering")
	}
}
