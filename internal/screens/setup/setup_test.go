package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/router"
)

func typeText(t *testing.T, s *SetupScreen, text string) {
	t.Helper()
	for _, r := range text {
		updated, _ := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		var ok bool
		s, ok = updated.(*SetupScreen)
		require.True(t, ok)
	}
}

func pressEnter(s *SetupScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func pressDown(s *SetupScreen) {
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
}

func TestWizardCollectsInput(t *testing.T) {
	s := New(nil)

	typeText(t, s, "Kubernetes Administration")
	pressEnter(s)
	require.Equal(t, stepDetails, s.step)
	require.Equal(t, "Kubernetes Administration", s.input.Topic)

	typeText(t, s, "focus on CKA topics")
	pressEnter(s)
	require.Equal(t, stepLevel, s.step)
	require.Equal(t, "focus on CKA topics", s.input.Details)

	pressDown(s) // Beginner -> Intermediate
	pressEnter(s)
	require.Equal(t, stepHours, s.step)
	require.Equal(t, certification.LevelIntermediate, s.input.Level)

	typeText(t, s, "24")
	pressEnter(s)
	require.Equal(t, stepPersona, s.step)
	require.Equal(t, 24, s.input.Hours)

	pressDown(s) // Encouraging Coach -> Formal Professor
	pressEnter(s)
	require.Equal(t, stepConfirm, s.step)
	require.Equal(t, certification.PersonaFormalProfessor, s.input.Persona)

	cmd := pressEnter(s)
	require.NotNil(t, cmd, "confirm must produce a navigation command")
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg, got %T", msg)
	require.NotNil(t, replaceMsg.Screen)
}

func TestWizardRejectsEmptyTopic(t *testing.T) {
	s := New(nil)

	pressEnter(s)
	require.Equal(t, stepTopic, s.step, "empty topic must not advance")
	require.NotEmpty(t, s.errs)
}

func TestWizardDefaultsHours(t *testing.T) {
	s := New(nil)

	typeText(t, s, "Terraform")
	pressEnter(s) // topic
	pressEnter(s) // details (empty is fine)
	pressEnter(s) // level
	pressEnter(s) // hours left empty
	require.Equal(t, stepPersona, s.step)
	require.Equal(t, defaultHours, s.input.Hours)
}

func TestWizardRejectsNonPositiveHours(t *testing.T) {
	s := New(nil)

	typeText(t, s, "Terraform")
	pressEnter(s)
	pressEnter(s)
	pressEnter(s)
	typeText(t, s, "0")
	pressEnter(s)
	require.Equal(t, stepHours, s.step, "zero hours must not advance")
	require.NotEmpty(t, s.errs)
}
