package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
	"github.com/certforge/certforge/internal/tutor"
)

func newTestChat() *ChatScreen {
	m := llm.NewMockClient()
	result := &builder.Result{
		Certification: &certification.Certification{Title: "Certified SRE"},
		Persona:       certification.PersonaEncouragingCoach,
	}
	return New(tutor.New(m, m, m), result, nil)
}

func TestDeltasAccumulateIntoOneReply(t *testing.T) {
	c := newTestChat()
	c.transcript = append(c.transcript, message{role: roleUser, text: "hi"})
	c.transcript = append(c.transcript, message{role: roleTutor})

	c.Update(deltaMsg{Text: "Hello "})
	c.Update(deltaMsg{Text: "there!"})

	last := c.transcript[len(c.transcript)-1]
	if last.role != roleTutor || last.text != "Hello there!" {
		t.Fatalf("unexpected reply: %+v", last)
	}
}

func TestReplyErrorBecomesSystemMessage(t *testing.T) {
	c := newTestChat()
	c.streaming = true

	c.Update(replyDoneMsg{Err: &llm.ErrService{Status: 503}})

	if c.streaming {
		t.Fatal("streaming must stop on error")
	}
	last := c.transcript[len(c.transcript)-1]
	if last.role != roleSystem || !strings.Contains(last.text, "could not reply") {
		t.Fatalf("unexpected message: %+v", last)
	}
}

func TestExplanationRendersAllParts(t *testing.T) {
	c := newTestChat()
	c.explaining = true

	c.Update(explainDoneMsg{Explanation: &tutor.Explanation{
		Text:             "Think of pods as peas in a pod.",
		WhiteboardFrames: [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")},
		NarrationScript:  "Hey there! Let's talk pods.",
	}})

	if c.explaining {
		t.Fatal("explaining must stop")
	}

	var texts []string
	for _, m := range c.transcript {
		texts = append(texts, m.text)
	}
	joined := strings.Join(texts, "\n")

	if !strings.Contains(joined, "peas in a pod") {
		t.Fatal("explanation text missing")
	}
	if !strings.Contains(joined, "4 whiteboard frames") {
		t.Fatal("frame note missing")
	}
	if !strings.Contains(joined, "Narration script:") {
		t.Fatal("narration missing")
	}
}

func TestExplanationWithoutFramesSkipsNote(t *testing.T) {
	c := newTestChat()
	c.explaining = true

	c.Update(explainDoneMsg{Explanation: &tutor.Explanation{Text: "Just text."}})

	for _, m := range c.transcript {
		if strings.Contains(m.text, "whiteboard frames") {
			t.Fatal("frame note must not appear without frames")
		}
	}
}

func typeText(c *ChatScreen, text string) {
	for _, r := range text {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSendWithVisualRunsExplanation(t *testing.T) {
	c := newTestChat()
	typeText(c, "what is a pod?")

	_, cmd := c.Update(tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a command to run the explanation")
	}
	if !c.explaining {
		t.Fatal("screen must enter the explaining state")
	}

	last := c.transcript[len(c.transcript)-1]
	if last.role != roleUser || last.text != "what is a pod?" {
		t.Fatalf("question missing from transcript: %+v", last)
	}
	if c.input.Value() != "" {
		t.Fatalf("input must reset after sending, got %q", c.input.Value())
	}
}

func TestSendWithVisualBlockedWhileBusy(t *testing.T) {
	c := newTestChat()
	typeText(c, "what is a pod?")
	c.streaming = true

	before := len(c.transcript)
	c.Update(tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl})

	if c.explaining {
		t.Fatal("explanation must not start while a reply streams")
	}
	if len(c.transcript) != before {
		t.Fatal("transcript must not change while busy")
	}
}

func TestSendWithVisualIgnoresEmptyInput(t *testing.T) {
	c := newTestChat()
	_, cmd := c.Update(tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl})
	if cmd != nil || c.explaining {
		t.Fatal("empty input must not trigger an explanation")
	}
}

func TestTitleIncludesPersona(t *testing.T) {
	c := newTestChat()
	if !strings.Contains(c.Title(), string(certification.PersonaEncouragingCoach)) {
		t.Fatalf("title missing persona: %q", c.Title())
	}
}
