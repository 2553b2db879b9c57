// Package chat implements the tutor chat screen: a streaming conversation
// bound to the generated certification, plus on-demand multi-modal
// explanations of modules and the video concept.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/screen"
	"github.com/certforge/certforge/internal/tutor"
	"github.com/certforge/certforge/internal/ui/components"
	"github.com/certforge/certforge/internal/ui/layout"
	"github.com/certforge/certforge/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type role int

const (
	roleUser role = iota
	roleTutor
	roleSystem
)

type message struct {
	role role
	text string
}

// ChatScreen is a streaming tutor conversation.
type ChatScreen struct {
	tutorSvc *tutor.Service
	result   *builder.Result
	pending  tutor.Request

	input      components.TextInput
	transcript []message
	deltas     chan tea.Msg
	streaming  bool
	explaining bool
	tick       int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen. A non-nil request triggers an automatic
// explanation of that content before the conversation opens.
func New(tutorSvc *tutor.Service, result *builder.Result, pending tutor.Request) *ChatScreen {
	return &ChatScreen{
		tutorSvc: tutorSvc,
		result:   result,
		pending:  pending,
		input:    components.NewTextInput("Ask your tutor anything about the course...", false, 500),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{c.input.Init()}
	if c.pending != nil {
		cmds = append(cmds, c.explain(c.pending), c.spin())
		c.explaining = true
		c.pending = nil
	}
	return tea.Batch(cmds...)
}

func (c *ChatScreen) spin() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// explain runs the multi-modal explanation pipeline off the UI loop.
func (c *ChatScreen) explain(req tutor.Request) tea.Cmd {
	svc := c.tutorSvc
	persona := c.result.Persona
	return func() tea.Msg {
		explanation, err := svc.Explain(context.Background(), req, persona)
		return explainDoneMsg{Explanation: explanation, Err: err}
	}
}

// send streams the reply to the user's message. A goroutine drains the
// session iterator into a channel; waitForDelta relays one event per Cmd.
func (c *ChatScreen) send(text string) tea.Cmd {
	session := c.result.Chat
	ch := make(chan tea.Msg, 16)
	c.deltas = ch

	go func() {
		defer close(ch)
		for chunk, err := range session.Send(context.Background(), text) {
			if err != nil {
				ch <- replyDoneMsg{Err: err}
				return
			}
			ch <- deltaMsg{Text: chunk}
		}
		ch <- replyDoneMsg{}
	}()

	return tea.Batch(c.waitForDelta(ch), c.spin())
}

func (c *ChatScreen) waitForDelta(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return replyDoneMsg{}
		}
		return msg
	}
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+E", Description: "Send with visual"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		c.tick++
		if c.streaming || c.explaining {
			return c, c.spin()
		}
		return c, nil

	case deltaMsg:
		c.appendDelta(msg.Text)
		return c, c.waitForDelta(c.deltas)

	case replyDoneMsg:
		c.streaming = false
		if msg.Err != nil {
			c.transcript = append(c.transcript, message{
				role: roleSystem,
				text: "The tutor could not reply: " + msg.Err.Error(),
			})
		}
		return c, nil

	case explainDoneMsg:
		c.explaining = false
		if msg.Err != nil {
			c.transcript = append(c.transcript, message{
				role: roleSystem,
				text: "Explanation failed: " + msg.Err.Error(),
			})
			return c, nil
		}
		c.appendExplanation(msg.Explanation)
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			text := c.takeInput()
			if text == "" {
				return c, nil
			}
			c.transcript = append(c.transcript, message{role: roleUser, text: text})
			c.transcript = append(c.transcript, message{role: roleTutor})
			c.streaming = true
			return c, tea.Batch(c.input.Init(), c.send(text))

		case "ctrl+e":
			// Route the typed question through the explanation pipeline
			// instead of plain chat, for a whiteboard-backed answer.
			text := c.takeInput()
			if text == "" {
				return c, nil
			}
			c.transcript = append(c.transcript, message{role: roleUser, text: text})
			c.explaining = true
			return c, tea.Batch(c.input.Init(), c.explain(tutor.TopicRequest{Topic: text}), c.spin())
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// takeInput returns the trimmed input and resets the field. Empty while a
// reply or explanation is in flight.
func (c *ChatScreen) takeInput() string {
	if c.streaming || c.explaining {
		return ""
	}
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return ""
	}
	c.input = components.NewTextInput("Ask your tutor anything about the course...", false, 500)
	return text
}

// appendDelta grows the in-flight tutor message.
func (c *ChatScreen) appendDelta(text string) {
	if len(c.transcript) == 0 || c.transcript[len(c.transcript)-1].role != roleTutor {
		c.transcript = append(c.transcript, message{role: roleTutor})
	}
	c.transcript[len(c.transcript)-1].text += text
}

// appendExplanation renders a finished explanation into the transcript:
// the persona text, a note about the whiteboard frames, and the narration
// script.
func (c *ChatScreen) appendExplanation(e *tutor.Explanation) {
	c.transcript = append(c.transcript, message{role: roleTutor, text: e.Text})
	if len(e.WhiteboardFrames) > 0 {
		c.transcript = append(c.transcript, message{
			role: roleSystem,
			text: fmt.Sprintf("◆ %d whiteboard frames generated", len(e.WhiteboardFrames)),
		})
	}
	if e.NarrationScript != "" {
		c.transcript = append(c.transcript, message{
			role: roleSystem,
			text: "Narration script: " + e.NarrationScript,
		})
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := minInt(width-6, 96)

	var lines []string
	for _, m := range c.transcript {
		lines = append(lines, renderMessage(m, cw))
		lines = append(lines, "")
	}

	if c.explaining {
		frame := spinnerFrames[c.tick%len(spinnerFrames)]
		lines = append(lines, theme.Hint.Render(frame+" The tutor is preparing an explanation..."))
	} else if c.streaming && lastEmpty(c.transcript) {
		frame := spinnerFrames[c.tick%len(spinnerFrames)]
		lines = append(lines, theme.Hint.Render(frame+" Thinking..."))
	}

	inputLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render("› ") + c.input.View()

	transcriptHeight := height - 3
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	transcript := tailLines(strings.Join(lines, "\n"), transcriptHeight)

	body := lipgloss.NewStyle().Height(transcriptHeight).Render(transcript) + "\n\n" + inputLine
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 3).
		Render(body)
}

func renderMessage(m message, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	switch m.role {
	case roleUser:
		return theme.Selected.Render("You") + "\n" + wrap.Foreground(theme.Text).Render(m.text)
	case roleTutor:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Tutor") +
			"\n" + wrap.Foreground(theme.Text).Render(m.text)
	default:
		return wrap.Foreground(theme.TextDim).Italic(true).Render(m.text)
	}
}

func lastEmpty(transcript []message) bool {
	return len(transcript) > 0 && transcript[len(transcript)-1].text == ""
}

// tailLines keeps the newest lines that fit the transcript area.
func tailLines(content string, height int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	return strings.Join(lines[len(lines)-height:], "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (c *ChatScreen) Title() string {
	return fmt.Sprintf("Tutor · %s", c.result.Persona)
}
