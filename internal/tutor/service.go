package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
)

// ErrExplanationFailed indicates the structured explanation call errored or
// its result was unusable. Fatal to that one explanation request only.
type ErrExplanationFailed struct {
	Err error
}

func (e *ErrExplanationFailed) Error() string {
	return "failed to generate the tutor's explanation"
}

func (e *ErrExplanationFailed) Unwrap() error { return e.Err }

// Service produces on-demand tutor explanations and opens persona-bound
// chat sessions over a generated certification.
type Service struct {
	generator llm.ContentGenerator
	images    llm.ImageGenerator
	chats     llm.ChatStarter
}

// New creates a tutor Service.
func New(generator llm.ContentGenerator, images llm.ImageGenerator, chats llm.ChatStarter) *Service {
	return &Service{generator: generator, images: images, chats: chats}
}

// explanationOutput is the raw structured response before mapping.
type explanationOutput struct {
	ExplanationText  string `json:"explanationText"`
	WhiteboardPrompt string `json:"whiteboardPrompt"`
	AudioScript      string `json:"audioScript"`
}

// Explain generates a multi-modal explanation of the requested content.
// The structured text call is required; the whiteboard frame call is best
// effort, and on failure the explanation is returned with no frames.
func (s *Service) Explain(ctx context.Context, req Request, persona certification.TutorPersona) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	resp, err := s.generator.GenerateContent(ctx, llm.ContentRequest{
		Prompt: buildExplanationPrompt(req, persona),
		Schema: ExplanationSchema,
	})
	if err != nil {
		return nil, &ErrExplanationFailed{Err: err}
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Text, &out); err != nil {
		return nil, &ErrExplanationFailed{Err: fmt.Errorf("failed to parse explanation: %w", err)}
	}

	explanation := &Explanation{
		Text:            out.ExplanationText,
		NarrationScript: out.AudioScript,
	}

	frames, err := s.images.GenerateImages(llm.WithPurpose(ctx, "whiteboard"), llm.ImageRequest{
		Prompt:      buildWhiteboardPrompt(out.WhiteboardPrompt),
		Count:       whiteboardFrameCount,
		AspectRatio: "16:9",
	})
	if err == nil {
		explanation.WhiteboardFrames = frames
	}

	return explanation, nil
}

// NewChat opens a streaming chat session bound to the certification content
// and the tutor persona.
func (s *Service) NewChat(ctx context.Context, cert *certification.Certification, persona certification.TutorPersona) (llm.ChatSession, error) {
	return s.chats.NewChat(ctx, buildChatSystemInstruction(cert, persona))
}
