package tutor

import (
	"fmt"
	"strings"

	"github.com/certforge/certforge/internal/certification"
)

// Request is the content a learner wants explained. Implementations are
// ModuleRequest, VideoConceptRequest, and TopicRequest.
type Request interface {
	// Context renders the source content as prompt context.
	Context() string
}

// ModuleRequest asks for an explanation of one course module.
type ModuleRequest struct {
	Module certification.Module
}

func (r ModuleRequest) Context() string {
	return fmt.Sprintf("Title: %q. Description: %q", r.Module.Title, r.Module.Description)
}

// VideoConceptRequest asks for an explanation of the introductory video
// storyboard.
type VideoConceptRequest struct {
	Scenes []certification.VideoConceptScene
}

func (r VideoConceptRequest) Context() string {
	parts := make([]string, len(r.Scenes))
	for i, s := range r.Scenes {
		parts[i] = fmt.Sprintf("%s: %s", s.Scene, s.Description)
	}
	return fmt.Sprintf("Title: \"Introductory Video Concept\". Description: %s", strings.Join(parts, " "))
}

// TopicRequest asks for an explanation of a free-form question typed in
// chat. The question stands in for both title and description so the
// explanation prompt has the same shape as a module request.
type TopicRequest struct {
	Topic string
}

func (r TopicRequest) Context() string {
	return fmt.Sprintf("Title: %q. Description: %q", r.Topic, r.Topic)
}

// Explanation is the multi-modal tutor response. It is ephemeral chat
// content, never merged into the certification.
type Explanation struct {
	// Text is the fresh explanation in the tutor's persona.
	Text string

	// WhiteboardFrames are sequential diagram images that build on each
	// other. Empty when frame generation failed; the text still stands.
	WhiteboardFrames [][]byte

	// NarrationScript is a conversational script for a text-to-speech
	// engine.
	NarrationScript string
}
