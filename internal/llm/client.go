package llm

import (
	"context"
	"encoding/json"
	"iter"
)

// ContentGenerator produces text or schema-constrained JSON from a prompt.
type ContentGenerator interface {
	// GenerateContent sends a prompt to the model and returns the response.
	// When the request's Schema is set, the provider uses its native
	// structured output mechanism and the response Text is the validated
	// JSON. When Grounding is set, the provider augments the call with web
	// search and reports the sources it consulted.
	GenerateContent(ctx context.Context, req ContentRequest) (*ContentResponse, error)
}

// ImageGenerator produces images from a prompt.
type ImageGenerator interface {
	// GenerateImages returns the generated images as raw byte buffers, in
	// order. It returns fewer than req.Count only if the upstream service
	// explicitly returned fewer, and *ErrEmptyResult when it returned none.
	GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error)
}

// ChatStarter opens persistent chat sessions.
type ChatStarter interface {
	// NewChat creates a chat session with the given system instruction.
	NewChat(ctx context.Context, system string) (ChatSession, error)
}

// Client is the full generation surface used by the pipelines.
type Client interface {
	ContentGenerator
	ImageGenerator
	ChatStarter

	// ModelID returns the content model identifier this client is
	// configured to use.
	ModelID() string
}

// ChatSession is a stateful multi-turn conversation. Sessions are not safe
// for concurrent use; the consumer drives one Send at a time.
type ChatSession interface {
	// Send submits a message and returns the reply as a lazy sequence of
	// text deltas. Breaking out of the iteration abandons the reply;
	// the session remains usable for the next Send.
	Send(ctx context.Context, message string) iter.Seq2[string, error]
}

// ContentRequest describes a single content-generation call.
type ContentRequest struct {
	// System is the system instruction. Sets the model's role and tone.
	System string

	// Prompt is the user-facing prompt text.
	Prompt string

	// Schema is the JSON Schema the response must conform to. When set,
	// the response is validated before being returned. Mutually exclusive
	// with Grounding: the upstream API cannot combine search tools with
	// constrained output.
	Schema *Schema

	// Grounding enables web-search grounding for this call.
	Grounding bool

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// ContentResponse holds the model's output for a content call.
type ContentResponse struct {
	// Text is the generated output. With a Schema it is the validated
	// JSON object; otherwise the raw response text.
	Text json.RawMessage

	// Sources are the grounding references reported by the upstream call,
	// in upstream order. Entries may have an empty Title or URI; callers
	// filter as needed. Empty unless Grounding was requested.
	Sources []GroundingSource

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that served the request.
	Model string
}

// GroundingSource is one web reference attached by a grounded call.
type GroundingSource struct {
	Title string
	URI   string
}

// ImageRequest describes a single image-generation call.
type ImageRequest struct {
	Prompt string

	// Count is the number of images requested.
	Count int

	// AspectRatio is the upstream aspect ratio string, e.g. "1:1" or "16:9".
	AspectRatio string
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "certification".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
