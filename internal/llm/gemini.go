package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"

	"google.golang.org/genai"
)

// GeminiClient implements Client using the Google Gemini SDK. It serves all
// three concerns: content (including search grounding and structured
// output), image generation, and streaming chat.
type GeminiClient struct {
	client       *genai.Client
	contentModel string
	imageModel   string
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	contentModel := cfg.ContentModel
	if contentModel == "" {
		contentModel = "gemini-2.5-flash"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = "imagen-4.0-generate-001"
	}

	return &GeminiClient{
		client:       client,
		contentModel: contentModel,
		imageModel:   imageModel,
	}, nil
}

func (c *GeminiClient) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResponse, error) {
	if req.Schema != nil && req.Grounding {
		// The Gemini API rejects requests combining search tools with
		// responseSchema; the two-stage pipeline exists to work around this.
		return nil, fmt.Errorf("grounding and schema-constrained output cannot be combined in one request")
	}

	config := &genai.GenerateContentConfig{}

	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = buildGeminiSchema(req.Schema.Definition)
	}
	if req.Grounding {
		config.Tools = []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		}
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.contentModel, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	text := json.RawMessage(result.Text())

	if req.Schema != nil {
		if err := validateAgainstSchema(req.Schema, text); err != nil {
			return nil, err
		}
	}

	resp := &ContentResponse{
		Text:    text,
		Sources: extractGroundingSources(result),
		Model:   c.contentModel,
	}

	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}

func (c *GeminiClient) GenerateImages(ctx context.Context, req ImageRequest) ([][]byte, error) {
	config := &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.Count),
		OutputMIMEType: "image/png",
	}
	if req.AspectRatio != "" {
		config.AspectRatio = req.AspectRatio
	}

	result, err := c.client.Models.GenerateImages(ctx, c.imageModel, req.Prompt, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	if len(result.GeneratedImages) == 0 {
		return nil, &ErrEmptyResult{Prompt: req.Prompt}
	}

	images := make([][]byte, 0, len(result.GeneratedImages))
	for _, img := range result.GeneratedImages {
		if img.Image == nil {
			continue
		}
		images = append(images, img.Image.ImageBytes)
	}
	if len(images) == 0 {
		return nil, &ErrEmptyResult{Prompt: req.Prompt}
	}

	return images, nil
}

func (c *GeminiClient) NewChat(ctx context.Context, system string) (ChatSession, error) {
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	chat, err := c.client.Chats.Create(ctx, c.contentModel, config, nil)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return &geminiChat{chat: chat}, nil
}

func (c *GeminiClient) ModelID() string {
	return c.contentModel
}

// geminiChat adapts a genai chat to the ChatSession interface. The SDK
// tracks conversation history itself.
type geminiChat struct {
	chat *genai.Chat
}

func (s *geminiChat) Send(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for chunk, err := range s.chat.SendMessageStream(ctx, genai.Part{Text: message}) {
			if err != nil {
				yield("", mapGeminiError(err))
				return
			}
			text := chunk.Text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}

// extractGroundingSources pulls web references out of the grounding
// metadata. Entries are passed through as reported; callers apply the
// title-and-URI filter.
func extractGroundingSources(result *genai.GenerateContentResponse) []GroundingSource {
	if len(result.Candidates) == 0 || result.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var sources []GroundingSource
	for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, GroundingSource{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}
	return sources
}

// buildGeminiSchema converts a JSON Schema definition map to a genai.Schema.
func buildGeminiSchema(def map[string]any) *genai.Schema {
	schema := &genai.Schema{}

	if t, ok := def["type"].(string); ok {
		schema.Type = mapGeminiType(t)
	}
	if desc, ok := def["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := def["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema)
		for k, v := range props {
			if propDef, ok := v.(map[string]any); ok {
				schema.Properties[k] = buildGeminiSchema(propDef)
			}
		}
	}

	if req, ok := def["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}

	if enums, ok := def["enum"].([]any); ok {
		for _, e := range enums {
			if s, ok := e.(string); ok {
				schema.Enum = append(schema.Enum, s)
			}
		}
	}

	if items, ok := def["items"].(map[string]any); ok {
		schema.Items = buildGeminiSchema(items)
	}

	return schema
}

func mapGeminiType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
		return &ErrService{Status: apiErr.Code, Err: err}
	}
	return &ErrService{Err: err}
}
