package llm

import (
	"context"
	"errors"
	"iter"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Model aliases mapped to concrete Anthropic model identifiers.
var anthropicModels = map[string]string{
	"claude-haiku":  "claude-haiku-4-5-20251001",
	"claude-sonnet": "claude-sonnet-4-20250514",
}

// AnthropicChat serves tutor chat sessions via the Anthropic API. It covers
// the chat concern only; content and image generation stay on Gemini.
type AnthropicChat struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicChat creates a chat provider backed by Anthropic.
func NewAnthropicChat(cfg AnthropicConfig) (*AnthropicChat, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	model := cfg.Model
	if model == "" {
		model = "claude-haiku"
	}

	return &AnthropicChat{client: &client, model: resolveModel(model, anthropicModels)}, nil
}

func (a *AnthropicChat) NewChat(_ context.Context, system string) (ChatSession, error) {
	return &anthropicChat{
		client: a.client,
		model:  a.model,
		system: system,
	}, nil
}

// anthropicChat accumulates conversation history itself; the Messages API is
// stateless.
type anthropicChat struct {
	client  *anthropic.Client
	model   string
	system  string
	history []anthropic.MessageParam
}

func (s *anthropicChat) Send(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s.history = append(s.history, anthropicMessage(anthropic.MessageParamRoleUser, message))

		params := anthropic.MessageNewParams{
			Model:     anthropic.Model(s.model),
			MaxTokens: 2048,
			Messages:  s.history,
		}
		if s.system != "" {
			params.System = []anthropic.TextBlockParam{{Text: s.system}}
		}

		stream := s.client.Messages.NewStreaming(ctx, params)

		var reply string
		for stream.Next() {
			event := stream.Current()
			if delta, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent); ok {
				if text, ok := delta.Delta.AsAny().(anthropic.TextDelta); ok && text.Text != "" {
					reply += text.Text
					if !yield(text.Text, nil) {
						return
					}
				}
			}
		}
		if err := stream.Err(); err != nil {
			yield("", mapAnthropicError(err))
			return
		}

		s.history = append(s.history, anthropicMessage(anthropic.MessageParamRoleAssistant, reply))
	}
}

func anthropicMessage(role anthropic.MessageParamRole, text string) anthropic.MessageParam {
	return anthropic.MessageParam{
		Role: role,
		Content: []anthropic.ContentBlockParamUnion{
			anthropic.NewTextBlock(text),
		},
	}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through, so direct model IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
		return &ErrService{Status: apiErr.StatusCode, Err: err}
	}
	return &ErrService{Err: err}
}
