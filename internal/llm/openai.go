package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIChat serves tutor chat sessions via the OpenAI SDK. BaseURL makes it
// work against OpenRouter and other OpenAI-compatible APIs. Chat concern
// only; content and image generation stay on Gemini.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat creates a chat provider backed by OpenAI.
func NewOpenAIChat(cfg OpenAIConfig) (*OpenAIChat, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	client := openai.NewClientWithConfig(config)
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIChat{
		client: client,
		model:  resolveModel(model, openaiModels),
	}, nil
}

// NewOpenRouterChat creates a chat provider targeting the OpenRouter API.
// OpenRouter is OpenAI-compatible, so the same SDK is reused.
func NewOpenRouterChat(cfg OpenAIConfig) (*OpenAIChat, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}
	return NewOpenAIChat(cfg)
}

func (p *OpenAIChat) NewChat(_ context.Context, system string) (ChatSession, error) {
	var history []openai.ChatCompletionMessage
	if system != "" {
		history = append(history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	return &openaiChat{
		client:  p.client,
		model:   p.model,
		history: history,
	}, nil
}

// openaiChat accumulates conversation history itself; the chat completions
// API is stateless.
type openaiChat struct {
	client  *openai.Client
	model   string
	history []openai.ChatCompletionMessage
}

func (s *openaiChat) Send(ctx context.Context, message string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s.history = append(s.history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: message,
		})

		stream, err := s.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: s.history,
		})
		if err != nil {
			yield("", mapOpenAIError(err))
			return
		}
		defer stream.Close()

		var reply string
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				yield("", mapOpenAIError(err))
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			reply += delta
			if !yield(delta, nil) {
				return
			}
		}

		s.history = append(s.history, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: reply,
		})
	}
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &ErrRateLimit{Err: err}
		}
		return &ErrService{Status: apiErr.HTTPStatusCode, Err: err}
	}
	return &ErrService{Err: err}
}
