package llm

import (
	"context"
	"fmt"

	"github.com/certforge/certforge/internal/store"
)

// NewClient creates a Client from configuration, wrapped with event logging.
//
// Content and image generation always run on Gemini; only the chat concern
// is switchable, so non-Gemini chat providers are composed over the Gemini
// client.
func NewClient(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Client, error) {
	if cfg.ChatProvider == "mock" {
		return NewMockClient(), nil
	}

	gemini, err := NewGeminiClient(ctx, cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("initializing gemini client: %w", err)
	}

	var client Client = gemini

	switch cfg.ChatProvider {
	case "", "gemini":
		// Gemini serves chat too.
	case "anthropic":
		chat, err := NewAnthropicChat(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("initializing anthropic chat provider: %w", err)
		}
		client = &compositeClient{Client: gemini, chat: chat}
	case "openai":
		chat, err := NewOpenAIChat(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai chat provider: %w", err)
		}
		client = &compositeClient{Client: gemini, chat: chat}
	case "openrouter":
		chat, err := NewOpenRouterChat(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openrouter chat provider: %w", err)
		}
		client = &compositeClient{Client: gemini, chat: chat}
	default:
		return nil, fmt.Errorf("unknown chat provider: %q", cfg.ChatProvider)
	}

	return WithLogging(WithTimeout(client, cfg.Timeout), eventRepo), nil
}

// compositeClient serves chat from a dedicated provider and everything else
// from the embedded client.
type compositeClient struct {
	Client
	chat ChatStarter
}

func (c *compositeClient) NewChat(ctx context.Context, system string) (ChatSession, error) {
	return c.chat.NewChat(ctx, system)
}
