package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration. The build pipeline
// (content, grounding, images) always runs on Gemini; the tutor chat can be
// served by any configured chat provider.
type Config struct {
	// ChatProvider selects which provider serves the tutor chat.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	ChatProvider string

	Gemini    GeminiConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig

	// Timeout is the maximum duration for a single model request.
	// Default: 120s. Grounded research calls run long.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	// ContentModel serves text and structured generation. Default:
	// "gemini-2.5-flash".
	ContentModel string
	// ImageModel serves badge, diagram, and whiteboard generation.
	// Default: "imagen-4.0-generate-001".
	ImageModel string
}

// AnthropicConfig holds Anthropic-specific configuration (chat only).
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration (chat only).
// BaseURL supports OpenRouter and other compatible APIs.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChatProvider: "gemini",
		Gemini: GeminiConfig{
			ContentModel: "gemini-2.5-flash",
			ImageModel:   "imagen-4.0-generate-001",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Timeout: 120 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values. The Gemini key is also discovered from the
// standard GEMINI_API_KEY variable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("CERTFORGE_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("CERTFORGE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.ContentModel = m
	}
	if m := os.Getenv("CERTFORGE_IMAGE_MODEL"); m != "" {
		cfg.Gemini.ImageModel = m
	}

	if p := os.Getenv("CERTFORGE_CHAT_PROVIDER"); p != "" {
		cfg.ChatProvider = p
	}

	if k := os.Getenv("CERTFORGE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	} else if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("CERTFORGE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("CERTFORGE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("CERTFORGE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("CERTFORGE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	return cfg
}

// Validate checks that the required API keys are set for the selected
// configuration.
func (c Config) Validate() error {
	if c.ChatProvider != "mock" && c.Gemini.APIKey == "" {
		return fmt.Errorf("CERTFORGE_GEMINI_API_KEY (or GEMINI_API_KEY) is required: the build pipeline runs on Gemini")
	}
	switch c.ChatProvider {
	case "gemini", "mock":
		// Covered above.
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("CERTFORGE_ANTHROPIC_API_KEY is required for the anthropic chat provider")
		}
	case "openai", "openrouter":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("CERTFORGE_OPENAI_API_KEY is required for the %s chat provider", c.ChatProvider)
		}
	default:
		return fmt.Errorf("unknown chat provider: %q", c.ChatProvider)
	}
	return nil
}
