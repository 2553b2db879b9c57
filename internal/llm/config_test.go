package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "gemini with key",
			cfg: Config{
				ChatProvider: "gemini",
				Gemini:       GeminiConfig{APIKey: "k"},
			},
		},
		{
			name:    "gemini without key",
			cfg:     Config{ChatProvider: "gemini"},
			wantErr: true,
		},
		{
			name: "anthropic chat needs its own key",
			cfg: Config{
				ChatProvider: "anthropic",
				Gemini:       GeminiConfig{APIKey: "k"},
			},
			wantErr: true,
		},
		{
			name: "anthropic chat with both keys",
			cfg: Config{
				ChatProvider: "anthropic",
				Gemini:       GeminiConfig{APIKey: "k"},
				Anthropic:    AnthropicConfig{APIKey: "a"},
			},
		},
		{
			name: "openrouter with key",
			cfg: Config{
				ChatProvider: "openrouter",
				Gemini:       GeminiConfig{APIKey: "k"},
				OpenAI:       OpenAIConfig{APIKey: "o"},
			},
		},
		{
			name: "mock needs no keys",
			cfg:  Config{ChatProvider: "mock"},
		},
		{
			name: "unknown provider",
			cfg: Config{
				ChatProvider: "cohere",
				Gemini:       GeminiConfig{APIKey: "k"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ChatProvider != "gemini" {
		t.Fatalf("expected gemini default chat provider, got %q", cfg.ChatProvider)
	}
	if cfg.Gemini.ContentModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected default content model: %q", cfg.Gemini.ContentModel)
	}
	if cfg.Gemini.ImageModel != "imagen-4.0-generate-001" {
		t.Fatalf("unexpected default image model: %q", cfg.Gemini.ImageModel)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-opus-4-20250514", "claude-opus-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
