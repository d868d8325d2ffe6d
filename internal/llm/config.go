package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration. It is built once at process
// start and passed in explicitly so tests never mutate the environment.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "mock"
	Provider string

	Gemini    GeminiConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig

	// Timeout is the maximum duration for a single LLM request.
	// Default: 30s. There are no retries: one attempt, then the caller
	// falls back.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-pro"

	// Endpoint overrides the generateContent URL. When empty the standard
	// Google endpoint for Model is used. Tests point this at a fake server.
	Endpoint string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-pro",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values. Bare provider key variables (GEMINI_API_KEY
// and friends) are honored so the app picks up standard credentials without
// Luca-specific setup.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("LUCA_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := firstEnv("LUCA_GEMINI_API_KEY", "GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := firstEnv("LUCA_GEMINI_MODEL", "GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if u := firstEnv("LUCA_GEMINI_ENDPOINT", "GEMINI_API_ENDPOINT"); u != "" {
		cfg.Gemini.Endpoint = u
	}

	if k := firstEnv("LUCA_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("LUCA_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := firstEnv("LUCA_OPENAI_API_KEY", "OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("LUCA_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("LUCA_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	return cfg
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the selected provider has its required API key set.
// A failed validation is not fatal for the app: the tutor layer runs on
// local content only.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrNotConfigured)
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", ErrNotConfigured)
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrNotConfigured)
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
