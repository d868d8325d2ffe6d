package llm

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"mock", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMissingKeyIsNotConfigured(t *testing.T) {
	err := Config{Provider: "gemini"}.Validate()
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured in chain, got %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LUCA_LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "bare-key")
	t.Setenv("LUCA_GEMINI_MODEL", "gemini-pro")
	t.Setenv("GEMINI_API_ENDPOINT", "http://localhost:9999/generate")

	cfg := ConfigFromEnv()

	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "bare-key" {
		t.Errorf("APIKey = %q, bare GEMINI_API_KEY should be honored", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Endpoint != "http://localhost:9999/generate" {
		t.Errorf("Endpoint = %q", cfg.Gemini.Endpoint)
	}
}

func TestConfigFromEnvPrefersLucaVars(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "bare-key")
	t.Setenv("LUCA_GEMINI_API_KEY", "luca-key")

	cfg := ConfigFromEnv()

	if cfg.Gemini.APIKey != "luca-key" {
		t.Errorf("APIKey = %q, LUCA_GEMINI_API_KEY should win", cfg.Gemini.APIKey)
	}
}

func TestDefaultTimeout(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timeout.Seconds() != 30 {
		t.Errorf("default timeout = %s, want 30s", cfg.Timeout)
	}
}
