package llm

import "context"

// Provider is the core abstraction for generative-text interaction.
// Luca makes single-turn requests: a system role plus one user prompt.
type Provider interface {
	// Generate sends a prompt and returns the model's text response.
	// Implementations return a typed error (ErrNotConfigured,
	// ErrProviderUnavailable, ErrRateLimit, ErrInvalidResponse) so
	// callers can decide whether to fall back.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single-turn generation request.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// MaxTokens bounds the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the first non-empty text the model produced, untrimmed.
	Text string

	// Model is the actual model that served the request.
	Model string

	// Usage reports token consumption when the provider supplies it.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
