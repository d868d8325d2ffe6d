package tutor

import "time"

// Config tunes generation requests.
type Config struct {
	// MaxTokens bounds every response.
	MaxTokens int

	// Temperature for generation. Kept low so exercise JSON stays
	// parseable while lessons keep a little variety.
	Temperature float64

	// Timeout bounds the single remote attempt regardless of which
	// provider serves it. Zero disables the bound.
	Timeout time.Duration
}

// DefaultConfig returns the config used by the app.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}
