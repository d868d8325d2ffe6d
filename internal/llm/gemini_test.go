package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(GeminiConfig{
		APIKey:   "test-key",
		Model:    "gemini-pro",
		Endpoint: srv.URL,
	}, 5*time.Second)
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}
	return p
}

func TestGeminiGenerate(t *testing.T) {
	var gotKey string
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Fractions are parts of a whole."}]}}]}`))
	})

	resp, err := p.Generate(context.Background(), Request{Prompt: "teach fractions"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Fractions are parts of a whole." {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if gotKey != "test-key" {
		t.Errorf("API key not sent as query parameter, got %q", gotKey)
	}
}

func TestGeminiGenerateSkipsEmptyParts(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":""},{"text":"second part"}]}}]}`))
	})

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "second part" {
		t.Errorf("expected first non-empty part, got %q", resp.Text)
	}
}

func TestGeminiGenerateRateLimited(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})

	var rateErr *ErrRateLimit
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestGeminiGenerateServerError(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})

	var unavailErr *ErrProviderUnavailable
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestGeminiGenerateMalformedJSON(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [`))
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})

	var invalidErr *ErrInvalidResponse
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	p := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})

	var invalidErr *ErrInvalidResponse
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGeminiGenerateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Deliberately dead endpoint.

	p, err := NewGeminiProvider(GeminiConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL,
	}, time.Second)
	if err != nil {
		t.Fatalf("NewGeminiProvider: %v", err)
	}

	_, err = p.Generate(context.Background(), Request{Prompt: "hi"})

	var unavailErr *ErrProviderUnavailable
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(GeminiConfig{}, time.Second)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
