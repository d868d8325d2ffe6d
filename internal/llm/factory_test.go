package llm

import (
	"context"
	"errors"
	"testing"
)

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"

	if _, err := NewProvider(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	for _, want := range []string{"first", "second"} {
		resp, err := mock.Generate(context.Background(), Request{Prompt: "p"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != want {
			t.Errorf("got %q, want %q", resp.Text, want)
		}
	}

	// Drained queue reads as an outage.
	_, err := mock.Generate(context.Background(), Request{Prompt: "p"})
	var unavailErr *ErrProviderUnavailable
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "lesson")
	if got := PurposeFrom(ctx); got != "lesson" {
		t.Errorf("PurposeFrom = %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom without label = %q", got)
	}
}
