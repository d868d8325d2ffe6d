package tutor

import (
	"testing"

	"github.com/abhisek/luca/internal/content"
)

func TestParseExercises(t *testing.T) {
	text := `[
		{"question": "What is 1/2 of 8?", "expected_answer": "4", "hint": "Split 8 into two equal groups."},
		{"question": "Shade half of a square.", "expected_answer": "half shaded"}
	]`

	exercises, err := parseExercises(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(exercises))
	}
	if exercises[0].Hint != "Split 8 into two equal groups." {
		t.Errorf("hint = %q", exercises[0].Hint)
	}
	if exercises[1].Hint != content.DefaultHint {
		t.Errorf("missing hint should default, got %q", exercises[1].Hint)
	}
}

func TestParseExercisesDropsBadEntries(t *testing.T) {
	text := `[
		{"hint": "no question here"},
		{"question": "   "},
		{"question": "Solve 2 + 2.", "expected_answer": 4}
	]`

	exercises, err := parseExercises(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("expected 1 surviving exercise, got %d", len(exercises))
	}
	if exercises[0].ExpectedAnswer != "4" {
		t.Errorf("numeric answer should coerce to string, got %q", exercises[0].ExpectedAnswer)
	}
}

func TestParseExercisesRejectsNonList(t *testing.T) {
	if _, err := parseExercises(`{"question": "not a list"}`); err == nil {
		t.Error("expected error for non-list payload")
	}
	if _, err := parseExercises(`["just a string"]`); err == nil {
		t.Error("expected error for non-object entry")
	}
	if _, err := parseExercises("sure! here are the exercises:"); err == nil {
		t.Error("expected error for non-JSON payload")
	}
	if _, err := parseExercises(`[{"hint": "only bad entries"}]`); err == nil {
		t.Error("expected error when no entry survives")
	}
}
