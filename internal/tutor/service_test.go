package tutor

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/abhisek/luca/internal/content"
	"github.com/abhisek/luca/internal/llm"
)

var testReq = content.Request{Subject: "Mathematics", Grade: 3, Topic: "Fractions"}

func newTestService(provider llm.Provider) *Service {
	return NewService(provider, DefaultConfig(), slog.New(slog.DiscardHandler))
}

func TestLessonRemote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  A lesson about fractions.  \n"})
	svc := newTestService(mock)

	result, err := svc.Lesson(t.Context(), testReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginRemote {
		t.Errorf("Origin = %q, want remote", result.Origin)
	}
	if result.Text != "A lesson about fractions." {
		t.Errorf("text not trimmed: %q", result.Text)
	}
	if result.Reason != nil {
		t.Errorf("Reason should be nil on remote success, got %v", result.Reason)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected a single remote attempt, got %d", mock.CallCount())
	}
}

func TestLessonFallsBackOnFailure(t *testing.T) {
	remoteErr := &llm.ErrProviderUnavailable{Err: errors.New("boom")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: remoteErr})
	svc := newTestService(mock)

	result, err := svc.Lesson(t.Context(), testReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginLocal {
		t.Errorf("Origin = %q, want local", result.Origin)
	}
	if !errors.Is(result.Reason, remoteErr) {
		t.Errorf("Reason = %v, want the remote failure", result.Reason)
	}

	local, lerr := content.LocalLesson(testReq)
	if lerr != nil {
		t.Fatalf("LocalLesson: %v", lerr)
	}
	if result.Text != local {
		t.Errorf("fallback text differs from local lesson:\n%s", result.Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected no retries, got %d attempts", mock.CallCount())
	}
}

func TestLessonNilProvider(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.Lesson(t.Context(), testReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginLocal {
		t.Errorf("Origin = %q, want local", result.Origin)
	}
	if !errors.Is(result.Reason, llm.ErrNotConfigured) {
		t.Errorf("Reason = %v, want ErrNotConfigured", result.Reason)
	}
}

// hangingProvider blocks until its context is done, like a stalled
// upstream connection.
type hangingProvider struct{}

func (hangingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, &llm.ErrProviderUnavailable{Err: ctx.Err()}
}

func (hangingProvider) ModelID() string { return "hanging" }

func TestLessonTimeoutBoundsAnyProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	svc := NewService(hangingProvider{}, cfg, slog.New(slog.DiscardHandler))

	done := make(chan struct{})
	var result *LessonResult
	var err error
	go func() {
		result, err = svc.Lesson(context.Background(), testReq)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("request bound did not fire for a hanging provider")
	}

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginLocal {
		t.Errorf("Origin = %q, want local after timeout", result.Origin)
	}
	if result.Reason == nil {
		t.Error("Reason should hold the timeout failure")
	}
}

func TestLessonUnknownTopicPropagates(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Lesson(t.Context(), content.Request{Subject: "Art", Grade: 3, Topic: "Cubism"})

	var unknownErr *content.ErrUnknownTopic
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestExercisesRemote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `[{"question": "What is 1/4 of 12?", "expected_answer": "3", "hint": "Share 12 into 4 groups."}]`,
	})
	svc := newTestService(mock)

	result, err := svc.Exercises(t.Context(), testReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginRemote {
		t.Errorf("Origin = %q, want remote", result.Origin)
	}
	if len(result.Exercises) != 1 || result.Exercises[0].ExpectedAnswer != "3" {
		t.Errorf("unexpected exercises: %+v", result.Exercises)
	}
}

func TestExercisesFallsBackOnGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "I'm sorry, I cannot produce JSON today."})
	svc := newTestService(mock)

	result, err := svc.Exercises(t.Context(), testReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Origin != OriginLocal {
		t.Errorf("Origin = %q, want local after parse failure", result.Origin)
	}
	if result.Reason == nil {
		t.Error("Reason should hold the parse failure")
	}
	if len(result.Exercises) == 0 {
		t.Error("local fallback returned no exercises")
	}
}

func TestFeedbackRemote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Almost! Count the remaining slices."})
	svc := newTestService(mock)

	result := svc.Feedback(t.Context(), "pizza question", "lesson text", "3/8")
	if result.Origin != OriginRemote {
		t.Errorf("Origin = %q, want remote", result.Origin)
	}
	if result.Text != "Almost! Count the remaining slices." {
		t.Errorf("text = %q", result.Text)
	}
}

func TestFeedbackNeverFails(t *testing.T) {
	svc := newTestService(nil)

	result := svc.Feedback(t.Context(), "Solve 4 x 6.", "", "20")
	if result.Origin != OriginLocal {
		t.Errorf("Origin = %q, want local", result.Origin)
	}
	if result.Text == "" {
		t.Error("local feedback must never be empty")
	}
}
