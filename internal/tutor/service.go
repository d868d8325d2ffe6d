package tutor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abhisek/luca/internal/content"
	"github.com/abhisek/luca/internal/llm"
)

// Service is the remote-first content provider. Each operation makes at
// most one remote attempt and falls back to the local catalog on any
// failure. The only error that escapes an operation is the local lookup's
// own failure for an unknown (subject, grade, topic) triple, which is a
// caller bug, not transient unavailability.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *slog.Logger
}

// NewService creates a tutor service. provider may be nil when no
// credentials are configured; every operation then serves local content.
func NewService(provider llm.Provider, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger}
}

// Lesson returns lesson text for the request.
func (s *Service) Lesson(ctx context.Context, req content.Request) (*LessonResult, error) {
	text, err := s.generate(llm.WithPurpose(ctx, "lesson"), lessonSystemPrompt, buildLessonPrompt(req))
	if err == nil {
		return &LessonResult{Text: text, Origin: OriginRemote}, nil
	}

	s.logger.Warn("falling back to local lesson",
		slog.String("subject", req.Subject),
		slog.Int("grade", req.Grade),
		slog.String("topic", req.Topic),
		slog.Any("error", err))

	local, lookupErr := content.LocalLesson(req)
	if lookupErr != nil {
		return nil, lookupErr
	}
	return &LessonResult{Text: local, Origin: OriginLocal, Reason: err}, nil
}

// Exercises returns practice questions for the request.
func (s *Service) Exercises(ctx context.Context, req content.Request) (*ExercisesResult, error) {
	text, err := s.generate(llm.WithPurpose(ctx, "exercises"), exercisesSystemPrompt, buildExercisesPrompt(req))
	if err == nil {
		exercises, parseErr := parseExercises(text)
		if parseErr == nil {
			return &ExercisesResult{Exercises: exercises, Origin: OriginRemote}, nil
		}
		err = parseErr
	}

	s.logger.Warn("falling back to local exercises",
		slog.String("subject", req.Subject),
		slog.Int("grade", req.Grade),
		slog.String("topic", req.Topic),
		slog.Any("error", err))

	local, lookupErr := content.LocalExercises(req)
	if lookupErr != nil {
		return nil, lookupErr
	}
	return &ExercisesResult{Exercises: local, Origin: OriginLocal, Reason: err}, nil
}

// Feedback returns guidance for a wrong answer. It never fails: the local
// feedback helper has an answer for every question.
func (s *Service) Feedback(ctx context.Context, question, lessonContext, studentAnswer string) *FeedbackResult {
	text, err := s.generate(llm.WithPurpose(ctx, "feedback"), feedbackSystemPrompt,
		buildFeedbackPrompt(question, lessonContext, studentAnswer))
	if err == nil {
		return &FeedbackResult{Text: text, Origin: OriginRemote}
	}

	s.logger.Warn("falling back to local feedback", slog.Any("error", err))

	return &FeedbackResult{
		Text:   content.LocalFeedback(question, lessonContext),
		Origin: OriginLocal,
		Reason: err,
	}
}

// generate performs the single remote attempt shared by all operations.
func (s *Service) generate(ctx context.Context, system, prompt string) (string, error) {
	if s.provider == nil {
		return "", llm.ErrNotConfigured
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
