package session

import (
	"log/slog"

	"github.com/abhisek/luca/internal/content"
	"github.com/abhisek/luca/internal/progress"
	"github.com/abhisek/luca/internal/tutor"
)

// Session holds everything the screens share: the signed-in student, their
// progress record, the tutor service, and the lesson currently open.
// The TUI drives it from one goroutine; no locking is needed.
type Session struct {
	Tutor  *tutor.Service
	Store  *progress.FileStore
	Logger *slog.Logger

	StudentID string
	Progress  *progress.Progress

	current    content.Request
	lessonText string
	hasLesson  bool
}

// New creates a session with no student signed in yet.
func New(tut *tutor.Service, store *progress.FileStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{Tutor: tut, Store: store, Logger: logger}
}

// SignIn loads (or creates) the progress record for the named student.
// An empty name signs in the anonymous "student" record.
func (s *Session) SignIn(name string) error {
	if name == "" {
		name = "student"
	}
	p, err := s.Store.Load(name)
	if err != nil {
		return err
	}
	s.StudentID = name
	s.Progress = p
	return nil
}

// OpenLesson notes the lesson now on screen and records it in progress.
// Recording is idempotent per (subject, grade, topic); the file is only
// rewritten when the record actually changed.
func (s *Session) OpenLesson(req content.Request, text string) {
	s.current = req
	s.lessonText = text
	s.hasLesson = true

	if s.Progress == nil {
		return
	}
	if s.Progress.AddLesson(progress.LessonRef{Subject: req.Subject, Grade: req.Grade, Topic: req.Topic}) {
		s.persist()
	}
}

// Current returns the open lesson's request and text.
func (s *Session) Current() (content.Request, string, bool) {
	return s.current, s.lessonText, s.hasLesson
}

// RecordTest appends a quiz attempt for the open lesson and saves.
func (s *Session) RecordTest(score, total int) {
	if s.Progress == nil || !s.hasLesson {
		return
	}
	s.Progress.AddTest(progress.TestRecord{
		Subject: s.current.Subject,
		Grade:   s.current.Grade,
		Topic:   s.current.Topic,
		Score:   score,
		Total:   total,
	})
	s.persist()
}

// persist saves the progress record. Disk trouble is logged, not fatal:
// losing a save must never crash a lesson in progress.
func (s *Session) persist() {
	if err := s.Store.Save(s.Progress); err != nil {
		s.Logger.Error("failed to save progress",
			slog.String("student", s.StudentID),
			slog.Any("error", err))
	}
}
