package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/luca/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushAndPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	browse := &stubScreen{title: "browse"}
	r.Push(browse)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "browse" {
		t.Errorf("expected active 'browse', got %q", r.Active().Title())
	}
	if !browse.initRan {
		t.Error("expected Init() to run on pushed screen")
	}

	r.Pop()
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home' after pop, got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})
	r.Push(&stubScreen{title: "home"})

	lesson := &stubScreen{title: "lesson"}
	r.Replace(lesson)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "lesson" {
		t.Errorf("expected active 'lesson', got %q", r.Active().Title())
	}
	if !lesson.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestNavigationMsgs(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})

	home := &stubScreen{title: "home"}
	r.Update(ReplaceScreenMsg{Screen: home})
	if r.Active().Title() != "home" || r.Depth() != 1 {
		t.Fatalf("ReplaceScreenMsg: active %q depth %d", r.Active().Title(), r.Depth())
	}
	if !home.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "browse"}})
	if r.Active().Title() != "browse" || r.Depth() != 2 {
		t.Fatalf("PushScreenMsg: active %q depth %d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" || r.Depth() != 1 {
		t.Fatalf("PopScreenMsg: active %q depth %d", r.Active().Title(), r.Depth())
	}
}
