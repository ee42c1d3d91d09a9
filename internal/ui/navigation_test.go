package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEscapeChoosesBack(t *testing.T) {
	h := NewHarness(newTestModel("raw", "..", "Exit!"))
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	got, err := h.Model().Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ".." {
		t.Fatalf("expected esc to choose .., got %q", got)
	}
}

func TestEscapeClearsFilterFirst(t *testing.T) {
	h := NewHarness(newTestModel("raw", "results", "..", "Exit!"))
	h.SendKeys("res")
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})

	if h.Quit() {
		t.Fatal("expected esc with a filter to stay in the menu")
	}
	level := h.Model().level
	if level.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", level.Filter)
	}
	if len(level.Items) != 4 {
		t.Fatalf("expected all items restored, got %d", len(level.Items))
	}
}

func TestCursorKeysWrapAndJump(t *testing.T) {
	h := NewHarness(newTestModel("a", "b", "c"))
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if got := h.Model().level.Cursor; got != 2 {
		t.Fatalf("expected up to wrap to 2, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyHome})
	if got := h.Model().level.Cursor; got != 0 {
		t.Fatalf("expected home to move to 0, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if got := h.Model().level.Cursor; got != 2 {
		t.Fatalf("expected end to move to 2, got %d", got)
	}
}

func TestEnterOnEmptyFilterResultDoesNothing(t *testing.T) {
	h := NewHarness(newTestModel("raw", "..", "Exit!"))
	h.SendKeys("qqqq")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if h.Quit() {
		t.Fatal("expected enter with no visible entries to be ignored")
	}
}
