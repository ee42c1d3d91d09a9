package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/zarr-ls/internal/driver"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsTitleItemsAndNotice(t *testing.T) {
	m := NewModel(driver.Request{
		Title:  "/data",
		Labels: []string{"raw", "results.zarr", "..", "Exit!"},
		Notice: "skipped broken.zarr: no Zarr metadata",
	}, Options{ShowFooter: true}, nil)
	view := m.View()
	for _, want := range []string{"/data", "raw", "results.zarr", "..", "Exit!", "skipped broken.zarr", "esc back", filterPlaceholder[1:]} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestViewReportsNoMatches(t *testing.T) {
	h := NewHarness(newTestModel("raw", ".."))
	h.SendKeys("zzz")
	if view := h.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestViewShowsErrorLine(t *testing.T) {
	m := newTestModel("raw", "..")
	m.errMsg = "watch: boom"
	if view := m.View(); !strings.Contains(view, "Error: watch: boom") {
		t.Fatalf("expected error line, got:\n%s", view)
	}
}

func TestPaginationRespectsViewport(t *testing.T) {
	labels := make([]string, 0, 12)
	for i := 1; i <= 10; i++ {
		labels = append(labels, fmt.Sprintf("dir-%02d", i))
	}
	labels = append(labels, "..", "Exit!")
	m := NewModel(driver.Request{Title: "/data", Labels: labels}, Options{Width: 40, Height: 8}, nil)
	h := NewHarness(m)

	view := h.View()
	if !strings.Contains(view, "dir-05") || strings.Contains(view, "dir-07") {
		t.Fatalf("expected only the first page visible, view =\n%s", view)
	}

	for i := 0; i < 7; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	view = h.View()
	if !strings.Contains(view, "dir-08") {
		t.Fatalf("expected dir-08 to be visible after scrolling, view =\n%s", view)
	}
	if strings.Contains(view, "dir-01") {
		t.Fatalf("expected dir-01 scrolled out, view =\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
	if got := truncateText("abc", 0); got != "abc" {
		t.Fatalf("expected zero width to disable truncation, got %q", got)
	}
}
