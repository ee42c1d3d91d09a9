package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/zarr-ls/internal/driver"
	tea "github.com/charmbracelet/bubbletea"
)

const arrayLabel = "Zarr Array: /temp [10, 10] - float32\n{\n  \"zarr_format\": 3,\n  \"node_type\": \"array\"\n}"

func TestPreviewFollowsMultilineItems(t *testing.T) {
	h := NewHarness(newTestModel(arrayLabel, "..", "Exit!"))
	p := h.Model().preview
	if p == nil {
		t.Fatal("expected a preview for the highlighted array")
	}
	if p.title != "Zarr Array: /temp [10, 10] - float32" || len(p.lines) != 4 {
		t.Fatalf("unexpected preview %#v", p)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if h.Model().preview != nil {
		t.Fatal("expected no preview on a control entry")
	}
}

func TestInlinePreviewOnNarrowTerminal(t *testing.T) {
	m := NewModel(driver.Request{Title: "/data/raw.zarr:/", Labels: []string{arrayLabel, ".."}}, Options{Width: 50}, nil)
	if m.hasSidePreview() {
		t.Fatal("expected no side panel at width 50")
	}
	view := m.View()
	if !strings.Contains(view, `"zarr_format": 3`) {
		t.Fatalf("expected inline details, got:\n%s", view)
	}
}

func TestSidePreviewOnWideTerminal(t *testing.T) {
	m := NewModel(driver.Request{Title: "/data/raw.zarr:/", Labels: []string{arrayLabel, ".."}}, Options{Width: 120, Height: 20}, nil)
	if !m.hasSidePreview() {
		t.Fatal("expected side panel at width 120")
	}
	view := m.View()
	if !strings.Contains(view, "╭") || !strings.Contains(view, `"node_type": "array"`) {
		t.Fatalf("expected bordered details panel, got:\n%s", view)
	}
	if rows := strings.Count(view, "\n") + 1; rows != 20 {
		t.Fatalf("expected 20 rows, got %d", rows)
	}
}

func TestMouseWheelScrollsSidePreview(t *testing.T) {
	var b strings.Builder
	b.WriteString("Zarr Array: /big [1] - int8\n{")
	for i := 0; i < 30; i++ {
		b.WriteString("\n  line")
	}
	b.WriteString("\n}")
	m := NewModel(driver.Request{Title: "/data/big.zarr:/", Labels: []string{b.String(), ".."}}, Options{Width: 120, Height: 10}, nil)
	h := NewHarness(m)

	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if got := m.preview.scrollOffset; got != 3 {
		t.Fatalf("expected offset 3, got %d", got)
	}
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	h.Send(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	if got := m.preview.scrollOffset; got != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", got)
	}
}
