package ui

import tea "github.com/charmbracelet/bubbletea"

// previewData holds the full text of the highlighted entry when it spans
// more than one line, as hierarchy entries do.
type previewData struct {
	target       string
	title        string
	lines        []string
	scrollOffset int
}

// refreshPreview rebuilds the preview for the highlighted item, keeping the
// scroll position while the highlight stays put.
func (m *Model) refreshPreview() {
	item, ok := m.level.Current()
	if !ok || !item.Multiline() {
		m.preview = nil
		return
	}
	if m.preview != nil && m.preview.target == item.ID {
		return
	}
	lines := item.Lines()
	m.preview = &previewData{
		target: item.ID,
		title:  lines[0],
		lines:  lines[1:],
	}
}

// levelHasPreview reports whether any entry carries detail lines. Such
// menus reserve room for the preview even while a plain entry is
// highlighted, so the layout does not jump as the cursor moves.
func (m *Model) levelHasPreview() bool {
	for _, item := range m.level.Full {
		if item.Multiline() {
			return true
		}
	}
	return false
}

// handleMouseMsg scrolls the side preview with the mouse wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.hasSidePreview() || m.preview == nil {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPreview(-3)
	case tea.MouseButtonWheelDown:
		m.scrollPreview(3)
	}
	return nil
}

func (m *Model) scrollPreview(delta int) {
	innerH := max(m.height-bottomBarRows-2, 1)
	maxOffset := max(len(m.preview.lines)-innerH, 0)
	m.preview.scrollOffset = clampInt(m.preview.scrollOffset+delta, 0, maxOffset)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
