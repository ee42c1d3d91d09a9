package ui

import (
	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/atomicstack/zarr-ls/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// handleEscapeKey clears an active filter first; with no filter it picks the
// Back entry so Esc behaves like choosing "..".
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.level
	if current.Filter != "" {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		events.Filter.Cleared(m.title)
		m.afterCursorMove()
		return nil
	}
	events.UI.MenuBack(m.title)
	return m.choose(nav.BackLabel)
}

func (m *Model) handleEnterKey() tea.Cmd {
	item, ok := m.level.Current()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(m.title, item.Label, m.level.Filter)
	return m.choose(item.ID)
}

func (m *Model) choose(label string) tea.Cmd {
	m.result = outcome{label: label, chosen: true}
	events.Prompt.Choose(m.title, label)
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.result = outcome{cancelled: true}
	events.Prompt.Cancel(m.title)
	return tea.Quit
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		events.UI.MenuCursor(m.title, m.level.Cursor)
	}
	m.afterCursorMove()
}

func (m *Model) afterCursorMove() {
	m.refreshPreview()
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.level.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	current := m.level
	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancel()
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "ctrl+p":
		m.moveCursor(current.MoveCursorUp)
	case "down", "ctrl+n":
		m.moveCursor(current.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return current.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return current.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor(current.MoveCursorHome)
	case "end":
		m.moveCursor(current.MoveCursorEnd)
	}
	return nil
}

func isControlLabel(label string) bool {
	return label == nav.BackLabel || label == nav.ExitLabel
}
