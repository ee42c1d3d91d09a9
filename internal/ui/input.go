package ui

import (
	"unicode"

	"github.com/atomicstack/zarr-ls/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const filterPlaceholder = "(type to filter)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.level.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// editFilter applies a filter edit and refreshes everything that depends on
// the visible items.
func (m *Model) editFilter(edit func() bool, trace func()) bool {
	before := m.level.FilterCursorPos()
	if !edit() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	trace()
	m.afterCursorMove()
	return true
}

// moveFilterCursor moves the caret within the filter without touching the
// items.
func (m *Model) moveFilterCursor(move func() bool, trace func(string, int)) bool {
	before := m.level.FilterCursorPos()
	if !move() {
		return false
	}
	m.noteFilterCursorChange(before)
	trace(m.title, m.level.FilterCursor)
	return true
}

// handleTextInput consumes keys that edit the filter. It reports whether
// the key was used.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.level
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		return m.editFilter(func() bool {
			current.SetFilter("", 0)
			return true
		}, func() { events.Filter.Cleared(m.title) })
	case "ctrl+w":
		return m.editFilter(current.DeleteFilterWordBackward, func() {
			events.Filter.WordBackspace(m.title, current.Filter)
		})
	case "ctrl+a":
		return m.moveFilterCursor(current.MoveFilterCursorStart, events.Filter.Cursor)
	case "ctrl+e":
		return m.moveFilterCursor(current.MoveFilterCursorEnd, events.Filter.Cursor)
	case "alt+b":
		return m.moveFilterCursor(current.MoveFilterCursorWordBackward, events.Filter.CursorWord)
	case "alt+f":
		return m.moveFilterCursor(current.MoveFilterCursorWordForward, events.Filter.CursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(current.DeleteFilterRuneBackward, func() {
			events.Filter.Backspace(m.title, current.Filter)
		})
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		return m.moveFilterCursor(current.MoveFilterCursorRuneBackward, events.Filter.Cursor)
	case tea.KeyRight:
		return m.moveFilterCursor(current.MoveFilterCursorRuneForward, events.Filter.Cursor)
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	current := m.level
	return m.editFilter(func() bool { return current.InsertFilterText(text) }, func() {
		events.Filter.Append(m.title, current.Filter)
	})
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")
	text := m.level.Filter
	if text == "" {
		runes := []rune(filterPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.level.FilterCursorPos()
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + render(styles.Filter, string(runes[:pos])) + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
