package ui

import (
	"fmt"

	"github.com/atomicstack/zarr-ls/internal/backend"
	"github.com/atomicstack/zarr-ls/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

type watchEventMsg struct {
	event backend.Event
}

type watchDoneMsg struct{}

func waitForWatchEvent(w *backend.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	ch := w.Events()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchDoneMsg{}
		}
		return watchEventMsg{event: ev}
	}
}

// handleWatchEventMsg ends the menu as stale when the listed directory
// changes. Watch errors are shown but do not end the menu.
func (m *Model) handleWatchEventMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(watchEventMsg)
	if !ok {
		return nil
	}
	if update.event.Err != nil {
		m.errMsg = fmt.Sprintf("watch: %v", update.event.Err)
		return waitForWatchEvent(m.watcher)
	}
	m.result = outcome{stale: true}
	events.Prompt.Stale(m.title)
	return tea.Quit
}

func (m *Model) handleWatchDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}
