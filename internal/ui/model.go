package ui

import (
	"reflect"

	"github.com/atomicstack/zarr-ls/internal/backend"
	"github.com/atomicstack/zarr-ls/internal/driver"
	"github.com/atomicstack/zarr-ls/internal/theme"
	uistate "github.com/atomicstack/zarr-ls/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// outcome records how the menu was left.
type outcome struct {
	label     string
	chosen    bool
	cancelled bool
	stale     bool
}

// Model implements the Bubble Tea model for a single navigation menu.
type Model struct {
	level             *level
	title             string
	notice            string
	errMsg            string
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	watcher           *backend.Watcher
	preview           *previewData
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	result outcome
}

// NewModel builds the menu for req. A nil watcher disables live refresh.
func NewModel(req driver.Request, opts Options, watcher *backend.Watcher) *Model {
	m := &Model{
		level:      uistate.NewLevel(req.Title, uistate.ItemsFromLabels(req.Labels)),
		title:      req.Title,
		notice:     req.Notice,
		showFooter: opts.ShowFooter,
		watcher:    watcher,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.refreshPreview()
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatchEvent(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Result reports the label chosen when the program ended. A menu closed
// without a choice yields driver.ErrCancelled, one invalidated by a
// directory change yields driver.ErrStale.
func (m *Model) Result() (string, error) {
	switch {
	case m.result.stale:
		return "", driver.ErrStale
	case m.result.chosen:
		return m.result.label, nil
	default:
		return "", driver.ErrCancelled
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(watchEventMsg{}):     m.handleWatchEventMsg,
		reflect.TypeOf(watchDoneMsg{}):      m.handleWatchDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
