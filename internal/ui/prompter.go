package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/zarr-ls/internal/backend"
	"github.com/atomicstack/zarr-ls/internal/driver"
	"github.com/atomicstack/zarr-ls/internal/logging"
	"github.com/atomicstack/zarr-ls/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultWatchInterval spaces directory refreshes.
const DefaultWatchInterval = 500 * time.Millisecond

// Options configures the full-screen prompter.
type Options struct {
	Width         int
	Height        int
	ShowFooter    bool
	Watch         bool
	WatchInterval time.Duration
}

// Prompter shows each menu as a full-screen Bubble Tea program.
type Prompter struct {
	opts        Options
	programOpts []tea.ProgramOption
}

// NewPrompter returns a prompter drawing on the alternate screen.
func NewPrompter(opts Options) *Prompter {
	if opts.WatchInterval <= 0 {
		opts.WatchInterval = DefaultWatchInterval
	}
	return &Prompter{
		opts:        opts,
		programOpts: []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()},
	}
}

// Prompt implements driver.Prompter.
func (p *Prompter) Prompt(req driver.Request) (string, error) {
	var watcher *backend.Watcher
	if p.opts.Watch && req.Dir != "" {
		w, err := backend.NewWatcher(req.Dir, p.opts.WatchInterval)
		if err != nil {
			// The menu still works without live refresh.
			logging.Error(err)
		} else {
			watcher = w
			defer w.Stop()
		}
	}
	events.Prompt.Show(req.Title, len(req.Labels))
	model := NewModel(req, p.opts, watcher)
	final, err := tea.NewProgram(model, p.programOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", driver.ErrCancelled
		}
		return "", fmt.Errorf("run menu: %w", err)
	}
	if done, ok := final.(*Model); ok {
		return done.Result()
	}
	return model.Result()
}
