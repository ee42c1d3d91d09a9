package app

import (
	"io"
	"os"

	"github.com/atomicstack/zarr-ls/internal/driver"
	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/atomicstack/zarr-ls/internal/nav"
	"github.com/atomicstack/zarr-ls/internal/prompt"
	"github.com/atomicstack/zarr-ls/internal/ui"
	"github.com/atomicstack/zarr-ls/internal/zarr"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	Start      string
	Width      int
	Height     int
	ShowFooter bool
	Plain      bool
	Watch      bool
}

// Run resolves the start location and drives the menu until the user exits.
// The full-screen menu is used when stdin and stdout are terminals and
// Plain is unset; otherwise choices are read line by line from stdin.
func Run(cfg Config) error {
	var p driver.Prompter
	if !cfg.Plain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		p = ui.NewPrompter(ui.Options{
			Width:      cfg.Width,
			Height:     cfg.Height,
			ShowFooter: cfg.ShowFooter,
			Watch:      cfg.Watch,
		})
	} else {
		p = prompt.New(os.Stdin, os.Stdout)
	}
	return RunWith(cfg, p, os.Stdout)
}

// RunWith is Run with an explicit prompter and output.
func RunWith(cfg Config, p driver.Prompter, out io.Writer) error {
	if zarr.IsURL(cfg.Start) {
		_, err := zarr.OpenURL(cfg.Start)
		return err
	}
	start, err := nav.Start(ResolveStart(cfg.Start))
	if err != nil {
		return err
	}
	return driver.Run(nav.New(start), p, out)
}

// ResolveStart returns requested when it names an existing path, and the
// working directory otherwise.
func ResolveStart(requested string) string {
	if requested != "" {
		_, err := os.Stat(requested)
		if err == nil {
			return requested
		}
		fallback := workingDir()
		events.App.StartFallback(requested, fallback, err)
		return fallback
	}
	return workingDir()
}

func workingDir() string {
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
