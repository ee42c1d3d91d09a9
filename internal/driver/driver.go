// Package driver runs the menu loop: list the navigator's options, prompt
// for one, advance, repeat until the session ends.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/zarr-ls/internal/logging"
	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/atomicstack/zarr-ls/internal/nav"
)

var (
	// ErrCancelled is returned by a Prompter when the user aborts the
	// prompt. The driver treats it as choosing Exit.
	ErrCancelled = errors.New("prompt cancelled")
	// ErrStale is returned by a Prompter when the listing it shows went out
	// of date. The driver lists again without advancing.
	ErrStale = errors.New("listing changed")
)

// Request is one menu to show.
type Request struct {
	Title  string
	Labels []string
	// Dir is the directory backing the listing, empty inside a hierarchy.
	Dir string
	// Notice is an optional status line, such as skipped entries.
	Notice string
}

// Prompter renders a request and returns the chosen label.
type Prompter interface {
	Prompt(req Request) (string, error)
}

// Run drives nav until the user exits or an error ends the session. Exit
// and cancellation return nil; an Error selection or a failed listing is
// printed to out and returned as a *SessionError.
func Run(n *nav.Navigator, p Prompter, out io.Writer) error {
	for {
		opts, err := n.Options()
		if err != nil {
			return fail(out, err)
		}
		req := Request{
			Title:  n.Title(),
			Labels: opts.Labels(),
			Dir:    n.WatchDir(),
			Notice: notice(opts.Warnings),
		}
		label, err := p.Prompt(req)
		var sel nav.Selection
		switch {
		case errors.Is(err, ErrStale):
			continue
		case errors.Is(err, ErrCancelled):
			sel = nav.Exit()
		case err != nil:
			return fail(out, fmt.Errorf("prompt: %w", err))
		default:
			chosen, ok := opts.Get(label)
			if !ok {
				panic(fmt.Sprintf("driver: prompt returned %q which is not in the menu", label))
			}
			sel = chosen
		}
		step, err := n.Advance(sel)
		if err != nil {
			return fail(out, err)
		}
		if step == nav.Terminate {
			events.App.Exit("exit")
			fmt.Fprintln(out, "Exiting")
			return nil
		}
	}
}

// SessionError wraps the error that ended a session after the driver has
// already shown it to the user.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string { return e.Err.Error() }

func (e *SessionError) Unwrap() error { return e.Err }

func fail(out io.Writer, err error) error {
	logging.Error(err)
	events.App.Exit(err.Error())
	fmt.Fprintln(out, err.Error())
	return &SessionError{Err: err}
}

func notice(warnings []string) string {
	switch len(warnings) {
	case 0:
		return ""
	case 1:
		return warnings[0]
	default:
		return fmt.Sprintf("%s (and %d more skipped)", warnings[0], len(warnings)-1)
	}
}
