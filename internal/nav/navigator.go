// Package nav holds the navigation state machine shared by filesystem
// directories and Zarr hierarchies.
//
// A Navigator rests on a Directory or Node selection and keeps a stack of
// the locations it came from. Back pops that stack; when the stack is empty
// inside a hierarchy, Back leaves the hierarchy for the directory containing
// its store. Listing is delegated to ListDirectory or ListNode depending on
// the current selection.
package nav

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/atomicstack/zarr-ls/internal/zarr"
)

// Step tells the driver whether to keep looping.
type Step int

const (
	Continue Step = iota
	Terminate
)

// Navigator owns the current location and the back-stack.
type Navigator struct {
	current Selection
	history []Selection
	// origin is the store path of the hierarchy entered from a directory.
	origin string
}

// New starts a navigator at start, which must be a Directory or Node.
func New(start Selection) *Navigator {
	if !start.IsLocation() {
		panic(fmt.Sprintf("nav: cannot start at a %s selection", start.Kind()))
	}
	n := &Navigator{current: start}
	if start.Kind() == KindNode && start.ZarrNode().Store() != nil {
		n.origin = start.ZarrNode().Store().Path()
	}
	return n
}

// Start resolves path into the initial selection: a Node when path is a
// Zarr store, otherwise a Directory.
func Start(path string) (Selection, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Selection{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Selection{}, fmt.Errorf("start at %s: %w", path, err)
	}
	if !info.IsDir() {
		return Selection{}, fmt.Errorf("start at %s: not a directory", path)
	}
	if zarr.IsStoreName(abs) {
		root, err := zarr.OpenRoot(abs)
		if err != nil {
			return Selection{}, err
		}
		return Node(root), nil
	}
	return Directory(abs), nil
}

// Current returns the resting selection.
func (n *Navigator) Current() Selection {
	return n.current
}

// Depth returns the number of entries on the back-stack.
func (n *Navigator) Depth() int {
	return len(n.history)
}

// Origin returns the store path remembered for escaping the current
// hierarchy, or "" when none is known.
func (n *Navigator) Origin() string {
	return n.origin
}

// Title describes the current location for prompt headers.
func (n *Navigator) Title() string {
	return n.current.String()
}

// WatchDir returns the directory whose changes invalidate the current
// listing, or "" when the listing does not depend on the filesystem.
func (n *Navigator) WatchDir() string {
	if n.current.Kind() == KindDirectory {
		return n.current.Path()
	}
	return ""
}

// Options lists the children of the current location.
func (n *Navigator) Options() (*Options, error) {
	var (
		opts *Options
		err  error
	)
	switch n.current.Kind() {
	case KindDirectory:
		opts, err = ListDirectory(n.current.Path())
		if err != nil {
			return nil, err
		}
	case KindNode:
		opts = ListNode(n.current.ZarrNode())
	default:
		panic(fmt.Sprintf("nav: options requested while resting on a %s selection", n.current.Kind()))
	}
	events.Nav.Options(n.Title(), opts.Len())
	return opts, nil
}

// Advance applies sel. Exit and Error end the session; Error also returns
// a *SelectionError carrying its message.
func (n *Navigator) Advance(sel Selection) (Step, error) {
	switch sel.Kind() {
	case KindDirectory, KindNode:
		n.forward(sel)
		return Continue, nil
	case KindBack:
		n.back()
		return Continue, nil
	case KindExit:
		events.Nav.Terminate("exit")
		return Terminate, nil
	case KindError:
		events.Nav.Terminate(sel.Message())
		return Terminate, &SelectionError{Message: sel.Message()}
	default:
		panic(fmt.Sprintf("nav: unknown selection kind %d", int(sel.Kind())))
	}
}

func (n *Navigator) forward(sel Selection) {
	prev := n.current
	if prev.Kind() == KindDirectory && sel.Kind() == KindNode {
		if store := sel.ZarrNode().Store(); store != nil {
			n.origin = store.Path()
		}
	}
	n.history = append(n.history, prev)
	n.current = sel
	events.Nav.Advance(prev.String(), sel.String(), len(n.history))
}

func (n *Navigator) back() {
	from := n.current
	if len(n.history) > 0 {
		last := len(n.history) - 1
		n.current = n.history[last]
		n.history[last] = Selection{}
		n.history = n.history[:last]
		events.Nav.Back(from.String(), n.current.String(), len(n.history))
		return
	}
	if from.Kind() == KindNode && n.origin != "" {
		n.current = Directory(filepath.Dir(n.origin))
		events.Nav.Escape(n.origin, n.current.Path())
		return
	}
	events.Nav.BackAtRoot(from.String())
}
