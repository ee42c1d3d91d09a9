package nav

import (
	"fmt"

	"github.com/atomicstack/zarr-ls/internal/zarr"
)

// Kind discriminates the Selection variants.
type Kind int

const (
	KindDirectory Kind = iota
	KindNode
	KindBack
	KindExit
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindNode:
		return "node"
	case KindBack:
		return "back"
	case KindExit:
		return "exit"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Selection is where the user is, or a control action they picked. Only the
// constructors below produce valid values.
type Selection struct {
	kind    Kind
	path    string
	node    *zarr.Node
	message string
}

// Directory selects a filesystem directory.
func Directory(path string) Selection {
	return Selection{kind: KindDirectory, path: path}
}

// Node selects a node of a parsed Zarr hierarchy.
func Node(n *zarr.Node) Selection {
	if n == nil {
		panic("nav: Node selection requires a node")
	}
	return Selection{kind: KindNode, node: n}
}

// Back requests a step back through the history.
func Back() Selection {
	return Selection{kind: KindBack}
}

// Exit requests the end of the session.
func Exit() Selection {
	return Selection{kind: KindExit}
}

// Error ends the session with message.
func Error(message string) Selection {
	return Selection{kind: KindError, message: message}
}

func (s Selection) Kind() Kind { return s.kind }

// Path is the directory path of a Directory selection.
func (s Selection) Path() string { return s.path }

// ZarrNode is the node of a Node selection.
func (s Selection) ZarrNode() *zarr.Node { return s.node }

// Message is the description carried by an Error selection.
func (s Selection) Message() string { return s.message }

// IsLocation reports whether s can be the navigator's resting state.
func (s Selection) IsLocation() bool {
	return s.kind == KindDirectory || s.kind == KindNode
}

// Equal compares kind and payload. Nodes compare by identity.
func (s Selection) Equal(other Selection) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case KindDirectory:
		return s.path == other.path
	case KindNode:
		return s.node == other.node
	case KindError:
		return s.message == other.message
	default:
		return true
	}
}

func (s Selection) String() string {
	switch s.kind {
	case KindDirectory:
		return s.path
	case KindNode:
		return nodeLocation(s.node)
	case KindError:
		return "error: " + s.message
	default:
		return s.kind.String()
	}
}

func nodeLocation(n *zarr.Node) string {
	if n.Store() == nil {
		return n.Path()
	}
	return n.Store().Path() + ":" + n.Path()
}

// SelectionError carries the message of an Error selection out of Advance.
type SelectionError struct {
	Message string
}

func (e *SelectionError) Error() string {
	return e.Message
}
