package zarr

// Node is an immutable snapshot of one group or array in a store.
type Node struct {
	store    *Store
	path     string
	meta     Metadata
	children []*Node
}

// NewNode assembles a node outside of a store walk. It is used by callers
// that build hierarchies in memory.
func NewNode(store *Store, nodePath string, meta Metadata, children ...*Node) *Node {
	return &Node{store: store, path: nodePath, meta: meta, children: children}
}

// Path returns the logical path within the store, "/" for the root.
func (n *Node) Path() string {
	return n.path
}

// Store returns the store the node was read from. It may be nil for
// nodes assembled with NewNode.
func (n *Node) Store() *Store {
	return n.store
}

// Metadata returns the node's *ArrayMetadata or *GroupMetadata.
func (n *Node) Metadata() Metadata {
	return n.meta
}

// IsArray reports whether the node is an array.
func (n *Node) IsArray() bool {
	_, ok := n.meta.(*ArrayMetadata)
	return ok
}

// Children returns the node's direct children in name order. The returned
// slice is a copy.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	dup := make([]*Node, len(n.children))
	copy(dup, n.children)
	return dup
}
