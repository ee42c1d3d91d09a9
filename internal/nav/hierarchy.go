package nav

import (
	"github.com/atomicstack/zarr-ls/internal/format/nodefmt"
	"github.com/atomicstack/zarr-ls/internal/zarr"
)

// ListNode returns the children of n labelled with their verbose metadata
// rendering, followed by the control entries.
func ListNode(n *zarr.Node) *Options {
	opts := NewOptions()
	for _, child := range n.Children() {
		opts.Set(nodefmt.Describe(child), Node(child))
	}
	opts.addControls()
	return opts
}
