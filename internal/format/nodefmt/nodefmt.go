// Package nodefmt renders Zarr nodes as menu text.
package nodefmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/zarr-ls/internal/zarr"
)

const (
	GroupHeader = "Zarr Group: "
	ArrayHeader = "Zarr Array: "

	indentUnit  = "  "
	childMarker = "-> "
)

// Describe renders n verbosely: a header, the node path, and for arrays the
// full metadata document. Group children are listed in compact form.
func Describe(n *zarr.Node) string {
	var b strings.Builder
	write(&b, n, 0)
	return b.String()
}

func write(b *strings.Builder, n *zarr.Node, depth int) {
	if n.IsArray() {
		writeArray(b, n, depth)
		return
	}
	writeGroup(b, n, depth)
}

func writeArray(b *strings.Builder, n *zarr.Node, depth int) {
	meta := arrayMetadata(n)
	if depth > 0 {
		b.WriteString(arrayLine(n))
		return
	}
	b.WriteString(ArrayHeader)
	b.WriteString(arrayLine(n))
	b.WriteByte('\n')
	b.WriteString(meta.Pretty())
}

func writeGroup(b *strings.Builder, n *zarr.Node, depth int) {
	groupMetadata(n)
	if depth == 0 {
		b.WriteString(GroupHeader)
	}
	b.WriteString(groupLine(n))
	for _, child := range n.Children() {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		b.WriteString(childMarker)
		write(b, child, depth+1)
	}
}

func arrayLine(n *zarr.Node) string {
	meta := arrayMetadata(n)
	return fmt.Sprintf("%s %s - %s", n.Path(), FormatShape(meta.Shape), meta.DataType)
}

func groupLine(n *zarr.Node) string {
	groupMetadata(n)
	return fmt.Sprintf("%s - contains %d elements", n.Path(), len(n.Children()))
}

// FormatShape renders dimensions as "[10, 10]".
func FormatShape(shape []uint64) string {
	parts := make([]string, len(shape))
	for i, dim := range shape {
		parts[i] = strconv.FormatUint(dim, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func arrayMetadata(n *zarr.Node) *zarr.ArrayMetadata {
	meta, ok := n.Metadata().(*zarr.ArrayMetadata)
	if !ok {
		panic(fmt.Sprintf("nodefmt: %s is not an array (metadata %T)", n.Path(), n.Metadata()))
	}
	return meta
}

func groupMetadata(n *zarr.Node) *zarr.GroupMetadata {
	meta, ok := n.Metadata().(*zarr.GroupMetadata)
	if !ok {
		panic(fmt.Sprintf("nodefmt: %s is not a group (metadata %T)", n.Path(), n.Metadata()))
	}
	return meta
}
