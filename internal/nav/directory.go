package nav

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/zarr-ls/internal/logging/events"
	"github.com/atomicstack/zarr-ls/internal/zarr"
)

// ListDirectory returns the navigable children of dir: sub-directories
// first, then Zarr stores, each group in listing order, followed by the
// control entries. Hidden entries are skipped. Stores are opened and parsed
// here; one that cannot be read is left out and reported in Warnings.
func ListDirectory(dir string) (*Options, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("list %s: not a directory", dir)
	}
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	opts := NewOptions()
	var stores []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if zarr.IsStoreName(name) {
			stores = append(stores, name)
			continue
		}
		full := filepath.Join(dir, name)
		if isDirEntry(entry, full) {
			opts.Set(name, Directory(full))
		}
	}
	for _, name := range stores {
		full := filepath.Join(dir, name)
		root, err := zarr.OpenRoot(full)
		if err != nil {
			events.Store.Skip(full, err)
			opts.warn(fmt.Sprintf("skipped %s: %v", name, err))
			continue
		}
		opts.Set(name, Node(root))
	}
	opts.addControls()
	return opts, nil
}

// isDirEntry follows symlinks so linked directories stay navigable.
func isDirEntry(entry fs.DirEntry, full string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}
