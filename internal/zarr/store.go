// Package zarr reads the group/array hierarchy of Zarr stores kept on the
// local filesystem. Only metadata is read; chunk data is never touched.
//
// A store is opened once and its whole node tree is parsed up front, so the
// resulting Node values can be walked without further filesystem access.
// Both Zarr v2 (.zgroup/.zarray) and v3 (zarr.json) layouts are understood.
// v2 attribute files are not read.
package zarr

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/atomicstack/zarr-ls/internal/logging/events"
)

// Extension is the directory suffix that marks a Zarr store.
const Extension = ".zarr"

var (
	// ErrNotStore reports a path that holds no Zarr root metadata.
	ErrNotStore = errors.New("not a zarr store")
	// ErrRemoteUnsupported is returned for URL-addressed stores.
	ErrRemoteUnsupported = errors.New("remote zarr stores are not supported")
)

// Store is a handle on a filesystem-backed Zarr store.
type Store struct {
	path string
}

// IsStoreName reports whether name carries the Zarr store extension.
func IsStoreName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}

// IsURL reports whether target looks like a URL rather than a local path.
func IsURL(target string) bool {
	idx := strings.Index(target, "://")
	return idx > 0 && !strings.ContainsAny(target[:idx], `/\`)
}

// Open validates that dir is a Zarr store and returns a handle on it.
func Open(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		events.Store.OpenError(dir, err)
		return nil, fmt.Errorf("open store %s: %w", dir, err)
	}
	if !info.IsDir() {
		err := fmt.Errorf("open store %s: %w", dir, ErrNotStore)
		events.Store.OpenError(dir, err)
		return nil, err
	}
	if !hasMetadata(dir) {
		err := fmt.Errorf("open store %s: %w", dir, ErrNotStore)
		events.Store.OpenError(dir, err)
		return nil, err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	events.Store.Open(abs)
	return &Store{path: abs}, nil
}

// OpenURL is the hook for remote stores. It always fails.
func OpenURL(url string) (*Store, error) {
	return nil, fmt.Errorf("open store %s: %w", url, ErrRemoteUnsupported)
}

// Path returns the absolute store directory.
func (s *Store) Path() string {
	return s.path
}

// Root parses the store's metadata and returns the root node with every
// descendant attached.
func (s *Store) Root() (*Node, error) {
	return s.readNode(s.path, "/")
}

// OpenRoot opens the store at dir and parses its root node.
func OpenRoot(dir string) (*Node, error) {
	store, err := Open(dir)
	if err != nil {
		return nil, err
	}
	return store.Root()
}

func (s *Store) readNode(dir, nodePath string) (*Node, error) {
	meta, err := readMetadata(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s%s: %w", s.path, displayPath(nodePath), err)
	}
	node := &Node{store: s, path: nodePath, meta: meta}
	if _, ok := meta.(*GroupMetadata); !ok {
		return node, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.IsDir() {
			continue
		}
		childDir := filepath.Join(dir, name)
		if !hasMetadata(childDir) {
			continue
		}
		child, err := s.readNode(childDir, path.Join(nodePath, name))
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}
	return node, nil
}

func displayPath(nodePath string) string {
	if nodePath == "/" {
		return ""
	}
	return nodePath
}

func hasMetadata(dir string) bool {
	for _, name := range []string{v3MetadataFile, v2GroupFile, v2ArrayFile} {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// readMetadata prefers v3 metadata and falls back to the v2 layout.
func readMetadata(dir string) (Metadata, error) {
	if raw, err := os.ReadFile(filepath.Join(dir, v3MetadataFile)); err == nil {
		meta, err := parseV3(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", v3MetadataFile, err)
		}
		return meta, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if raw, err := os.ReadFile(filepath.Join(dir, v2ArrayFile)); err == nil {
		meta, err := parseV2Array(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", v2ArrayFile, err)
		}
		return meta, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	raw, err := os.ReadFile(filepath.Join(dir, v2GroupFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotStore
		}
		return nil, err
	}
	meta, err := parseV2Group(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", v2GroupFile, err)
	}
	return meta, nil
}
