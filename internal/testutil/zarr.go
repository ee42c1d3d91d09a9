// Package testutil builds on-disk fixtures shared by package tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteV3Group creates dir with a zarr.json group document.
func WriteV3Group(t *testing.T, dir string) {
	t.Helper()
	WriteJSON(t, filepath.Join(dir, "zarr.json"), map[string]interface{}{
		"zarr_format": 3,
		"node_type":   "group",
		"attributes":  map[string]interface{}{},
	})
}

// WriteV3Array creates dir with a zarr.json array document. The chunk grid
// uses the array shape as its single chunk.
func WriteV3Array(t *testing.T, dir string, shape []uint64, dtype string) {
	t.Helper()
	WriteJSON(t, filepath.Join(dir, "zarr.json"), map[string]interface{}{
		"zarr_format": 3,
		"node_type":   "array",
		"shape":       shape,
		"data_type":   dtype,
		"chunk_grid": map[string]interface{}{
			"name":          "regular",
			"configuration": map[string]interface{}{"chunk_shape": shape},
		},
		"chunk_key_encoding": map[string]interface{}{"name": "default"},
		"fill_value":         0,
		"codecs":             []interface{}{map[string]interface{}{"name": "bytes"}},
	})
}

// WriteV2Group creates dir with a .zgroup document and optional .zattrs.
func WriteV2Group(t *testing.T, dir string, attrs map[string]interface{}) {
	t.Helper()
	WriteJSON(t, filepath.Join(dir, ".zgroup"), map[string]interface{}{"zarr_format": 2})
	if attrs != nil {
		WriteJSON(t, filepath.Join(dir, ".zattrs"), attrs)
	}
}

// WriteV2Array creates dir with a .zarray document using a NumPy dtype
// string such as "<f8".
func WriteV2Array(t *testing.T, dir string, shape []uint64, dtype string) {
	t.Helper()
	WriteJSON(t, filepath.Join(dir, ".zarray"), map[string]interface{}{
		"zarr_format": 2,
		"shape":       shape,
		"chunks":      shape,
		"dtype":       dtype,
		"compressor":  nil,
		"fill_value":  0,
		"filters":     nil,
		"order":       "C",
	})
}

// WriteJSON marshals v into path, creating parent directories.
func WriteJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	WriteFile(t, path, string(data))
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// Mkdir creates dir and its parents.
func Mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}
