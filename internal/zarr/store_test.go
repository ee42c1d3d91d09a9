package zarr_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/zarr-ls/internal/testutil"
	"github.com/atomicstack/zarr-ls/internal/zarr"
	"github.com/google/go-cmp/cmp"
)

func TestOpenRootV3Hierarchy(t *testing.T) {
	store := filepath.Join(t.TempDir(), "cube.zarr")
	testutil.WriteV3Group(t, store)
	testutil.WriteV3Array(t, filepath.Join(store, "temp"), []uint64{10, 10}, "float32")
	testutil.WriteV3Group(t, filepath.Join(store, "aux"))
	testutil.WriteV3Array(t, filepath.Join(store, "aux", "mask"), []uint64{4}, "bool")
	testutil.Mkdir(t, filepath.Join(store, "c"))         // chunk directory, no metadata
	testutil.WriteV3Group(t, filepath.Join(store, ".tmp")) // hidden

	root, err := zarr.OpenRoot(store)
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	if root.Path() != "/" || root.IsArray() {
		t.Fatalf("unexpected root %q array=%v", root.Path(), root.IsArray())
	}
	if root.Store().Path() != store {
		t.Fatalf("expected store path %q, got %q", store, root.Store().Path())
	}

	var paths []string
	for _, child := range root.Children() {
		paths = append(paths, child.Path())
	}
	if diff := cmp.Diff([]string{"/aux", "/temp"}, paths); diff != "" {
		t.Fatalf("unexpected children (-want +got):\n%s", diff)
	}

	temp := root.Children()[1]
	meta, ok := temp.Metadata().(*zarr.ArrayMetadata)
	if !ok {
		t.Fatalf("expected array metadata, got %T", temp.Metadata())
	}
	if meta.ZarrFormat != 3 || meta.DataType != "float32" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if diff := cmp.Diff([]uint64{10, 10}, meta.Shape); diff != "" {
		t.Fatalf("unexpected shape (-want +got):\n%s", diff)
	}
	if temp.Path() != "/temp" || len(temp.Children()) != 0 {
		t.Fatalf("unexpected array node %q with %d children", temp.Path(), len(temp.Children()))
	}

	aux := root.Children()[0]
	if len(aux.Children()) != 1 || aux.Children()[0].Path() != "/aux/mask" {
		t.Fatalf("expected nested array /aux/mask, got %d children", len(aux.Children()))
	}
}

func TestOpenRootV2Hierarchy(t *testing.T) {
	store := filepath.Join(t.TempDir(), "legacy.zarr")
	testutil.WriteV2Group(t, store, map[string]interface{}{"title": "legacy"})
	testutil.WriteV2Array(t, filepath.Join(store, "elevation"), []uint64{3, 4}, "<f8")
	testutil.WriteV2Array(t, filepath.Join(store, "labels"), []uint64{3}, "|S10")

	root, err := zarr.OpenRoot(store)
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	group := root.Metadata().(*zarr.GroupMetadata)
	if group.ZarrFormat != 2 || !strings.Contains(group.Pretty(), `"zarr_format": 2`) {
		t.Fatalf("unexpected group metadata %+v", group)
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if dtype := children[0].Metadata().(*zarr.ArrayMetadata).DataType; dtype != "float64" {
		t.Fatalf("expected <f8 mapped to float64, got %q", dtype)
	}
	if dtype := children[1].Metadata().(*zarr.ArrayMetadata).DataType; dtype != "|S10" {
		t.Fatalf("expected unmapped dtype kept, got %q", dtype)
	}
}

func TestV2AttributeFilesAreIgnored(t *testing.T) {
	store := filepath.Join(t.TempDir(), "attrs.zarr")
	testutil.WriteV2Group(t, store, nil)
	testutil.WriteFile(t, filepath.Join(store, ".zattrs"), "{not json")
	testutil.WriteV2Array(t, filepath.Join(store, "v"), []uint64{2}, "<i4")
	testutil.WriteFile(t, filepath.Join(store, "v", ".zattrs"), "{not json")

	root, err := zarr.OpenRoot(store)
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	arr := root.Children()[0].Metadata().(*zarr.ArrayMetadata)
	if arr.DataType != "int32" || strings.Contains(arr.Pretty(), "not json") {
		t.Fatalf("unexpected array metadata %q / %s", arr.DataType, arr.Pretty())
	}
}

func TestV3ExtensionDataType(t *testing.T) {
	store := filepath.Join(t.TempDir(), "ext.zarr")
	testutil.WriteV3Group(t, store)
	testutil.WriteJSON(t, filepath.Join(store, "dt", "zarr.json"), map[string]interface{}{
		"zarr_format": 3,
		"node_type":   "array",
		"shape":       []int{2},
		"data_type":   map[string]interface{}{"name": "numpy.datetime64", "configuration": map[string]interface{}{"unit": "s"}},
	})
	root, err := zarr.OpenRoot(store)
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	if dtype := root.Children()[0].Metadata().(*zarr.ArrayMetadata).DataType; dtype != "numpy.datetime64" {
		t.Fatalf("expected extension name, got %q", dtype)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := zarr.Open(filepath.Join(dir, "missing.zarr")); err == nil {
		t.Fatal("expected error for missing store")
	}

	empty := filepath.Join(dir, "empty.zarr")
	testutil.Mkdir(t, empty)
	if _, err := zarr.Open(empty); !errors.Is(err, zarr.ErrNotStore) {
		t.Fatalf("expected ErrNotStore, got %v", err)
	}

	broken := filepath.Join(dir, "broken.zarr")
	testutil.WriteFile(t, filepath.Join(broken, "zarr.json"), "{not json")
	if _, err := zarr.OpenRoot(broken); err == nil || !strings.Contains(err.Error(), "zarr.json") {
		t.Fatalf("expected parse error naming zarr.json, got %v", err)
	}

	badChild := filepath.Join(dir, "child.zarr")
	testutil.WriteV3Group(t, badChild)
	testutil.WriteFile(t, filepath.Join(badChild, "x", "zarr.json"), `{"zarr_format": 3, "node_type": "widget"}`)
	if _, err := zarr.OpenRoot(badChild); err == nil || !strings.Contains(err.Error(), "/x") {
		t.Fatalf("expected error naming /x, got %v", err)
	}
}

func TestStoreNamesAndURLs(t *testing.T) {
	for name, want := range map[string]bool{
		"cube.zarr":     true,
		"CUBE.ZARR":     true,
		"cube.zarr.bak": false,
		"zarr":          false,
	} {
		if got := zarr.IsStoreName(name); got != want {
			t.Fatalf("IsStoreName(%q) = %v, want %v", name, got, want)
		}
	}
	for target, want := range map[string]bool{
		"s3://bucket/cube.zarr":  true,
		"https://host/cube.zarr": true,
		"/data/cube.zarr":        false,
		"./odd://name":           false,
	} {
		if got := zarr.IsURL(target); got != want {
			t.Fatalf("IsURL(%q) = %v, want %v", target, got, want)
		}
	}
	if _, err := zarr.OpenURL("s3://bucket/cube.zarr"); !errors.Is(err, zarr.ErrRemoteUnsupported) {
		t.Fatalf("expected ErrRemoteUnsupported, got %v", err)
	}
}

func TestPrettyIndentsDocument(t *testing.T) {
	store := filepath.Join(t.TempDir(), "p.zarr")
	testutil.WriteFile(t, filepath.Join(store, "zarr.json"), `{"zarr_format":3,"node_type":"group","attributes":{"a":1}}`)
	root, err := zarr.OpenRoot(store)
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	want := "{\n  \"zarr_format\": 3,\n  \"node_type\": \"group\",\n  \"attributes\": {\n    \"a\": 1\n  }\n}"
	if got := root.Metadata().Pretty(); got != want {
		t.Fatalf("unexpected pretty output:\n%s", got)
	}
}
