package nodefmt

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/zarr-ls/internal/testutil"
	"github.com/atomicstack/zarr-ls/internal/zarr"
)

func array(path string, shape []uint64, dtype string) *zarr.Node {
	return zarr.NewNode(nil, path, &zarr.ArrayMetadata{ZarrFormat: 3, Shape: shape, DataType: dtype})
}

func group(path string, children ...*zarr.Node) *zarr.Node {
	return zarr.NewNode(nil, path, &zarr.GroupMetadata{ZarrFormat: 3}, children...)
}

func TestDescribeGroupListsChildrenCompactly(t *testing.T) {
	root := group("/",
		array("/temp", []uint64{10, 10}, "float32"),
		group("/aux", array("/aux/mask", []uint64{4}, "bool")),
	)
	testutil.AssertGolden(t, "describe_group.golden", Describe(root))
}

func TestDescribeArrayIncludesMetadataDocument(t *testing.T) {
	store := filepath.Join(t.TempDir(), "cube.zarr")
	testutil.WriteV3Group(t, store)
	testutil.WriteV3Array(t, filepath.Join(store, "temp"), []uint64{10, 10}, "float32")
	root, err := zarr.OpenRoot(store)
	if err != nil {
		t.Fatalf("open root: %v", err)
	}
	got := Describe(root.Children()[0])
	first, rest, _ := strings.Cut(got, "\n")
	if first != "Zarr Array: /temp [10, 10] - float32" {
		t.Fatalf("unexpected header line %q", first)
	}
	if !strings.HasPrefix(rest, "{\n  \"chunk_grid\"") || !strings.Contains(rest, `"data_type": "float32"`) {
		t.Fatalf("expected indented metadata document, got:\n%s", rest)
	}
}

func TestDescribeArrayWithoutDocument(t *testing.T) {
	got := Describe(array("/scalar", []uint64{}, "int64"))
	if got != "Zarr Array: /scalar [] - int64\n{}" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestLinesAndShape(t *testing.T) {
	if got := groupLine(group("/g", array("/g/a", []uint64{1}, "int8"))); got != "/g - contains 1 elements" {
		t.Fatalf("unexpected group line %q", got)
	}
	if got := arrayLine(array("/a", []uint64{3, 4, 5}, "uint16")); got != "/a [3, 4, 5] - uint16" {
		t.Fatalf("unexpected array line %q", got)
	}
	if got := FormatShape(nil); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}

func TestMetadataKindMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for mismatched metadata")
		}
	}()
	// Reading a group as an array is an internal consistency failure.
	arrayMetadata(group("/g"))
}
