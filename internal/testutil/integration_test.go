package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	binPath   string
	buildOut  []byte
	buildErr  error
)

func TestMain(m *testing.M) {
	code := m.Run()
	if binPath != "" {
		os.RemoveAll(filepath.Dir(binPath))
	}
	os.Exit(code)
}

// buildBinary compiles zarr-ls once per test run and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("skipping: go toolchain not available")
	}
	root := RepoRoot(t)
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "zarr-ls-bin")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "zarr-ls")
		cmd := exec.Command("go", "build", "-o", binPath, ".")
		cmd.Dir = root
		buildOut, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("failed to build binary: %v\n%s", buildErr, buildOut)
	}
	return binPath
}

func TestPlainSessionThroughBinary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := buildBinary(t)

	root := t.TempDir()
	Mkdir(t, filepath.Join(root, "raw"))
	WriteV3Group(t, filepath.Join(root, "cube.zarr"))
	WriteV3Array(t, filepath.Join(root, "cube.zarr", "temp"), []uint64{10, 10}, "float32")

	cmd := exec.Command(bin, "-plain", "-watch=false", "-log-file", filepath.Join(t.TempDir(), "zarr-ls.log"), root)
	cmd.Env = append(os.Environ(), "ZARR_LS_CONFIG=")
	cmd.Stdin = strings.NewReader("cube.zarr\n..\nExit!\n")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("zarr-ls failed: %v\n%s", err, out)
	}
	text := string(out)
	for _, want := range []string{
		"raw",
		"cube.zarr",
		"Zarr Array: /temp [10, 10] - float32",
		`"data_type": "float32"`,
		"Exiting",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestErrorExitStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	bin := buildBinary(t)
	cmd := exec.Command(bin, "-plain", "-log-file", filepath.Join(t.TempDir(), "zarr-ls.log"), "s3://bucket/cube.zarr")
	cmd.Env = append(os.Environ(), "ZARR_LS_CONFIG=")
	out, err := cmd.CombinedOutput()
	exitErr, ok := err.(*exec.ExitError)
	if !ok || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit status 1, got %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "remote zarr stores are not supported") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
