package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/zarr-ls/internal/driver"
)

func request() driver.Request {
	return driver.Request{
		Title: "/data",
		Labels: []string{
			"raw",
			"Zarr Group: /g - contains 1 elements\n  -> /g/a [4] - int32",
			"..",
			"Exit!",
		},
		Notice: "skipped bad.zarr: no Zarr metadata",
	}
}

func TestPromptByNumber(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("2\n"), &out)
	got, err := p.Prompt(request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != request().Labels[1] {
		t.Fatalf("expected the group label, got %q", got)
	}
	text := out.String()
	for _, want := range []string{"/data", "  1  raw", "  2  Zarr Group: /g - contains 1 elements", "       -> /g/a [4] - int32", "  4  Exit!", "skipped bad.zarr", "Select [1-4]: "} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, text)
		}
	}
}

func TestPromptByLabelAfterInvalidInput(t *testing.T) {
	var out strings.Builder
	p := New(strings.NewReader("\n9\nnope\nExit!\n"), &out)
	got, err := p.Prompt(request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Exit!" {
		t.Fatalf("expected Exit!, got %q", got)
	}
	if !strings.Contains(out.String(), `invalid choice "9"`) || !strings.Contains(out.String(), `invalid choice "nope"`) {
		t.Fatalf("expected invalid-choice messages, got:\n%s", out.String())
	}
}

func TestPromptMatchesFirstLine(t *testing.T) {
	p := New(strings.NewReader("Zarr Group: /g - contains 1 elements\n"), new(strings.Builder))
	got, err := p.Prompt(request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != request().Labels[1] {
		t.Fatalf("expected the full group label, got %q", got)
	}
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("1"), new(strings.Builder))
	got, err := p.Prompt(request())
	if err != nil || got != "raw" {
		t.Fatalf("expected raw, got %q / %v", got, err)
	}
}

func TestPromptEOFCancels(t *testing.T) {
	p := New(strings.NewReader(""), new(strings.Builder))
	if _, err := p.Prompt(request()); !errors.Is(err, driver.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPromptRejectsEmptyMenu(t *testing.T) {
	p := New(strings.NewReader("1\n"), new(strings.Builder))
	if _, err := p.Prompt(driver.Request{Title: "/x"}); err == nil {
		t.Fatal("expected an error for a menu without entries")
	}
}
