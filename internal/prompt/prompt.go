// Package prompt implements a line-oriented menu for use without a
// terminal: the entries are printed as a numbered list and the choice is
// read from a line of input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/zarr-ls/internal/driver"
	"github.com/atomicstack/zarr-ls/internal/format/table"
	"github.com/atomicstack/zarr-ls/internal/logging/events"
)

// Prompter reads choices from in and writes menus to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements driver.Prompter. A choice is either the entry number or
// the entry's text; anything else asks again. End of input cancels.
func (p *Prompter) Prompt(req driver.Request) (string, error) {
	if len(req.Labels) == 0 {
		return "", fmt.Errorf("prompt %s: no entries", req.Title)
	}
	events.Prompt.Show(req.Title, len(req.Labels))
	p.render(req)
	for {
		fmt.Fprintf(p.out, "Select [1-%d]: ", len(req.Labels))
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read choice: %w", err)
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			if err != nil {
				fmt.Fprintln(p.out)
				events.Prompt.Cancel(req.Title)
				return "", driver.ErrCancelled
			}
			continue
		}
		if label, ok := resolve(req.Labels, answer); ok {
			events.Prompt.Choose(req.Title, label)
			return label, nil
		}
		fmt.Fprintf(p.out, "invalid choice %q\n", answer)
		if err != nil {
			events.Prompt.Cancel(req.Title)
			return "", driver.ErrCancelled
		}
	}
}

func (p *Prompter) render(req driver.Request) {
	fmt.Fprintln(p.out, req.Title)
	rows := make([][]string, 0, len(req.Labels))
	for i, label := range req.Labels {
		lines := strings.Split(label, "\n")
		rows = append(rows, []string{strconv.Itoa(i + 1), lines[0]})
		for _, more := range lines[1:] {
			rows = append(rows, []string{"", more})
		}
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}) {
		fmt.Fprintln(p.out, "  "+line)
	}
	if req.Notice != "" {
		fmt.Fprintln(p.out, req.Notice)
	}
}

// resolve maps an answer to a label: a 1-based index, the full label, or
// the label's first line.
func resolve(labels []string, answer string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(labels) {
			return labels[n-1], true
		}
		return "", false
	}
	for _, label := range labels {
		if label == answer {
			return label, true
		}
	}
	for _, label := range labels {
		if first, _, _ := strings.Cut(label, "\n"); first == answer {
			return label, true
		}
	}
	return "", false
}
