package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	previewMaxDisplayLines = 20  // inline preview only
	previewPanelMinWidth   = 40  // below this the preview is drawn inline
	previewPanelFraction   = 0.6 // share of the width given to the side panel

	// status line + filter prompt
	bottomBarRows = 2

	footerHint = "↑/↓ move  enter select  esc back  ctrl+u clear  ctrl+c quit"
)

var (
	previewBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	previewScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// hasSidePreview reports whether the preview is drawn to the right of the
// menu rather than below it.
func (m *Model) hasSidePreview() bool {
	return m.levelHasPreview() && m.previewPanelWidth() > 0
}

// previewPanelWidth returns 0 when the terminal is too narrow to split.
func (m *Model) previewPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) menuColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.hasSidePreview() {
		return m.viewSideBySide()
	}
	return m.viewVertical()
}

// menuLines renders the header, the visible window of items, the notice,
// and the footer.
func (m *Model) menuLines(width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	if m.title != "" {
		lines = append(lines, styledLine{text: m.title, style: styles.Header})
	}
	current := m.level
	m.syncViewport()
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = clampInt(current.ViewportOffset, 0, len(displayItems)-maxItems)
			current.ViewportOffset = start
			displayItems = displayItems[start : start+maxItems]
		}
		for i, item := range displayItems {
			lines = append(lines, m.buildItemLine(item.ID, item.Label, start+i, width))
		}
	}
	if m.notice != "" {
		lines = append(lines, styledLine{}, styledLine{text: m.notice, style: styles.Notice})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerHint, style: styles.Footer})
	}
	return lines
}

// bottomBar renders the status line and the filter prompt across the full
// width.
func (m *Model) bottomBar() []styledLine {
	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	return applyWidth([]styledLine{status, {text: m.filterPrompt()}}, m.width)
}

func (m *Model) viewVertical() string {
	lines := m.menuLines(m.width)
	if preview := m.preview; preview != nil {
		lines = append(lines, styledLine{}, styledLine{text: preview.title, style: styles.PreviewTitle})
		for _, line := range previewDisplayLines(preview) {
			lines = append(lines, styledLine{text: line, style: styles.PreviewBody})
		}
	}
	lines = limitHeight(lines, m.height-bottomBarRows, m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, m.bottomBar()...)
	return renderLines(lines)
}

func (m *Model) viewSideBySide() string {
	menuW := m.menuColumnWidth()
	prevW := m.previewPanelWidth()

	contentLines := m.menuLines(menuW)
	panelH := max(m.height-bottomBarRows, 1)
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}
	contentLines = applyWidth(contentLines, menuW)

	// Pad every row to menuW visible columns so the panel stays flush right.
	leftRows := strings.Split(renderLines(contentLines), "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > menuW {
			leftRows[i] = truncate.StringWithTail(row, uint(menuW-1), "…")
		} else if w < menuW {
			leftRows[i] = row + strings.Repeat(" ", menuW-w)
		}
	}
	leftStr := strings.Join(leftRows, "\n")
	rightStr := m.renderPreviewPanel(m.preview, prevW, panelH)
	top := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)
	return top + "\n" + renderLines(m.bottomBar())
}

func (m *Model) buildItemLine(id, label string, idx, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if isControlLabel(id) {
		lineStyle = styles.Control
	}
	if idx == m.level.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// renderPreviewPanel draws the bordered preview box with exactly height
// rows and totalWidth columns.
func (m *Model) renderPreviewPanel(preview *previewData, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)

	titleLabel := "Details"
	scrollInfo := ""
	var contentLines []string
	if preview != nil {
		titleLabel = preview.title
		if len(preview.lines) > 0 {
			preview.scrollOffset = clampInt(preview.scrollOffset, 0, max(len(preview.lines)-innerH, 0))
			end := min(preview.scrollOffset+innerH, len(preview.lines))
			contentLines = preview.lines[preview.scrollOffset:end]
			scrollInfo = fmt.Sprintf(" %d/%d ", preview.scrollOffset+len(contentLines), len(preview.lines))
		}
	} else {
		contentLines = []string{"(no details)"}
	}

	titleSeg := " " + titleLabel + " "
	scrollSeg := scrollInfo
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg) - lipgloss.Width(scrollSeg)
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - lipgloss.Width(titleSeg)
	}
	if dashes < 0 {
		titleSeg = truncate.StringWithTail(titleSeg, uint(max(totalWidth-4, 1)), "…")
		dashes = max(totalWidth-4-lipgloss.Width(titleSeg), 0)
	}
	topLine := previewBorderStyle.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		previewBorderStyle.Render(strings.Repeat(hz, dashes)) +
		previewScrollStyle.Render(scrollSeg) +
		previewBorderStyle.Render(hz+trc)
	bottomLine := previewBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(contentLines) {
			content = contentLines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, previewBorderStyle.Render(vt)+styles.PreviewBody.Render(content)+previewBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

func previewDisplayLines(data *previewData) []string {
	if len(data.lines) > previewMaxDisplayLines {
		return append(data.lines[:previewMaxDisplayLines-1:previewMaxDisplayLines-1], "…")
	}
	return data.lines
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows
	if m.title != "" {
		used++
	}
	if m.notice != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if !m.hasSidePreview() && m.preview != nil {
		used += 2 + len(previewDisplayLines(m.preview))
	}
	return max(m.height-used, 1)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width columns. Styled text goes through
// reflow so its escape sequences survive.
func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	if strings.Contains(text, "\x1b[") {
		return truncate.StringWithTail(text, uint(width-1), "…")
	}
	runes := []rune(text)
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
