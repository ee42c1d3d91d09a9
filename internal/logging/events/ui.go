package events

import "github.com/atomicstack/zarr-ls/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type PromptTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Prompt = PromptTracer{}
)

func (UITracer) MenuEnter(title, label, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"title":  title,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"title": title, "cursor": cursor})
}

func (UITracer) MenuBack(title string) {
	logging.Trace("menu.back", map[string]interface{}{"title": title})
}

func (FilterTracer) Cleared(title string) {
	logging.Trace("filter.clear", map[string]interface{}{"title": title})
}

func (FilterTracer) WordBackspace(title, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"title": title, "filter": filter})
}

func (FilterTracer) Cursor(title string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"title": title, "cursor": pos})
}

func (FilterTracer) CursorWord(title string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"title": title, "cursor": pos})
}

func (FilterTracer) Append(title, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"title": title, "filter": filter})
}

func (FilterTracer) Backspace(title, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"title": title, "filter": filter})
}

func (PromptTracer) Show(title string, entries int) {
	logging.Trace("prompt.show", map[string]interface{}{"title": title, "entries": entries})
}

func (PromptTracer) Choose(title, label string) {
	logging.Trace("prompt.choose", map[string]interface{}{"title": title, "label": label})
}

func (PromptTracer) Cancel(title string) {
	logging.Trace("prompt.cancel", map[string]interface{}{"title": title})
}

func (PromptTracer) Stale(title string) {
	logging.Trace("prompt.stale", map[string]interface{}{"title": title})
}
