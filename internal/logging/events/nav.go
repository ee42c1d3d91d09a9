package events

import "github.com/atomicstack/zarr-ls/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Options(location string, entries int) {
	logging.Trace("nav.options", map[string]interface{}{"location": location, "entries": entries})
}

func (NavTracer) Advance(from, to string, depth int) {
	logging.Trace("nav.advance", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

func (NavTracer) Back(from, to string, depth int) {
	logging.Trace("nav.back", map[string]interface{}{"from": from, "to": to, "depth": depth})
}

// Escape records leaving a hierarchy through its remembered origin.
func (NavTracer) Escape(origin, to string) {
	logging.Trace("nav.escape", map[string]interface{}{"origin": origin, "to": to})
}

func (NavTracer) BackAtRoot(location string) {
	logging.Trace("nav.back.root", map[string]interface{}{"location": location})
}

func (NavTracer) Terminate(reason string) {
	logging.Trace("nav.terminate", map[string]interface{}{"reason": reason})
}
