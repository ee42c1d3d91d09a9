package events

import "github.com/atomicstack/zarr-ls/internal/logging"

type WatchTracer struct{}

var Watch = WatchTracer{}

func (WatchTracer) Start(dir string) {
	logging.Trace("watch.start", map[string]interface{}{"dir": dir})
}

// Change records a listing change found after pending filesystem events.
func (WatchTracer) Change(dir string, pending int) {
	logging.Trace("watch.change", map[string]interface{}{"dir": dir, "events": pending})
}

func (WatchTracer) Error(dir string, err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"dir": dir, "error": err.Error()})
}
