package events

import "github.com/atomicstack/zarr-ls/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(path string) {
	logging.Trace("store.open", map[string]interface{}{"path": path})
}

func (StoreTracer) OpenError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.open.error", map[string]interface{}{"path": path, "error": err.Error()})
}

// Skip records a store left out of a directory listing.
func (StoreTracer) Skip(path string, err error) {
	details := map[string]interface{}{"path": path}
	if err != nil {
		details["error"] = err.Error()
	}
	logging.Warn("store.skip", details)
}
