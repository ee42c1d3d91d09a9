package events

import "github.com/atomicstack/zarr-ls/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) StartFallback(requested, fallback string, err error) {
	payload := map[string]interface{}{"requested": requested, "fallback": fallback}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.start.fallback", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}
