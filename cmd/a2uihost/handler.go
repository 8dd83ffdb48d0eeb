package main

import (
	"fmt"
	"log/slog"
	"net/http"

	aguievents "github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/surfacekit/a2ui/agui"
	"github.com/surfacekit/a2ui/surface"
)

// EventsHandler streams surface lifecycle as AG-UI events over SSE. Each
// connected client gets its own lifecycle subscription and bridge.
type EventsHandler struct {
	registry *surface.Registry
	logger   *slog.Logger
}

// NewEventsHandler creates a handler over the given registry.
func NewEventsHandler(reg *surface.Registry, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{registry: reg, logger: logger}
}

// ServeHTTP handles GET requests by streaming lifecycle events until the
// client disconnects.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.logger.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("streaming not supported")
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	lifecycle, stop := h.registry.Events()
	defer stop()

	bridge := agui.NewBridge("", r.URL.Query().Get("runId"))
	log := h.logger.With("run_id", bridge.RunID())
	log.Info("event stream opened")

	stream := bridge.MapStream(lifecycle)
	var sent int
	for {
		select {
		case <-r.Context().Done():
			log.Info("event stream closed", "events_sent", sent)
			return
		case ev, ok := <-stream:
			if !ok {
				log.Info("event stream ended", "events_sent", sent)
				return
			}
			if err := writeSSE(w, flusher, ev); err != nil {
				log.Warn("failed to write SSE event", "error", err)
				return
			}
			sent++
		}
	}
}

// writeSSE writes one AG-UI event in SSE format.
func writeSSE(w http.ResponseWriter, flusher http.Flusher, ev aguievents.Event) error {
	data, err := ev.ToJSON()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
