package agui

import (
	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/surfacekit/a2ui"
	"github.com/surfacekit/a2ui/data"
	"github.com/surfacekit/a2ui/surface"
)

// Custom event names used for surface lifecycle on the AG-UI stream.
const (
	EventSurfaceAdded   = "a2ui.surfaceAdded"
	EventSurfaceUpdated = "a2ui.surfaceUpdated"
	EventSurfaceRemoved = "a2ui.surfaceRemoved"
	EventUserAction     = "a2ui.userAction"
)

// Bridge converts surface lifecycle events to AG-UI protocol events so
// AG-UI frontends can observe an A2UI engine: lifecycle transitions
// travel as CUSTOM events and data-model contents as STATE_SNAPSHOT.
//
// Create a new Bridge per run. A Bridge is not safe for concurrent use;
// each streaming goroutine should own its own.
type Bridge struct {
	threadID string
	runID    string
}

// NewBridge creates a Bridge for a single run. Empty ids are generated.
func NewBridge(threadID, runID string) *Bridge {
	if threadID == "" {
		threadID = events.GenerateThreadID()
	}
	if runID == "" {
		runID = events.GenerateRunID()
	}
	return &Bridge{threadID: threadID, runID: runID}
}

// ThreadID returns the thread id for this bridge.
func (b *Bridge) ThreadID() string { return b.threadID }

// RunID returns the run id for this bridge.
func (b *Bridge) RunID() string { return b.runID }

// RunStarted returns a RUN_STARTED event.
func (b *Bridge) RunStarted() events.Event {
	return events.NewRunStartedEvent(b.threadID, b.runID)
}

// RunFinished returns a RUN_FINISHED event.
func (b *Bridge) RunFinished() events.Event {
	return events.NewRunFinishedEvent(b.threadID, b.runID)
}

// RunError returns a RUN_ERROR event.
func (b *Bridge) RunError(err error) events.Event {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return events.NewRunErrorEvent(msg)
}

// MapEvent converts one surface lifecycle event to an AG-UI event.
func (b *Bridge) MapEvent(e surface.Event) events.Event {
	switch e.Kind {
	case surface.SurfaceAdded:
		return events.NewCustomEvent(EventSurfaceAdded,
			events.WithValue(definitionPayload(e.SurfaceID, e.Definition)))
	case surface.SurfaceUpdated:
		return events.NewCustomEvent(EventSurfaceUpdated,
			events.WithValue(definitionPayload(e.SurfaceID, e.Definition)))
	case surface.SurfaceRemoved:
		return events.NewCustomEvent(EventSurfaceRemoved,
			events.WithValue(map[string]any{"surfaceId": e.SurfaceID}))
	default:
		return nil
	}
}

// DataSnapshot returns a STATE_SNAPSHOT event carrying one surface's
// current data-model tree, keyed by surface id.
func (b *Bridge) DataSnapshot(surfaceID string, model *data.Model) events.Event {
	return events.NewStateSnapshotEvent(map[string]any{
		surfaceID: a2ui.ToAny(model.Root()),
	})
}

// MapStream maps a lifecycle stream to an AG-UI event stream, framing it
// with RUN_STARTED and RUN_FINISHED. The returned channel closes when the
// input closes.
func (b *Bridge) MapStream(in <-chan surface.Event) <-chan events.Event {
	out := make(chan events.Event, 100)
	go func() {
		defer close(out)
		out <- b.RunStarted()
		for e := range in {
			if mapped := b.MapEvent(e); mapped != nil {
				out <- mapped
			}
		}
		out <- b.RunFinished()
	}()
	return out
}

// definitionPayload renders a definition to the wire shape carried in
// surface lifecycle custom events.
func definitionPayload(surfaceID string, def *a2ui.UiDefinition) map[string]any {
	payload := map[string]any{"surfaceId": surfaceID}
	if def == nil {
		return payload
	}
	if def.RootComponentID != "" {
		payload["root"] = def.RootComponentID
	}
	if def.CatalogID != "" {
		payload["catalogId"] = def.CatalogID
	}
	if len(def.Styles) > 0 {
		styles := make(map[string]any, len(def.Styles))
		for k, v := range def.Styles {
			styles[k] = a2ui.ToAny(v)
		}
		payload["styles"] = styles
	}
	components := make([]map[string]any, 0, len(def.Components))
	for _, c := range def.Components {
		entry := map[string]any{
			"id":        c.ID,
			"component": a2ui.ToAny(a2ui.Object(c.Properties)),
		}
		if c.Weight != nil {
			entry["weight"] = *c.Weight
		}
		components = append(components, entry)
	}
	payload["components"] = components
	return payload
}
