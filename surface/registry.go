package surface

import (
	"errors"
	"log/slog"

	"github.com/surfacekit/a2ui"
	"github.com/surfacekit/a2ui/data"
)

// ErrClosed is returned by HandleMessage after the registry has been
// closed. Callers are expected to stop feeding messages at close; the
// guard turns a late message into a clean rejection instead of mutating
// torn-down state.
var ErrClosed = errors.New("surface: registry closed")

// Registry is the protocol state machine: it owns one UiDefinition and
// one data.Model per surface id, applies incoming messages, and emits
// lifecycle events.
//
// Each surface moves through Unknown -> Pending (entry exists, no root
// id) -> Active (root id set by beginRendering) -> Removed. A removed id
// can start a fresh cycle; old state is never resurrected.
//
// All mutation must flow through HandleMessage (or Apply) serially on one
// goroutine: the registry takes no internal locks around surface state.
// Event streams and notifiers are safe for any number of concurrent
// readers.
type Registry struct {
	logger   *slog.Logger
	surfaces map[string]*entry
	events   *broadcaster[Event]
	actions  *broadcaster[[]byte]
	closed   bool
}

// entry pairs one surface's definition, its change notifier, and its
// data model.
type entry struct {
	definition a2ui.UiDefinition
	notifier   *DefinitionNotifier
	model      *data.Model
}

func (e *entry) active() bool {
	return e.definition.RootComponentID != ""
}

// NewRegistry creates an empty registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:   logger,
		surfaces: map[string]*entry{},
		events:   newBroadcaster[Event](),
		actions:  newBroadcaster[[]byte](),
	}
}

// Events subscribes to the lifecycle event stream. Any number of
// listeners may subscribe; each receives every subsequent event on its
// own buffered channel. The cancel function releases the subscription.
func (r *Registry) Events() (<-chan Event, func()) {
	return r.events.subscribe()
}

// HandleMessage is the single ingestion entry point: it parses a decoded
// JSON envelope and applies it. The only error conditions are an
// unrecognized envelope (*a2ui.UnknownMessageTypeError) and a closed
// registry (ErrClosed); malformed fields inside a recognized envelope
// degrade to defaults instead of failing.
func (r *Registry) HandleMessage(payload map[string]any) error {
	if r.closed {
		return ErrClosed
	}
	msg, err := a2ui.ParseMessage(payload)
	if err != nil {
		return err
	}
	r.Apply(msg)
	return nil
}

// Apply dispatches an already-parsed message. Zero messages are ignored.
func (r *Registry) Apply(msg a2ui.Message) {
	if r.closed {
		return
	}
	switch {
	case msg.SurfaceUpdate != nil:
		r.applySurfaceUpdate(msg.SurfaceUpdate)
	case msg.DataModelUpdate != nil:
		r.applyDataModelUpdate(msg.DataModelUpdate)
	case msg.BeginRendering != nil:
		r.applyBeginRendering(msg.BeginRendering)
	case msg.SurfaceDeletion != nil:
		r.applySurfaceDeletion(msg.SurfaceDeletion)
	}
}

// applySurfaceUpdate merges components into the surface's tree. The
// update is cached silently while the surface is pending; only an active
// surface reports SurfaceUpdated.
func (r *Registry) applySurfaceUpdate(msg *a2ui.SurfaceUpdate) {
	e := r.getOrCreate(msg.SurfaceID)
	e.definition = e.definition.MergeComponents(msg.Components)
	r.logger.Debug("surface: components merged",
		"surface_id", msg.SurfaceID,
		"incoming", len(msg.Components),
		"total", len(e.definition.Components))
	if e.active() {
		def := e.definition
		e.notifier.publish(&def)
		r.events.emit(Event{Kind: SurfaceUpdated, SurfaceID: msg.SurfaceID, Definition: &def})
	}
}

// applyBeginRendering activates the surface. It always reports
// SurfaceAdded, even when the surface was already active: the agent
// re-issuing beginRendering reads as a full rebuild signal.
func (r *Registry) applyBeginRendering(msg *a2ui.BeginRendering) {
	e := r.getOrCreate(msg.SurfaceID)
	e.definition = e.definition.WithRoot(msg.Root, msg.Styles, msg.CatalogID)
	def := e.definition
	e.notifier.publish(&def)
	r.logger.Info("surface: rendering began",
		"surface_id", msg.SurfaceID,
		"root", msg.Root,
		"catalog_id", msg.CatalogID)
	r.events.emit(Event{Kind: SurfaceAdded, SurfaceID: msg.SurfaceID, Definition: &def})
}

// applyDataModelUpdate writes into the surface's data model. The
// definition itself is unchanged; an active surface still reports
// SurfaceUpdated so renderers re-resolve bindings.
func (r *Registry) applyDataModelUpdate(msg *a2ui.DataModelUpdate) {
	e := r.getOrCreate(msg.SurfaceID)
	e.model.Update(data.ParsePath(msg.Path), msg.Contents)
	if e.active() {
		def := e.definition
		r.events.emit(Event{Kind: SurfaceUpdated, SurfaceID: msg.SurfaceID, Definition: &def})
	}
}

// applySurfaceDeletion purges the surface. Deleting an unknown id is a
// no-op with no event.
func (r *Registry) applySurfaceDeletion(msg *a2ui.SurfaceDeletion) {
	e, ok := r.surfaces[msg.SurfaceID]
	if !ok {
		r.logger.Debug("surface: deletion of unknown surface ignored",
			"surface_id", msg.SurfaceID)
		return
	}
	delete(r.surfaces, msg.SurfaceID)
	e.notifier.publish(nil)
	e.model.Close()
	r.logger.Info("surface: removed", "surface_id", msg.SurfaceID)
	r.events.emit(Event{Kind: SurfaceRemoved, SurfaceID: msg.SurfaceID})
}

// SurfaceNotifier returns the definition notifier for id, materializing a
// pending entry when the id is unknown. After a deletion the returned
// notifier belongs to a fresh, empty entry.
func (r *Registry) SurfaceNotifier(id string) *DefinitionNotifier {
	return r.getOrCreate(id).notifier
}

// DataModelFor returns the data model for id, materializing a pending
// entry when the id is unknown.
func (r *Registry) DataModelFor(id string) *data.Model {
	return r.getOrCreate(id).model
}

// SurfaceIDs returns the ids of all current surface entries, pending or
// active.
func (r *Registry) SurfaceIDs() []string {
	ids := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		ids = append(ids, id)
	}
	return ids
}

func (r *Registry) getOrCreate(id string) *entry {
	if e, ok := r.surfaces[id]; ok {
		return e
	}
	e := &entry{
		definition: a2ui.NewUiDefinition(id),
		notifier:   newDefinitionNotifier(),
		model:      data.NewModel(r.logger),
	}
	r.surfaces[id] = e
	r.logger.Debug("surface: entry created", "surface_id", id)
	return e
}

// Close tears the registry down: every surface entry, data model, and
// subscription is cleared synchronously, all event channels are closed,
// and subsequent messages are rejected with ErrClosed.
func (r *Registry) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for id, e := range r.surfaces {
		delete(r.surfaces, id)
		e.notifier.publish(nil)
		e.model.Close()
	}
	r.events.close()
	r.actions.close()
}
