package surface

import (
	"sync"

	"github.com/surfacekit/a2ui"
)

// EventKind identifies the kind of lifecycle event.
type EventKind string

const (
	// SurfaceAdded fires when a surface becomes renderable: its root
	// component id has been set by a beginRendering message. It fires
	// again on every subsequent beginRendering for the same surface.
	SurfaceAdded EventKind = "surface_added"

	// SurfaceUpdated fires when an active surface's component tree or
	// data model changes.
	SurfaceUpdated EventKind = "surface_updated"

	// SurfaceRemoved fires when a surface is deleted.
	SurfaceRemoved EventKind = "surface_removed"
)

// Event is one surface lifecycle occurrence, broadcast to every listener
// of a registry's event stream.
type Event struct {
	// Kind identifies the lifecycle transition.
	Kind EventKind

	// SurfaceID names the affected surface.
	SurfaceID string

	// Definition is the surface's current snapshot. Present for Added and
	// Updated events, nil for Removed.
	Definition *a2ui.UiDefinition
}

// eventChannelCapacity is the buffer of each listener channel. Emission
// never blocks: a full listener drops events.
const eventChannelCapacity = 100

// broadcaster fans events out to any number of subscriber channels.
type broadcaster[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
	closed bool
}

func newBroadcaster[T any]() *broadcaster[T] {
	return &broadcaster[T]{subs: map[int]chan T{}}
}

// subscribe registers a new buffered channel and returns it with a cancel
// function. The channel is closed on cancel or broadcaster close.
func (b *broadcaster[T]) subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan T, eventChannelCapacity)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
}

// emit delivers e to every subscriber without blocking.
func (b *broadcaster[T]) emit(e T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			// Listener is not keeping up - drop rather than stall the
			// message pipeline.
		}
	}
}

// close closes every subscriber channel and rejects future subscriptions.
func (b *broadcaster[T]) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
