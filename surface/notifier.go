package surface

import (
	"sync"

	"github.com/surfacekit/a2ui"
)

// DefinitionNotifier is a shared, observable holder for one surface's
// current definition. Its value is nil while the surface is pending
// (no beginRendering yet) and after the surface is removed.
type DefinitionNotifier struct {
	mu        sync.Mutex
	current   *a2ui.UiDefinition
	nextID    int
	listeners map[int]func(*a2ui.UiDefinition)
}

func newDefinitionNotifier() *DefinitionNotifier {
	return &DefinitionNotifier{listeners: map[int]func(*a2ui.UiDefinition){}}
}

// Current returns the surface's definition, or nil while the surface is
// not active.
func (n *DefinitionNotifier) Current() *a2ui.UiDefinition {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Listen registers a callback invoked on every definition change. The
// returned cancel function removes the listener.
func (n *DefinitionNotifier) Listen(fn func(*a2ui.UiDefinition)) (cancel func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.mu.Unlock()
	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

func (n *DefinitionNotifier) publish(def *a2ui.UiDefinition) {
	n.mu.Lock()
	n.current = def
	fns := make([]func(*a2ui.UiDefinition), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(def)
	}
}
