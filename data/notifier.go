package data

import (
	"sync"

	"github.com/surfacekit/a2ui"
)

// Notifier is a shared, observable holder for one path's current value.
// A Model hands out one Notifier per subscribed path; any number of
// consumers may read it or register listeners concurrently. Pushes are
// synchronous: listeners run inside the write that triggered them.
type Notifier struct {
	mu        sync.Mutex
	value     a2ui.Value
	ok        bool
	nextID    int
	listeners map[int]func(a2ui.Value, bool)
}

func newNotifier(value a2ui.Value, ok bool) *Notifier {
	return &Notifier{
		value:     value,
		ok:        ok,
		listeners: map[int]func(a2ui.Value, bool){},
	}
}

// Value returns the current value and whether the watched path currently
// resolves to one.
func (n *Notifier) Value() (a2ui.Value, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.value, n.ok
}

// Listen registers a callback invoked on every push. The returned cancel
// function removes the listener.
func (n *Notifier) Listen(fn func(value a2ui.Value, ok bool)) (cancel func()) {
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

// store updates the held value without notifying listeners. Used when a
// repeated Subscribe refreshes an existing notifier.
func (n *Notifier) store(value a2ui.Value, ok bool) {
	n.mu.Lock()
	n.value = value
	n.ok = ok
	n.mu.Unlock()
}

// publish updates the held value and pushes it to every listener.
func (n *Notifier) publish(value a2ui.Value, ok bool) {
	n.mu.Lock()
	n.value = value
	n.ok = ok
	fns := make([]func(a2ui.Value, bool), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(value, ok)
	}
}
