package data

import (
	"log/slog"
	"strconv"

	"github.com/surfacekit/a2ui"
)

// Model holds one surface's reactive data tree: a single JSON value
// (the root is conventionally an object) plus path-keyed subscriptions.
// One Model exists per surface and lives exactly as long as the surface.
//
// Mutation is single-writer: all writes flow through the surface registry
// on one coordination goroutine. Reads through notifiers are multi-reader.
type Model struct {
	logger *slog.Logger
	root   a2ui.Value
	subs   map[string]*subscription
}

type subscription struct {
	path     Path
	notifier *Notifier
}

// NewModel creates an empty model whose root is an empty object.
// A nil logger falls back to slog.Default.
func NewModel(logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		logger: logger,
		root:   a2ui.Object{},
		subs:   map[string]*subscription{},
	}
}

// Root returns the current root value.
func (m *Model) Root() a2ui.Value {
	return m.root
}

// Update writes contents at path and notifies overlapping subscribers.
//
// An empty path replaces the root: an array of {key, valueString|
// valueNumber|valueBoolean|valueMap} entries is folded into a fresh root
// object, an object replaces the root directly, and anything else resets
// the root to an empty object. Root replacement overlaps every path, so
// every subscriber is notified.
//
// A non-empty path descends from the root, creating missing containers
// along the way: a list when the next segment parses as a non-negative
// integer, otherwise a map. Terminal list writes append at index == len,
// replace at index < len, and are silently dropped past the end.
func (m *Model) Update(path Path, contents a2ui.Value) {
	if path.IsEmpty() {
		m.root = m.decodeRoot(contents)
	} else {
		m.root = m.setAt(m.root, path.Segments(), path, contents)
	}
	m.notifySubscribers(path)
}

// decodeRoot interprets a root-replacement payload.
func (m *Model) decodeRoot(contents a2ui.Value) a2ui.Value {
	switch v := contents.(type) {
	case a2ui.Array:
		return m.decodeEntries(v)
	case a2ui.Object:
		return v
	default:
		if !a2ui.IsNull(contents) {
			m.logger.Warn("data: root update with non-container contents, resetting root",
				"kind", kindName(contents))
		}
		return a2ui.Object{}
	}
}

// entryValueKeys lists the recognized value fields of a root-hydration
// entry, in the order they are consulted.
var entryValueKeys = []string{"valueString", "valueNumber", "valueBoolean", "valueMap"}

// decodeEntries folds {key, value*} entries into an object. Each entry
// contributes its key mapped to the first value field present; a valueMap
// field is itself decoded recursively. Entries without a usable key or
// value are recoverable anomalies: they are logged and skipped.
func (m *Model) decodeEntries(entries a2ui.Array) a2ui.Object {
	out := make(a2ui.Object, len(entries))
	for _, raw := range entries {
		entry, ok := a2ui.AsObject(raw)
		if !ok {
			m.logger.Warn("data: dropping non-object root entry", "kind", kindName(raw))
			continue
		}
		key, ok := a2ui.AsString(entry["key"])
		if !ok || key == "" {
			m.logger.Warn("data: dropping root entry without key")
			continue
		}
		value, found := m.entryValue(entry)
		if !found {
			m.logger.Warn("data: root entry has no value field, omitting key", "key", key)
			continue
		}
		out[key] = value
	}
	return out
}

// entryValue picks the first recognized value field of an entry.
func (m *Model) entryValue(entry a2ui.Object) (a2ui.Value, bool) {
	for _, key := range entryValueKeys {
		v, present := entry[key]
		if !present {
			continue
		}
		if key == "valueMap" {
			switch mv := v.(type) {
			case a2ui.Array:
				return m.decodeEntries(mv), true
			case a2ui.Object:
				return mv, true
			default:
				return a2ui.Object{}, true
			}
		}
		return v, true
	}
	return nil, false
}

// setAt writes contents under node at the given segments, creating
// intermediate containers as needed, and returns the (possibly new) node.
// full is the complete written path, carried for log context only.
func (m *Model) setAt(node a2ui.Value, segments []string, full Path, contents a2ui.Value) a2ui.Value {
	seg := segments[0]
	terminal := len(segments) == 1

	switch container := node.(type) {
	case a2ui.Object:
		if terminal {
			container[seg] = contents
			return container
		}
		child, ok := container[seg]
		if !ok || !isContainer(child) {
			child = newContainerFor(segments[1])
		}
		container[seg] = m.setAt(child, segments[1:], full, contents)
		return container

	case a2ui.Array:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			m.logger.Warn("data: non-numeric segment into list, dropping write",
				"segment", seg, "path", full.String())
			return container
		}
		switch {
		case idx < len(container):
			if terminal {
				container[idx] = contents
			} else {
				child := container[idx]
				if !isContainer(child) {
					child = newContainerFor(segments[1])
				}
				container[idx] = m.setAt(child, segments[1:], full, contents)
			}
			return container
		case idx == len(container):
			if terminal {
				return append(container, contents)
			}
			child := m.setAt(newContainerFor(segments[1]), segments[1:], full, contents)
			return append(container, child)
		default:
			// Writes past the append position never grow the list.
			m.logger.Warn("data: list write beyond append position, dropping",
				"index", idx, "length", len(container), "path", full.String())
			return container
		}

	default:
		// A scalar in the middle of the path: replace it with the
		// container the next step needs so the write can land.
		m.logger.Debug("data: overwriting scalar with container",
			"segment", seg, "path", full.String())
		fresh := newContainerFor(seg)
		return m.setAt(fresh, segments, full, contents)
	}
}

// GetValue walks the tree along path. It returns false when a segment is
// missing, a list is addressed with a non-numeric or out-of-range
// segment, or a scalar is indexed further.
func (m *Model) GetValue(path Path) (a2ui.Value, bool) {
	node := m.root
	for _, seg := range path.Segments() {
		switch container := node.(type) {
		case a2ui.Object:
			child, ok := container[seg]
			if !ok {
				return nil, false
			}
			node = child
		case a2ui.Array:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(container) {
				return nil, false
			}
			node = container[idx]
		default:
			return nil, false
		}
	}
	return node, true
}

// Subscribe returns the live notifier for path, seeded with the path's
// current value. Subscribing twice to one path returns the same notifier
// instance, refreshed to the current value; consumers of a path share one
// observable.
func (m *Model) Subscribe(path Path) *Notifier {
	key := path.Key()
	value, ok := m.GetValue(path)
	if sub, exists := m.subs[key]; exists {
		sub.notifier.store(value, ok)
		return sub.notifier
	}
	sub := &subscription{path: path, notifier: newNotifier(value, ok)}
	m.subs[key] = sub
	return sub.notifier
}

// Unsubscribe drops the subscription for path, if any. Listeners already
// registered on the returned notifier stop receiving pushes.
func (m *Model) Unsubscribe(path Path) {
	delete(m.subs, path.Key())
}

// notifySubscribers recomputes and pushes the value of every subscription
// whose path is an ancestor or descendant of the written path. Writing
// /items/0/title therefore reaches a watcher of /items, and replacing
// /items wholesale reaches a watcher of /items/0/title, while /x stays
// untouched by either.
func (m *Model) notifySubscribers(written Path) {
	for _, sub := range m.subs {
		if !sub.path.StartsWith(written) && !written.StartsWith(sub.path) {
			continue
		}
		value, ok := m.GetValue(sub.path)
		sub.notifier.publish(value, ok)
	}
}

// Close drops every subscription.
func (m *Model) Close() {
	m.subs = map[string]*subscription{}
}

// newContainerFor picks the container kind for a missing child: a list
// when the upcoming segment is a non-negative integer, otherwise a map.
func newContainerFor(nextSegment string) a2ui.Value {
	if idx, err := strconv.Atoi(nextSegment); err == nil && idx >= 0 {
		return a2ui.Array{}
	}
	return a2ui.Object{}
}

func isContainer(v a2ui.Value) bool {
	switch v.(type) {
	case a2ui.Object, a2ui.Array:
		return true
	default:
		return false
	}
}

func kindName(v a2ui.Value) string {
	switch v.(type) {
	case nil, a2ui.Null:
		return "null"
	case a2ui.Bool:
		return "bool"
	case a2ui.Number:
		return "number"
	case a2ui.String:
		return "string"
	case a2ui.Array:
		return "array"
	case a2ui.Object:
		return "object"
	default:
		return "unknown"
	}
}
