package surface

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfacekit/a2ui"
	"github.com/surfacekit/a2ui/data"
)

func surfaceUpdate(id string, components ...map[string]any) map[string]any {
	list := make([]any, len(components))
	for i, c := range components {
		list[i] = c
	}
	return map[string]any{"surfaceUpdate": map[string]any{
		"surfaceId":  id,
		"components": list,
	}}
}

func beginRendering(id, root string) map[string]any {
	return map[string]any{"beginRendering": map[string]any{
		"surfaceId": id,
		"root":      root,
	}}
}

func textComponent(id, text string) map[string]any {
	return map[string]any{
		"id":        id,
		"component": map[string]any{"Text": map[string]any{"text": text}},
	}
}

// drain collects the events currently buffered on ch.
func drain(ch <-chan Event) []Event {
	var out []Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestRegistryLifecycleOrdering(t *testing.T) {
	reg := NewRegistry(nil)
	events, cancel := reg.Events()
	defer cancel()

	// Tree content arrives before the render signal; the surface stays
	// pending and silent.
	require.NoError(t, reg.HandleMessage(surfaceUpdate("main", textComponent("title", "hello"))))
	assert.Empty(t, drain(events), "pending surface should not emit")
	assert.Nil(t, reg.SurfaceNotifier("main").Current())

	require.NoError(t, reg.HandleMessage(beginRendering("main", "title")))
	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, SurfaceAdded, got[0].Kind)
	assert.Equal(t, "main", got[0].SurfaceID)
	require.NotNil(t, got[0].Definition)
	assert.Equal(t, "title", got[0].Definition.RootComponentID)

	def := reg.SurfaceNotifier("main").Current()
	require.NotNil(t, def)
	root, ok := def.Root()
	require.True(t, ok)
	assert.Equal(t, "Text", root.Type())
}

func TestRegistryRepeatedBeginRendering(t *testing.T) {
	reg := NewRegistry(nil)
	events, cancel := reg.Events()
	defer cancel()

	require.NoError(t, reg.HandleMessage(beginRendering("main", "a")))
	require.NoError(t, reg.HandleMessage(beginRendering("main", "b")))

	got := drain(events)
	require.Len(t, got, 2)
	assert.Equal(t, SurfaceAdded, got[0].Kind)
	assert.Equal(t, SurfaceAdded, got[1].Kind, "re-issued beginRendering reads as a rebuild")
	assert.Equal(t, "b", got[1].Definition.RootComponentID)
}

func TestRegistryMergeNotReplace(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.HandleMessage(surfaceUpdate("main",
		textComponent("a", "one"), textComponent("b", "two"))))
	require.NoError(t, reg.HandleMessage(beginRendering("main", "a")))

	events, cancel := reg.Events()
	defer cancel()

	require.NoError(t, reg.HandleMessage(surfaceUpdate("main", textComponent("a", "updated"))))

	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, SurfaceUpdated, got[0].Kind)

	def := got[0].Definition
	require.NotNil(t, def)
	a, _ := def.Component("a")
	text, _ := a2ui.AsString(a.TypeProperties()["text"])
	assert.Equal(t, "updated", text)
	_, stillThere := def.Component("b")
	assert.True(t, stillThere, "untouched components survive a partial update")
}

func TestRegistryDataModelUpdate(t *testing.T) {
	reg := NewRegistry(nil)

	t.Run("pending surface caches silently", func(t *testing.T) {
		events, cancel := reg.Events()
		defer cancel()
		require.NoError(t, reg.HandleMessage(map[string]any{
			"dataModelUpdate": map[string]any{
				"surfaceId": "main",
				"path":      "/user/name",
				"contents":  "Taylor",
			},
		}))
		assert.Empty(t, drain(events))

		v, ok := reg.DataModelFor("main").GetValue(data.ParsePath("/user/name"))
		require.True(t, ok)
		assert.Equal(t, a2ui.String("Taylor"), v)
	})

	t.Run("active surface reports updated", func(t *testing.T) {
		require.NoError(t, reg.HandleMessage(beginRendering("main", "r")))
		events, cancel := reg.Events()
		defer cancel()
		require.NoError(t, reg.HandleMessage(map[string]any{
			"dataModelUpdate": map[string]any{
				"surfaceId": "main",
				"path":      "/user/name",
				"contents":  "Jordan",
			},
		}))
		got := drain(events)
		require.Len(t, got, 1)
		assert.Equal(t, SurfaceUpdated, got[0].Kind)
	})
}

func TestRegistryDeletion(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.HandleMessage(beginRendering("main", "r")))
	reg.DataModelFor("main").Update(data.ParsePath("/x"), a2ui.Number(1))

	notifier := reg.SurfaceNotifier("main")
	events, cancel := reg.Events()
	defer cancel()

	require.NoError(t, reg.HandleMessage(map[string]any{
		"deleteSurface": map[string]any{"surfaceId": "main"},
	}))

	got := drain(events)
	require.Len(t, got, 1)
	assert.Equal(t, SurfaceRemoved, got[0].Kind)
	assert.Nil(t, notifier.Current(), "removed surface clears its notifier")
	assert.Empty(t, reg.SurfaceIDs())

	t.Run("deleting again is a no-op", func(t *testing.T) {
		require.NoError(t, reg.HandleMessage(map[string]any{
			"deleteSurface": map[string]any{"surfaceId": "main"},
		}))
		assert.Empty(t, drain(events))
	})

	t.Run("the id can start a fresh cycle", func(t *testing.T) {
		require.NoError(t, reg.HandleMessage(beginRendering("main", "r2")))
		got := drain(events)
		require.Len(t, got, 1)
		assert.Equal(t, SurfaceAdded, got[0].Kind)

		_, ok := reg.DataModelFor("main").GetValue(data.ParsePath("/x"))
		assert.False(t, ok, "old data must not resurrect")
	})
}

func TestRegistryUnknownMessage(t *testing.T) {
	reg := NewRegistry(nil)
	err := reg.HandleMessage(map[string]any{"mystery": map[string]any{}})
	require.Error(t, err)
	assert.True(t, a2ui.IsUnknownMessageType(err))
}

func TestRegistryClose(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.HandleMessage(beginRendering("main", "r")))

	events, cancel := reg.Events()
	defer cancel()
	drain(events)

	reg.Close()

	err := reg.HandleMessage(beginRendering("main", "r"))
	assert.ErrorIs(t, err, ErrClosed)

	_, open := <-events
	assert.False(t, open, "event channel closes with the registry")

	// Closing twice is fine.
	reg.Close()
}

func TestRegistryMultipleSurfaces(t *testing.T) {
	reg := NewRegistry(nil)
	require.NoError(t, reg.HandleMessage(beginRendering("a", "r")))
	require.NoError(t, reg.HandleMessage(beginRendering("b", "r")))

	ids := reg.SurfaceIDs()
	assert.ElementsMatch(t, []string{"a", "b"}, ids)

	reg.DataModelFor("a").Update(data.ParsePath("/only"), a2ui.Bool(true))
	_, ok := reg.DataModelFor("b").GetValue(data.ParsePath("/only"))
	assert.False(t, ok, "models are isolated per surface")
}

func TestRegistryHandleUiEvent(t *testing.T) {
	reg := NewRegistry(nil)
	actions, cancel := reg.Actions()
	defer cancel()

	reg.HandleUiEvent(UiEvent{
		Name:        "submit",
		SurfaceID:   "main",
		ComponentID: "form",
		Context:     map[string]a2ui.Value{"email": a2ui.String("t@example.com")},
	})

	var payload []byte
	select {
	case payload = <-actions:
	default:
		t.Fatal("expected an action on the stream")
	}

	var envelope map[string]map[string]any
	require.NoError(t, json.Unmarshal(payload, &envelope))
	action, ok := envelope["userAction"]
	require.True(t, ok)
	assert.Equal(t, "submit", action["name"])
	assert.Equal(t, "main", action["surfaceId"])
	assert.Equal(t, "form", action["componentId"])
	assert.NotEmpty(t, action["eventId"], "missing event ids get assigned")
	assert.NotEmpty(t, action["timestamp"])
	ctx, ok := action["context"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "t@example.com", ctx["email"])
}

func TestBroadcasterDropsWhenFull(t *testing.T) {
	b := newBroadcaster[int]()
	ch, cancel := b.subscribe()
	defer cancel()

	for i := 0; i < eventChannelCapacity+10; i++ {
		b.emit(i)
	}
	// A stalled listener never blocks the emitter; the channel simply
	// holds the first eventChannelCapacity values.
	assert.Len(t, ch, eventChannelCapacity)
}
