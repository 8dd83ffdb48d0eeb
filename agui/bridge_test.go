package agui

import (
	"testing"

	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	"github.com/surfacekit/a2ui"
	"github.com/surfacekit/a2ui/data"
	"github.com/surfacekit/a2ui/surface"
)

func TestBridge_IDs(t *testing.T) {
	t.Run("given ids are kept", func(t *testing.T) {
		b := NewBridge("thread-1", "run-1")
		if b.ThreadID() != "thread-1" || b.RunID() != "run-1" {
			t.Errorf("got thread %q run %q", b.ThreadID(), b.RunID())
		}
	})

	t.Run("empty ids are generated", func(t *testing.T) {
		b := NewBridge("", "")
		if b.ThreadID() == "" || b.RunID() == "" {
			t.Error("expected generated ids")
		}
	})
}

func TestBridge_RunFraming(t *testing.T) {
	b := NewBridge("thread-1", "run-1")

	if ev := b.RunStarted(); ev.Type() != events.EventTypeRunStarted {
		t.Errorf("expected RUN_STARTED, got %s", ev.Type())
	}
	if ev := b.RunFinished(); ev.Type() != events.EventTypeRunFinished {
		t.Errorf("expected RUN_FINISHED, got %s", ev.Type())
	}
	if ev := b.RunError(nil); ev.Type() != events.EventTypeRunError {
		t.Errorf("expected RUN_ERROR, got %s", ev.Type())
	}
}

func TestBridge_MapEvent(t *testing.T) {
	b := NewBridge("thread-1", "run-1")
	def := a2ui.NewUiDefinition("main").
		MergeComponents([]a2ui.Component{
			{ID: "r", Properties: map[string]a2ui.Value{"Text": a2ui.Object{"text": a2ui.String("hi")}}},
		}).
		WithRoot("r", nil, "a2ui.core")

	kinds := []surface.EventKind{surface.SurfaceAdded, surface.SurfaceUpdated, surface.SurfaceRemoved}
	for _, kind := range kinds {
		t.Run(string(kind)+" maps to CUSTOM", func(t *testing.T) {
			result := b.MapEvent(surface.Event{Kind: kind, SurfaceID: "main", Definition: &def})
			if result == nil {
				t.Fatal("expected event, got nil")
			}
			if result.Type() != events.EventTypeCustom {
				t.Errorf("expected CUSTOM, got %s", result.Type())
			}
		})
	}

	t.Run("unknown kind returns nil", func(t *testing.T) {
		if result := b.MapEvent(surface.Event{Kind: "bogus"}); result != nil {
			t.Errorf("expected nil, got %v", result)
		}
	})
}

func TestBridge_DataSnapshot(t *testing.T) {
	b := NewBridge("thread-1", "run-1")
	m := data.NewModel(nil)
	m.Update(data.ParsePath("/name"), a2ui.String("Taylor"))

	ev := b.DataSnapshot("main", m)
	if ev.Type() != events.EventTypeStateSnapshot {
		t.Errorf("expected STATE_SNAPSHOT, got %s", ev.Type())
	}
}

func TestBridge_MapStream(t *testing.T) {
	b := NewBridge("thread-1", "run-1")
	in := make(chan surface.Event, 2)
	in <- surface.Event{Kind: surface.SurfaceAdded, SurfaceID: "main"}
	in <- surface.Event{Kind: surface.SurfaceRemoved, SurfaceID: "main"}
	close(in)

	var got []events.EventType
	for ev := range b.MapStream(in) {
		got = append(got, ev.Type())
	}

	want := []events.EventType{
		events.EventTypeRunStarted,
		events.EventTypeCustom,
		events.EventTypeCustom,
		events.EventTypeRunFinished,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("event %d: expected %s, got %s", i, w, got[i])
		}
	}
}
