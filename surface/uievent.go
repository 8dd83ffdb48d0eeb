package surface

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/surfacekit/a2ui"
)

// UiEvent is a user interaction reported by the rendering layer: a
// button press, a form submit, any action a rendered component declares.
// It travels on a separate outbound stream toward the agent, decoupled
// from the surface-update pipeline.
type UiEvent struct {
	// EventID uniquely identifies the event. Assigned when empty.
	EventID string

	// Name is the action name declared by the component.
	Name string

	// SurfaceID names the surface the action originated on.
	SurfaceID string

	// ComponentID identifies the source component.
	ComponentID string

	// Context carries free-form action context resolved by the renderer.
	Context map[string]a2ui.Value

	// Timestamp is when the action occurred. Assigned when zero.
	Timestamp time.Time
}

// uiEventEnvelope is the outbound wire shape.
type uiEventEnvelope struct {
	UserAction uiActionBody `json:"userAction"`
}

type uiActionBody struct {
	EventID     string         `json:"eventId"`
	Name        string         `json:"name"`
	SurfaceID   string         `json:"surfaceId,omitempty"`
	ComponentID string         `json:"componentId"`
	Context     map[string]any `json:"context,omitempty"`
	Timestamp   string         `json:"timestamp"`
}

// HandleUiEvent serializes ev to a JSON envelope and republishes it on
// the outbound action stream. Serialization failures are logged and
// dropped; nothing on this path is fatal.
func (r *Registry) HandleUiEvent(ev UiEvent) {
	if r.closed {
		return
	}
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	var ctx map[string]any
	if len(ev.Context) > 0 {
		ctx = make(map[string]any, len(ev.Context))
		for k, v := range ev.Context {
			ctx[k] = a2ui.ToAny(v)
		}
	}

	envelope := uiEventEnvelope{UserAction: uiActionBody{
		EventID:     ev.EventID,
		Name:        ev.Name,
		SurfaceID:   ev.SurfaceID,
		ComponentID: ev.ComponentID,
		Context:     ctx,
		Timestamp:   ev.Timestamp.UTC().Format(time.RFC3339Nano),
	}}
	payload, err := json.Marshal(envelope)
	if err != nil {
		r.logger.Warn("surface: dropping unserializable ui event",
			"name", ev.Name, "component_id", ev.ComponentID, "error", err)
		return
	}
	r.logger.Debug("surface: ui action",
		"name", ev.Name,
		"surface_id", ev.SurfaceID,
		"component_id", ev.ComponentID)
	r.actions.emit(payload)
}

// Actions subscribes to the outbound action stream: JSON envelopes
// produced by HandleUiEvent, ready for the transport to send to the
// agent.
func (r *Registry) Actions() (<-chan []byte, func()) {
	return r.actions.subscribe()
}
