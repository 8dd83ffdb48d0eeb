// Package surface implements the A2UI surface registry: the state
// machine that owns every surface's component tree and data model,
// applies incoming protocol messages, and broadcasts lifecycle events to
// the rendering layer.
//
// A surface id moves through four states. It is Unknown until a message
// or query mentions it; Pending once an entry exists but no root
// component id is set; Active from the moment beginRendering names a
// root; and Removed after deleteSurface, at which point the same id can
// begin a fresh cycle.
//
// Surface updates arriving before beginRendering are cached silently -
// the registry accumulates components but emits nothing until the surface
// is active. This lets an agent stream a whole tree and flip it visible
// with a single final message.
//
// The registry is single-writer: feed it messages from one goroutine.
// Event subscriptions, definition notifiers, and the outbound action
// stream are all safe for concurrent readers.
package surface
