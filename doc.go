// Package a2ui implements the client side of the A2UI protocol: a
// message-based, agent-driven UI protocol in which a remote agent streams
// declarative messages that create, update, and delete named surfaces and
// mutate a per-surface reactive data store.
//
// The root package holds the protocol value types: the JSON [Value]
// union, [Component] and [UiDefinition], the four-kind [Message] union,
// and [ParseMessage]. The engine itself lives in the subpackages:
//
//   - [github.com/surfacekit/a2ui/data]: the path-addressed reactive
//     data model (Path, Model, Context) with overlap-based subscription
//     notification.
//   - [github.com/surfacekit/a2ui/surface]: the surface registry and
//     protocol state machine, emitting lifecycle events to any number of
//     listeners and republishing user actions toward the agent.
//   - [github.com/surfacekit/a2ui/catalog]: the component-type catalog
//     used to describe renderable UI to the agent for tool-calling.
//   - [github.com/surfacekit/a2ui/transport]: connectors that feed
//     decoded message envelopes into a registry.
//   - [github.com/surfacekit/a2ui/agui]: a bridge publishing surface
//     lifecycle onto AG-UI protocol event streams.
//   - [github.com/surfacekit/a2ui/mcp]: MCP exposure of the catalog.
//
// # Message Flow
//
// A transport delivers decoded JSON envelopes to
// [github.com/surfacekit/a2ui/surface.Registry.HandleMessage], which
// parses them, mutates the addressed surface's component tree and data
// model, and emits lifecycle events:
//
//	reg := surface.NewRegistry(nil)
//	events, stop := reg.Events()
//	defer stop()
//
//	_ = reg.HandleMessage(map[string]any{
//	    "surfaceUpdate": map[string]any{
//	        "surfaceId": "s1",
//	        "components": []any{
//	            map[string]any{"id": "root", "component": map[string]any{
//	                "Text": map[string]any{"text": "Hello"},
//	            }},
//	        },
//	    },
//	})
//	_ = reg.HandleMessage(map[string]any{
//	    "beginRendering": map[string]any{"surfaceId": "s1", "root": "root"},
//	})
//
//	ev := <-events // SurfaceAdded for "s1"
//
// # Concurrency
//
// All mutation flows through a single entry point and must be serialized
// by the caller; reads and event streams are multi-reader. See the
// surface package documentation for details.
package a2ui
