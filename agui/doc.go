// Package agui bridges an A2UI surface registry onto the AG-UI protocol
// (https://github.com/ag-ui-protocol/ag-ui), the event-stream protocol
// spoken by CopilotKit-style frontends.
//
// AG-UI has no native notion of surfaces, so lifecycle transitions travel
// as CUSTOM events ("a2ui.surfaceAdded", "a2ui.surfaceUpdated",
// "a2ui.surfaceRemoved") whose value carries the surface's definition
// snapshot, and data-model contents travel as STATE_SNAPSHOT events keyed
// by surface id.
//
// Typical server-side use, streaming a registry's lifecycle over SSE:
//
//	bridge := agui.NewBridge("", "")
//	lifecycle, stop := reg.Events()
//	defer stop()
//
//	for ev := range bridge.MapStream(lifecycle) {
//	    data, err := ev.ToJSON()
//	    if err != nil {
//	        continue
//	    }
//	    fmt.Fprintf(w, "data: %s\n\n", data)
//	    flusher.Flush()
//	}
package agui
