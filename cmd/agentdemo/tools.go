package main

import (
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/surfacekit/a2ui/catalog"
)

// envelopeTool defines the single tool the model uses to drive surfaces:
// each call carries one A2UI message envelope. The envelope bodies are
// left open - the engine accepts component payloads of any shape and the
// catalog in the system prompt tells the model what to emit.
func envelopeTool() anthropic.ToolUnionParam {
	properties := map[string]any{
		"surfaceUpdate": map[string]any{
			"type":        "object",
			"description": "Add or replace components on a surface: {surfaceId, components: [{id, component, weight?}]}",
		},
		"dataModelUpdate": map[string]any{
			"type":        "object",
			"description": "Write into a surface's data model: {surfaceId, path?, contents}",
		},
		"beginRendering": map[string]any{
			"type":        "object",
			"description": "Make a surface renderable: {surfaceId, root, styles?, catalogId?}",
		},
		"deleteSurface": map[string]any{
			"type":        "object",
			"description": "Remove a surface: {surfaceId}",
		},
	}

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        "send_a2ui_message",
			Description: anthropic.String("Send one A2UI protocol message to the client. Set exactly one of surfaceUpdate, dataModelUpdate, beginRendering, or deleteSurface."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: properties,
			},
		},
	}
}

// buildSystemPrompt embeds the catalog document so the model knows the
// component vocabulary.
func buildSystemPrompt(cat *catalog.Catalog) (string, error) {
	doc, err := cat.Document()
	if err != nil {
		return "", err
	}
	var pretty json.RawMessage = doc
	formatted, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		formatted = doc
	}
	return fmt.Sprintf(`You drive a client UI by sending A2UI protocol messages with the send_a2ui_message tool.

Build a surface by sending surfaceUpdate messages with components, then a beginRendering message naming the root component id. Components reference each other by id. Component property maps have exactly one top-level key: the component type. Use dataModelUpdate to write values that components bind to by path.

The client renders this component catalog:

%s`, formatted), nil
}
