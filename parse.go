package a2ui

import "encoding/json"

// ParseMessage decodes a message envelope into a typed Message. The
// envelope must carry exactly one of the four recognized top-level keys;
// otherwise a *UnknownMessageTypeError is returned with the payload
// attached for diagnostics.
//
// Field decoding is permissive: missing strings default to "", missing
// lists to empty, and malformed component entries are dropped. Malformed
// input past the envelope key never produces an error.
func ParseMessage(payload map[string]any) (Message, error) {
	if body, ok := nestedObject(payload, KeySurfaceUpdate); ok {
		return Message{SurfaceUpdate: &SurfaceUpdate{
			SurfaceID:  stringField(body, "surfaceId"),
			Components: decodeComponents(body["components"]),
		}}, nil
	}
	if body, ok := nestedObject(payload, KeyDataModelUpdate); ok {
		return Message{DataModelUpdate: &DataModelUpdate{
			SurfaceID: stringField(body, "surfaceId"),
			Path:      stringField(body, "path"),
			Contents:  FromAny(body["contents"]),
		}}, nil
	}
	if body, ok := nestedObject(payload, KeyBeginRendering); ok {
		return Message{BeginRendering: &BeginRendering{
			SurfaceID: stringField(body, "surfaceId"),
			Root:      stringField(body, "root"),
			Styles:    decodeStyles(body["styles"]),
			CatalogID: stringField(body, "catalogId"),
		}}, nil
	}
	if body, ok := nestedObject(payload, KeySurfaceDeletion); ok {
		return Message{SurfaceDeletion: &SurfaceDeletion{
			SurfaceID: stringField(body, "surfaceId"),
		}}, nil
	}
	return Message{}, &UnknownMessageTypeError{Payload: payload}
}

// ParseMessageJSON decodes raw JSON into a typed Message.
func ParseMessageJSON(data []byte) (Message, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return Message{}, err
	}
	return ParseMessage(payload)
}

// nestedObject returns the object under key. A present key whose value is
// not an object decodes as an empty body rather than failing.
func nestedObject(payload map[string]any, key string) (map[string]any, bool) {
	raw, ok := payload[key]
	if !ok {
		return nil, false
	}
	body, ok := raw.(map[string]any)
	if !ok {
		return map[string]any{}, true
	}
	return body, true
}

func stringField(body map[string]any, key string) string {
	s, _ := body[key].(string)
	return s
}

// decodeComponents decodes a component list, silently dropping entries
// that are not well-formed objects.
func decodeComponents(raw any) []Component {
	list, ok := raw.([]any)
	if !ok {
		return []Component{}
	}
	components := make([]Component, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		components = append(components, decodeComponent(entry))
	}
	return components
}

func decodeComponent(entry map[string]any) Component {
	c := Component{
		ID:         stringField(entry, "id"),
		Properties: map[string]Value{},
	}
	if props, ok := entry["component"].(map[string]any); ok {
		for k, v := range props {
			c.Properties[k] = FromAny(v)
		}
	}
	if w, ok := entry["weight"].(float64); ok {
		weight := int(w)
		c.Weight = &weight
	}
	return c
}

func decodeStyles(raw any) map[string]Value {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	styles := make(map[string]Value, len(obj))
	for k, v := range obj {
		styles[k] = FromAny(v)
	}
	return styles
}
