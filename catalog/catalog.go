// Package catalog maintains the registry of component types a client can
// render, and turns it into the tool-facing descriptions an agent needs
// to drive surfaces. The catalog is consulted only when describing
// available UI to the agent; inbound component payloads of any shape are
// accepted and stored without validation.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// ComponentType describes one renderable component: its type tag (the
// single top-level key of a Component's property map), a description for
// the agent, and a JSON Schema for its property object.
type ComponentType struct {
	// Name is the type tag, e.g. "Text".
	Name string

	// Description tells the agent what the component renders.
	Description string

	// Properties is the JSON Schema of the component's property object.
	Properties json.RawMessage
}

// Tool is a tool-shaped view of the catalog, suitable for handing to a
// tool-calling LLM API or an MCP server.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// ErrTypeAlreadyRegistered is returned when registering a duplicate
// component type name.
type ErrTypeAlreadyRegistered struct {
	Name string
}

func (e *ErrTypeAlreadyRegistered) Error() string {
	return fmt.Sprintf("catalog: component type %q already registered", e.Name)
}

// Catalog is a concurrent-safe registry of component types, identified by
// a catalog id that beginRendering messages can reference.
type Catalog struct {
	id string

	mu    sync.RWMutex
	types map[string]ComponentType
}

// New creates an empty catalog with the given id.
func New(id string) *Catalog {
	return &Catalog{
		id:    id,
		types: map[string]ComponentType{},
	}
}

// ID returns the catalog id.
func (c *Catalog) ID() string { return c.id }

// Register adds a component type. Registering a name twice is an error.
func (c *Catalog) Register(t ComponentType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.types[t.Name]; exists {
		return &ErrTypeAlreadyRegistered{Name: t.Name}
	}
	c.types[t.Name] = t
	return nil
}

// MustRegister is like Register but panics on error.
func (c *Catalog) MustRegister(t ComponentType) {
	if err := c.Register(t); err != nil {
		panic(err)
	}
}

// Get looks up a component type by name.
func (c *Catalog) Get(name string) (ComponentType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[name]
	return t, ok
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.types)
}

// Types returns all registered component types, sorted by name.
func (c *Catalog) Types() []ComponentType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]ComponentType, 0, len(c.types))
	for _, t := range c.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Tools returns one Tool per component type, named "render_<Type>".
func (c *Catalog) Tools() []Tool {
	types := c.Types()
	tools := make([]Tool, len(types))
	for i, t := range types {
		tools[i] = Tool{
			Name:        "render_" + t.Name,
			Description: t.Description,
			Parameters:  t.Properties,
		}
	}
	return tools
}

// Document renders the whole catalog as one JSON document: the shape sent
// to an agent so it knows which component types this client renders and
// what their property schemas are.
func (c *Catalog) Document() (json.RawMessage, error) {
	types := c.Types()
	components := make([]map[string]any, len(types))
	for i, t := range types {
		var props any
		if len(t.Properties) > 0 {
			if err := json.Unmarshal(t.Properties, &props); err != nil {
				return nil, fmt.Errorf("catalog: component type %q: %w", t.Name, err)
			}
		}
		components[i] = map[string]any{
			"name":        t.Name,
			"description": t.Description,
			"properties":  props,
		}
	}
	return json.Marshal(map[string]any{
		"catalogId":  c.id,
		"components": components,
	})
}
