// Package schema provides a small fluent builder for the JSON Schema
// documents the catalog publishes to describe component properties to the
// agent. Schemas are built once at registration time; nothing in the
// inbound message path consults them.
//
//	props := schema.Object().
//	    Field("text", schema.String().Desc("Literal text or a data-model path").Required()).
//	    Field("softWrap", schema.Bool()).
//	    MustBuild()
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Builder is implemented by all schema builders.
type Builder interface {
	// Build serializes the schema, validating it first.
	Build() (json.RawMessage, error)

	// MustBuild is like Build but panics on error. Catalog registration
	// uses it: an invalid builtin schema is a programming error.
	MustBuild() json.RawMessage

	// schema exposes the internal node for composition.
	schema() *node
}

// node is the internal schema representation.
type node struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	Pattern string `json:"pattern,omitempty"`

	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	Items    *node `json:"items,omitempty"`
	MinItems *int  `json:"minItems,omitempty"`

	Properties           map[string]*node `json:"properties,omitempty"`
	Required             []string         `json:"required,omitempty"`
	AdditionalProperties *bool            `json:"additionalProperties,omitempty"`
}

// Sentinel errors for schema validation.
var (
	// ErrInvalidRange is returned when a minimum exceeds its maximum.
	ErrInvalidRange = errors.New("schema: minimum exceeds maximum")

	// ErrInvalidPattern is returned when a regex pattern does not compile.
	ErrInvalidPattern = errors.New("schema: invalid regex pattern")

	// ErrNilItems is returned when an array has no items schema.
	ErrNilItems = errors.New("schema: array requires items schema")
)

func (n *node) validate() error {
	switch n.Type {
	case "string":
		if n.Pattern != "" {
			if _, err := regexp.Compile(n.Pattern); err != nil {
				return fmt.Errorf("schema: pattern %q: %w", n.Pattern, ErrInvalidPattern)
			}
		}
	case "number", "integer":
		if n.Minimum != nil && n.Maximum != nil && *n.Minimum > *n.Maximum {
			return ErrInvalidRange
		}
	case "array":
		if n.Items == nil {
			return ErrNilItems
		}
		if err := n.Items.validate(); err != nil {
			return err
		}
	case "object":
		for name, prop := range n.Properties {
			if err := prop.validate(); err != nil {
				return fmt.Errorf("schema: field %q: %w", name, err)
			}
		}
	}
	return nil
}

func buildNode(n *node) (json.RawMessage, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

func mustBuildNode(n *node) json.RawMessage {
	data, err := buildNode(n)
	if err != nil {
		panic(err)
	}
	return data
}

// RequiredField wraps a builder whose field is required in its enclosing
// object. Produced by the builders' Required methods, consumed by
// ObjectBuilder.Field.
type RequiredField struct {
	builder Builder
}

func ptr[T any](v T) *T { return &v }
