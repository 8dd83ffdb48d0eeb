package schema

import (
	"encoding/json"
	"fmt"
)

// String creates a string schema builder.
func String() *StringBuilder {
	return &StringBuilder{node: &node{Type: "string"}}
}

// StringBuilder constructs string schemas.
type StringBuilder struct {
	node *node
}

// Desc sets the description.
func (b *StringBuilder) Desc(description string) *StringBuilder {
	b.node.Description = description
	return b
}

// Enum restricts the value to the given options.
func (b *StringBuilder) Enum(values ...string) *StringBuilder {
	b.node.Enum = make([]any, len(values))
	for i, v := range values {
		b.node.Enum[i] = v
	}
	return b
}

// Pattern sets a regex the string must match.
func (b *StringBuilder) Pattern(regex string) *StringBuilder {
	b.node.Pattern = regex
	return b
}

// Required marks the field as required within its enclosing object.
func (b *StringBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *StringBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }
func (b *StringBuilder) MustBuild() json.RawMessage      { return mustBuildNode(b.node) }
func (b *StringBuilder) schema() *node                   { return b.node }

// Number creates a number schema builder.
func Number() *NumberBuilder {
	return &NumberBuilder{node: &node{Type: "number"}}
}

// Integer creates an integer schema builder.
func Integer() *NumberBuilder {
	return &NumberBuilder{node: &node{Type: "integer"}}
}

// NumberBuilder constructs numeric schemas.
type NumberBuilder struct {
	node *node
}

// Desc sets the description.
func (b *NumberBuilder) Desc(description string) *NumberBuilder {
	b.node.Description = description
	return b
}

// Min sets the inclusive minimum.
func (b *NumberBuilder) Min(v float64) *NumberBuilder {
	b.node.Minimum = ptr(v)
	return b
}

// Max sets the inclusive maximum.
func (b *NumberBuilder) Max(v float64) *NumberBuilder {
	b.node.Maximum = ptr(v)
	return b
}

// Required marks the field as required within its enclosing object.
func (b *NumberBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *NumberBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }
func (b *NumberBuilder) MustBuild() json.RawMessage      { return mustBuildNode(b.node) }
func (b *NumberBuilder) schema() *node                   { return b.node }

// Bool creates a boolean schema builder.
func Bool() *BoolBuilder {
	return &BoolBuilder{node: &node{Type: "boolean"}}
}

// BoolBuilder constructs boolean schemas.
type BoolBuilder struct {
	node *node
}

// Desc sets the description.
func (b *BoolBuilder) Desc(description string) *BoolBuilder {
	b.node.Description = description
	return b
}

// Required marks the field as required within its enclosing object.
func (b *BoolBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *BoolBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }
func (b *BoolBuilder) MustBuild() json.RawMessage      { return mustBuildNode(b.node) }
func (b *BoolBuilder) schema() *node                   { return b.node }

// Array creates an array schema builder over the given item schema.
func Array(items Builder) *ArrayBuilder {
	b := &ArrayBuilder{node: &node{Type: "array"}}
	if items != nil {
		b.node.Items = items.schema()
	}
	return b
}

// ArrayBuilder constructs array schemas.
type ArrayBuilder struct {
	node *node
}

// Desc sets the description.
func (b *ArrayBuilder) Desc(description string) *ArrayBuilder {
	b.node.Description = description
	return b
}

// MinItems sets the minimum item count.
func (b *ArrayBuilder) MinItems(n int) *ArrayBuilder {
	b.node.MinItems = ptr(n)
	return b
}

// Required marks the field as required within its enclosing object.
func (b *ArrayBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *ArrayBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }
func (b *ArrayBuilder) MustBuild() json.RawMessage      { return mustBuildNode(b.node) }
func (b *ArrayBuilder) schema() *node                   { return b.node }

// Object creates an object schema builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{node: &node{
		Type:       "object",
		Properties: map[string]*node{},
	}}
}

// ObjectBuilder constructs object schemas.
type ObjectBuilder struct {
	node *node
}

// Desc sets the description.
func (b *ObjectBuilder) Desc(description string) *ObjectBuilder {
	b.node.Description = description
	return b
}

// Field adds a property. The field argument is a Builder, or a
// *RequiredField produced by a builder's Required method.
func (b *ObjectBuilder) Field(name string, field any) *ObjectBuilder {
	switch f := field.(type) {
	case *RequiredField:
		b.node.Properties[name] = f.builder.schema()
		b.addRequired(name)
	case Builder:
		b.node.Properties[name] = f.schema()
	default:
		panic(fmt.Sprintf("schema: Field %q requires a Builder or *RequiredField, got %T", name, field))
	}
	return b
}

func (b *ObjectBuilder) addRequired(name string) {
	for _, r := range b.node.Required {
		if r == name {
			return
		}
	}
	b.node.Required = append(b.node.Required, name)
}

// AdditionalProperties controls whether keys outside Properties are
// allowed.
func (b *ObjectBuilder) AdditionalProperties(allowed bool) *ObjectBuilder {
	b.node.AdditionalProperties = ptr(allowed)
	return b
}

// Required marks the field as required within its enclosing object.
func (b *ObjectBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

func (b *ObjectBuilder) Build() (json.RawMessage, error) { return buildNode(b.node) }
func (b *ObjectBuilder) MustBuild() json.RawMessage      { return mustBuildNode(b.node) }
func (b *ObjectBuilder) schema() *node                   { return b.node }
