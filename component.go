package a2ui

// Component is one node of a surface's component tree. Properties holds
// exactly one top-level key at production time: the component's type tag,
// whose value is that type's own property map.
type Component struct {
	// ID uniquely identifies the component within its surface.
	ID string

	// Properties is the type-tagged property map. The single top-level
	// key names the component type.
	Properties map[string]Value

	// Weight is an optional layout weight for flex containers.
	Weight *int
}

// Type returns the component's type tag: the single top-level property
// key. It returns "" when the component has no properties. Should a
// malformed payload carry several keys, the lexically smallest is used so
// the result stays deterministic.
func (c Component) Type() string {
	switch len(c.Properties) {
	case 0:
		return ""
	case 1:
		for k := range c.Properties {
			return k
		}
	}
	keys := sortedKeys(Object(c.Properties))
	return keys[0]
}

// TypeProperties returns the property map nested under the type tag, or
// nil when the component has no type or the tag's value is not an object.
func (c Component) TypeProperties() Object {
	tag := c.Type()
	if tag == "" {
		return nil
	}
	obj, _ := AsObject(c.Properties[tag])
	return obj
}

// UiDefinition is the component-tree snapshot for one surface. It is an
// immutable value: updates produce a new snapshot via the With* methods.
type UiDefinition struct {
	// SurfaceID names the surface this definition belongs to.
	SurfaceID string

	// RootComponentID is the id of the root component, or "" while the
	// surface has not yet received a beginRendering message.
	RootComponentID string

	// CatalogID optionally names the component catalog the agent targeted.
	CatalogID string

	// Styles holds surface-wide style values.
	Styles map[string]Value

	// Components maps component id to component.
	Components map[string]Component
}

// NewUiDefinition returns an empty definition for the given surface.
func NewUiDefinition(surfaceID string) UiDefinition {
	return UiDefinition{
		SurfaceID:  surfaceID,
		Components: map[string]Component{},
	}
}

// Component looks up a component by id.
func (d UiDefinition) Component(id string) (Component, bool) {
	c, ok := d.Components[id]
	return c, ok
}

// Root returns the root component, or false while no root id is set or
// the root id is not present in the component map.
func (d UiDefinition) Root() (Component, bool) {
	if d.RootComponentID == "" {
		return Component{}, false
	}
	return d.Component(d.RootComponentID)
}

// MergeComponents returns a new snapshot with the given components merged
// into the component map by id. New ids are added; existing ids are fully
// replaced, never deep-merged per field.
func (d UiDefinition) MergeComponents(components []Component) UiDefinition {
	merged := make(map[string]Component, len(d.Components)+len(components))
	for id, c := range d.Components {
		merged[id] = c
	}
	for _, c := range components {
		merged[c.ID] = c
	}
	next := d
	next.Components = merged
	return next
}

// WithRoot returns a new snapshot with the root component id, styles, and
// catalog id set.
func (d UiDefinition) WithRoot(root string, styles map[string]Value, catalogID string) UiDefinition {
	next := d
	next.RootComponentID = root
	next.Styles = styles
	next.CatalogID = catalogID
	return next
}
