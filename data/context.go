package data

import "github.com/surfacekit/a2ui"

// Context is a path-scoped view over one Model, used to resolve relative
// bindings against a base path. Contexts are cheap values: any number may
// share one Model, and a Context holds a non-owning reference that must
// not outlive the model's surface.
type Context struct {
	model *Model
	base  Path
}

// NewContext creates a context over model rooted at base.
func NewContext(model *Model, base Path) Context {
	return Context{model: model, base: base}
}

// Model returns the underlying model.
func (c Context) Model() *Model { return c.model }

// BasePath returns the context's base path.
func (c Context) BasePath() Path { return c.base }

// ResolvePath returns p unchanged when absolute, otherwise base joined
// with p.
func (c Context) ResolvePath(p Path) Path {
	if p.IsAbsolute() {
		return p
	}
	return c.base.Join(p)
}

// GetValue reads the value at the resolved path.
func (c Context) GetValue(p Path) (a2ui.Value, bool) {
	return c.model.GetValue(c.ResolvePath(p))
}

// Update writes contents at the resolved path.
func (c Context) Update(p Path, contents a2ui.Value) {
	c.model.Update(c.ResolvePath(p), contents)
}

// Subscribe subscribes to the resolved path.
func (c Context) Subscribe(p Path) *Notifier {
	return c.model.Subscribe(c.ResolvePath(p))
}

// Nested returns a child context over the same model rooted at the
// resolved relative path. List and template bindings use this to scope
// children to successive indices or keys.
func (c Context) Nested(relative Path) Context {
	return Context{model: c.model, base: c.ResolvePath(relative)}
}
