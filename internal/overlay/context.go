package overlay

import "github.com/mvickers/pounce/internal/target"

// Context carries per-dispatch state to plugin handlers. A fresh context
// is created for every dispatched event and every render pass, so values
// set by one handler never leak into the next event.
type Context struct {
	// Registry is the sealed target registry for the current frame. It
	// may be nil when no frame has been published yet.
	Registry *target.Registry

	values map[string]any
	redraw bool
}

// NewContext creates a context over the given registry snapshot.
func NewContext(reg *target.Registry) *Context {
	return &Context{Registry: reg}
}

// Set stores a keyed value visible to later plugins in the same dispatch.
func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Value returns the value stored under key, or nil.
func (c *Context) Value(key string) any {
	return c.values[key]
}

// RequestRedraw marks the current dispatch as needing a redraw even if
// the consuming outcome did not ask for one. The flag is sticky for the
// remainder of the dispatch.
func (c *Context) RequestRedraw() {
	c.redraw = true
}

// RedrawRequested reports whether any handler called RequestRedraw.
func (c *Context) RedrawRequested() bool {
	return c.redraw
}
