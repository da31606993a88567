package overlay

import "github.com/mvickers/pounce/internal/input/key"

// Plugin is the capability every overlay implements.
type Plugin interface {
	// Name identifies the plugin in logs and dispatch results.
	Name() string

	// Priority orders dispatch; lower values see events first. The
	// arbiter captures this once at registration.
	Priority() int

	// HandleEvent processes one input event. The context is exclusively
	// held for the duration of the call. Handlers must not block, sleep,
	// or trigger another dispatch.
	HandleEvent(ev key.Event, ctx *Context) Outcome

	// Render contributes the plugin's overlay content to the frame.
	Render(ctx *Context, frame *Frame)
}
