// Package overlay dispatches input events across an ordered set of
// overlay plugins.
//
// Plugins register once with a fixed priority; the arbiter keeps them
// sorted ascending by priority and re-sorts only when the registration
// set changes. Each input event is offered to plugins in order until one
// consumes it, with the remaining plugins never observing the event.
// Dispatch is synchronous and non-reentrant: one event is fully resolved
// before the next is read, and a plugin must not trigger another
// dispatch from inside its own handler.
package overlay
