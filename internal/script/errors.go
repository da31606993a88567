package script

import "errors"

// Script loading errors.
var (
	// ErrLoad wraps a Lua compile or runtime error during Load.
	ErrLoad = errors.New("script load failed")

	// ErrNoHandler is returned when a script defines no on_event
	// function.
	ErrNoHandler = errors.New("script defines no on_event function")
)
