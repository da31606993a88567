// Package script adapts Lua scripts into overlay plugins.
//
// A script declares a global priority number, an on_event function, and
// an optional render function. Scripts run in a restricted interpreter:
// only the base, table, string, and math libraries are opened, and the
// file-loading primitives are removed.
package script
