// Package nav implements hint-based navigation as an overlay plugin.
//
// Pressing the activation key labels every visible target with a short
// prefix-free hint; typing a complete label activates its target. While
// hint mode is active the plugin is modal and consumes all input.
package nav
