// Package key defines the keyboard event model shared by all overlay
// plugins: keys, modifiers, events, and a parser for key specification
// strings used in configuration ("f", "Ctrl+P", "<C-p>").
package key
