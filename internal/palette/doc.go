// Package palette implements a fuzzy-searchable command palette as an
// overlay plugin.
//
// Commands register once with a title and an action. While the palette
// is open it is modal: printable characters edit the query, arrows move
// the selection, Enter executes, Escape dismisses.
package palette
