package palette

// Command is one executable palette entry.
type Command struct {
	// ID uniquely identifies the command.
	ID string

	// Title is the human-readable name matched against the query.
	Title string

	// Description is optional help text shown next to the title.
	Description string

	// Shortcut is an optional key binding shown for reference; the
	// palette does not dispatch it.
	Shortcut string

	// Action runs when the command is executed. It is invoked after the
	// palette closes, from the dispatch goroutine.
	Action func()
}
