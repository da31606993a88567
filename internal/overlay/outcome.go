package overlay

// Outcome is a plugin's verdict on one input event. It deliberately
// couples "consumed" and "wants redraw" into a single tagged value so
// the short-circuit contract stays unambiguous.
type Outcome uint8

const (
	// OutcomeNotHandled passes the event to the next plugin in priority
	// order.
	OutcomeNotHandled Outcome = iota

	// OutcomeConsumed stops dispatch without requesting a redraw.
	OutcomeConsumed

	// OutcomeConsumedRedraw stops dispatch and requests a redraw.
	OutcomeConsumedRedraw
)

// IsConsumed returns true if the outcome stops dispatch.
func (o Outcome) IsConsumed() bool {
	return o == OutcomeConsumed || o == OutcomeConsumedRedraw
}

// WantsRedraw returns true if the outcome requests a redraw.
func (o Outcome) WantsRedraw() bool {
	return o == OutcomeConsumedRedraw
}

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNotHandled:
		return "not-handled"
	case OutcomeConsumed:
		return "consumed"
	case OutcomeConsumedRedraw:
		return "consumed-redraw"
	default:
		return "unknown"
	}
}
