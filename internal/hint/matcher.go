package hint

import "strings"

// State identifies the matcher's current mode.
type State uint8

const (
	// StateIdle means no hint interaction is in progress.
	StateIdle State = iota

	// StateCollecting means hint mode is active and keystrokes narrow
	// the candidate set.
	StateCollecting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	default:
		return "unknown"
	}
}

// Status classifies the result of feeding one character to the matcher.
type Status uint8

const (
	// StatusPending means more characters are needed.
	StatusPending Status = iota

	// StatusActivated means a unique label was completed.
	StatusActivated

	// StatusRejected means the character matched no candidate and was
	// discarded without changing state.
	StatusRejected
)

// Result reports the outcome of a keystroke.
type Result struct {
	Status Status

	// TargetID is set when Status is StatusActivated.
	TargetID string
}

// Matcher progressively matches typed characters against a hint set.
// Candidates are always recomputed from the full hint set by the current
// typed prefix, so backspace never depends on intermediate candidate
// slices.
type Matcher struct {
	state      State
	hints      []Hint
	typed      []rune
	candidates []Hint
}

// NewMatcher creates a matcher in the idle state.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Start enters hint mode with the given hint set as candidates. An empty
// set is legal: the matcher still collects (and Cancel still works), it
// just has nothing to activate.
func (m *Matcher) Start(hints []Hint) {
	m.state = StateCollecting
	m.hints = hints
	m.typed = m.typed[:0]
	m.candidates = append(m.candidates[:0], hints...)
}

// State returns the matcher's current state.
func (m *Matcher) State() State {
	return m.state
}

// Typed returns the characters typed so far.
func (m *Matcher) Typed() string {
	return string(m.typed)
}

// Candidates returns the hints whose labels start with the typed prefix.
func (m *Matcher) Candidates() []Hint {
	out := make([]Hint, len(m.candidates))
	copy(out, m.candidates)
	return out
}

// Type feeds one character to the matcher.
//
// A character that would empty the candidate set is rejected and the
// typed prefix stays unchanged. If exactly one candidate remains and its
// label equals the typed prefix, the matcher activates it and resets to
// idle. A unique candidate whose label is longer than the prefix keeps
// collecting; prefix-freedom makes that the only possibility for a
// unique partial match.
func (m *Matcher) Type(r rune) Result {
	if m.state != StateCollecting {
		return Result{Status: StatusRejected}
	}

	next := string(append(m.typed, r))
	narrowed := filterByPrefix(m.hints, next)
	if len(narrowed) == 0 {
		return Result{Status: StatusRejected}
	}

	m.typed = append(m.typed, r)
	m.candidates = narrowed

	if len(narrowed) == 1 && narrowed[0].Label == next {
		id := narrowed[0].TargetID
		m.reset()
		return Result{Status: StatusActivated, TargetID: id}
	}
	return Result{Status: StatusPending}
}

// Backspace removes the last typed character and recomputes candidates
// from the full hint set. With nothing typed it is a no-op.
func (m *Matcher) Backspace() {
	if m.state != StateCollecting || len(m.typed) == 0 {
		return
	}
	m.typed = m.typed[:len(m.typed)-1]
	m.candidates = filterByPrefix(m.hints, string(m.typed))
}

// Cancel discards the typed prefix and hint set and returns to idle.
// Cancellation is unconditional and synchronous.
func (m *Matcher) Cancel() {
	m.reset()
}

func (m *Matcher) reset() {
	m.state = StateIdle
	m.hints = nil
	m.typed = m.typed[:0]
	m.candidates = nil
}

// filterByPrefix returns the hints whose label starts with prefix. The
// prefix is built from whole runes, so byte-wise HasPrefix is exact.
func filterByPrefix(hints []Hint, prefix string) []Hint {
	var out []Hint
	for _, h := range hints {
		if strings.HasPrefix(h.Label, prefix) {
			out = append(out, h)
		}
	}
	return out
}
