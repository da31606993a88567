package overlay

import "github.com/mvickers/pounce/internal/target"

// HintGlyph is one hint label positioned over a target, ready for a
// terminal backend to draw.
type HintGlyph struct {
	// Label is the full hint label.
	Label string

	// Typed is how many leading characters of the label have already
	// been entered, so backends can dim or hide them.
	Typed int

	// Width is the label's terminal cell width.
	Width int

	// Area is the target region the label decorates.
	Area target.Rect
}

// Line is one row of free-form overlay text, used by list-style
// overlays such as the command palette.
type Line struct {
	X, Y     int
	Text     string
	Selected bool
}

// Frame accumulates overlay output for one render pass. Plugins append
// to it in priority order; backends consume it after all plugins ran.
type Frame struct {
	Hints []HintGlyph
	Lines []Line
}

// AddHint appends a hint glyph to the frame.
func (f *Frame) AddHint(h HintGlyph) {
	f.Hints = append(f.Hints, h)
}

// AddLine appends a text line to the frame.
func (f *Frame) AddLine(l Line) {
	f.Lines = append(f.Lines, l)
}

// Reset clears the frame for reuse without releasing capacity.
func (f *Frame) Reset() {
	f.Hints = f.Hints[:0]
	f.Lines = f.Lines[:0]
}
