package hint

import (
	"sort"

	"github.com/rivo/uniseg"

	"github.com/mvickers/pounce/internal/target"
)

// Hint pairs a target with its assigned label.
type Hint struct {
	// TargetID identifies the labeled target.
	TargetID string

	// Label is the prefix-free hint string the user types.
	Label string

	// Width is the label's terminal display width in cells.
	Width int
}

// Options limits which targets receive hints.
type Options struct {
	// MaxHints caps the number of labels generated. Zero means no cap.
	// When the cap applies, the least important targets are dropped.
	MaxHints int

	// MinArea excludes targets whose area is below this many cells.
	// Zero keeps everything, including degenerate targets.
	MinArea int
}

// Generator converts a target snapshot into hint labels.
type Generator struct {
	alphabet Alphabet
	opts     Options
}

// NewGenerator creates a generator over the given alphabet.
func NewGenerator(alphabet Alphabet, opts Options) *Generator {
	return &Generator{alphabet: alphabet, opts: opts}
}

// Generate assigns a prefix-free, minimal-length label to every target.
// Lower-priority-value (more important) targets receive the shortest
// labels. The input slice is not modified; zero targets yield an empty
// hint set.
func (g *Generator) Generate(targets []target.Target) []Hint {
	selected := g.selectTargets(targets)
	n := len(selected)
	if n == 0 {
		return nil
	}

	paths := labelPaths(n, g.alphabet.Len())
	hints := make([]Hint, n)
	for i, t := range selected {
		label := g.render(paths[i])
		hints[i] = Hint{
			TargetID: t.ID,
			Label:    label,
			Width:    uniseg.StringWidth(label),
		}
	}
	return hints
}

// selectTargets filters, sorts, and truncates the snapshot into the
// canonical "most important, then reading order" sequence.
func (g *Generator) selectTargets(targets []target.Target) []target.Target {
	selected := make([]target.Target, 0, len(targets))
	for _, t := range targets {
		if g.opts.MinArea > 0 && t.Area.Area() < g.opts.MinArea {
			continue
		}
		selected = append(selected, t)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Area.Y != b.Area.Y {
			return a.Area.Y < b.Area.Y
		}
		if a.Area.X != b.Area.X {
			return a.Area.X < b.Area.X
		}
		return a.ID < b.ID
	})

	if g.opts.MaxHints > 0 && len(selected) > g.opts.MaxHints {
		selected = selected[:g.opts.MaxHints]
	}
	return selected
}

// render converts a digit path into a label string.
func (g *Generator) render(path []int) string {
	runes := make([]rune, len(path))
	for i, d := range path {
		runes[i] = g.alphabet.Rune(d)
	}
	return string(runes)
}

// labelPaths produces n prefix-free digit paths over a k-ary alphabet,
// shortest paths first.
//
// For n <= k every path is a single digit. Otherwise labels live at two
// adjacent depths of the k-ary leaf tree: with L the minimal depth such
// that k^L >= n, the first s = (k^L - n) / (k - 1) targets take the
// lexicographically first depth-(L-1) leaves, and the rest take the
// depth-L leaves not shadowed by a short label. s is the maximal short
// count that keeps the code prefix-free: each short label consumes k
// deep leaves, so s*k + (n-s) <= k^L must hold. Digits are rendered
// most-significant first so typing proceeds left to right.
func labelPaths(n, k int) [][]int {
	if n == 0 {
		return nil
	}

	paths := make([][]int, 0, n)

	if n <= k {
		for i := 0; i < n; i++ {
			paths = append(paths, []int{i})
		}
		return paths
	}

	depth := 1
	leaves := k
	for leaves < n {
		depth++
		leaves *= k
	}

	short := (leaves - n) / (k - 1)
	for i := 0; i < short; i++ {
		paths = append(paths, digits(i, depth-1, k))
	}

	// Deep leaves below the short labels are unusable; the first free
	// deep leaf sits at index short*k.
	for i := 0; i < n-short; i++ {
		paths = append(paths, digits(short*k+i, depth, k))
	}
	return paths
}

// digits renders index as a fixed-length base-k digit path,
// most-significant digit first.
func digits(index, length, k int) []int {
	out := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = index % k
		index /= k
	}
	return out
}
