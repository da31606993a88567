package target

// Point is a position in screen cells.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Area returns the rectangle's area. Degenerate rectangles (zero or
// negative width/height) have area 0.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// IsDegenerate returns true if the rectangle occupies no cells.
func (r Rect) IsDegenerate() bool {
	return r.W <= 0 || r.H <= 0
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the rectangle's center point, truncated to cells.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Metadata is an ordered string-to-string map. Iteration order is
// insertion order, which keeps target snapshots deterministic.
type Metadata struct {
	keys   []string
	values map[string]string
}

// Set stores a value under key, preserving the key's original position
// if it already exists.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Metadata) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Clone returns an independent copy.
func (m *Metadata) Clone() Metadata {
	var out Metadata
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}

// Target describes one selectable element registered for the current frame.
type Target struct {
	// ID is unique within a single frame. Registering the same ID twice
	// in one frame is a conflict; the last registration wins.
	ID string

	// Area is the on-screen region the target occupies. Degenerate areas
	// are legal and still participate in hint generation unless filtered
	// by a minimum-area policy.
	Area Rect

	// Priority orders targets for dispatch and hint length; lower values
	// are more important.
	Priority int

	// Kind tags the target ("button", "row", "link", ...). Selection
	// logic never interprets it; hosts use it to route activations.
	Kind string

	// Metadata carries host-defined attributes in insertion order.
	Metadata Metadata
}
