package nav

import "github.com/mvickers/pounce/internal/target"

// Direction of a focus movement.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveFocus returns the target nearest to fromID strictly in the given
// direction, comparing area centers with dist (target.Manhattan when
// nil). Distance ties break by ascending (y, x, id) of the area origin.
// Returns false when fromID is unknown or nothing lies that way.
func MoveFocus(reg *target.Registry, fromID string, dir Direction, dist target.DistanceFunc) (target.Target, bool) {
	if dist == nil {
		dist = target.Manhattan
	}
	cur, ok := reg.Get(fromID)
	if !ok {
		return target.Target{}, false
	}
	from := cur.Area.Center()

	var best target.Target
	bestDist := 0.0
	found := false
	for _, t := range reg.All() {
		if t.ID == fromID {
			continue
		}
		c := t.Area.Center()
		switch dir {
		case DirUp:
			if c.Y >= from.Y {
				continue
			}
		case DirDown:
			if c.Y <= from.Y {
				continue
			}
		case DirLeft:
			if c.X >= from.X {
				continue
			}
		case DirRight:
			if c.X <= from.X {
				continue
			}
		}
		d := dist(from, c)
		switch {
		case !found || d < bestDist:
			best, bestDist, found = t, d, true
		case d == bestDist && target.LessByPosition(t, best):
			best = t
		}
	}
	return best, found
}
