package target

import "math"

// DistanceFunc measures the distance between two points. Smaller is
// closer. Implementations must be deterministic.
type DistanceFunc func(a, b Point) float64

// Euclidean returns the straight-line distance between two points.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the axis-aligned distance between two points.
func Manhattan(a, b Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Nearest returns the target whose area center is closest to from, using
// the given distance function. Distance ties break by ascending
// (y, x, id) of the target's area origin, so results are deterministic
// even with duplicate positions. Returns false if the registry is empty.
func (r *Registry) Nearest(from Point, dist DistanceFunc) (Target, bool) {
	return r.nearest(from, dist, "")
}

// NearestFrom returns the target closest to the center of the target
// with the given ID, excluding that target itself. Used by focus
// movement. Returns false if the reference target does not exist or no
// other target is registered.
func (r *Registry) NearestFrom(id string, dist DistanceFunc) (Target, bool) {
	ref, ok := r.Get(id)
	if !ok {
		return Target{}, false
	}
	return r.nearest(ref.Area.Center(), dist, id)
}

func (r *Registry) nearest(from Point, dist DistanceFunc, exclude string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best Target
	bestDist := math.Inf(1)
	found := false

	for _, id := range r.order {
		if id == exclude {
			continue
		}
		t := r.targets[id]
		d := dist(from, t.Area.Center())
		switch {
		case !found || d < bestDist:
			best, bestDist, found = t, d, true
		case d == bestDist && LessByPosition(t, best):
			best = t
		}
	}

	return best, found
}

// LessByPosition orders targets by ascending (y, x, id) of the area
// origin. This is the canonical deterministic tie-break.
func LessByPosition(a, b Target) bool {
	if a.Area.Y != b.Area.Y {
		return a.Area.Y < b.Area.Y
	}
	if a.Area.X != b.Area.X {
		return a.Area.X < b.Area.X
	}
	return a.ID < b.ID
}
