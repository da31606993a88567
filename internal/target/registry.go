package target

import "sync"

// Registry stores the targets registered for the current frame.
//
// The intended lifecycle is: Clear at frame start, Register during the
// host's draw pass, Seal when the draw pass ends, then read-only queries
// while input is dispatched. Registering into a sealed frame is a host
// usage error; the registry counts it and keeps the write rather than
// trying to reconcile stale and fresh targets.
type Registry struct {
	mu sync.RWMutex

	// targets keyed by ID; order preserves first-registration position.
	targets map[string]Target
	order   []string

	sealed bool

	// conflicts counts duplicate-ID registrations in the current frame.
	conflicts int

	// staleWrites counts registrations into a sealed frame.
	staleWrites int
}

// NewRegistry creates an empty registry. The fresh registry is sealed;
// the host must call Clear to open the first frame.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]Target),
		sealed:  true,
	}
}

// Clear drops all targets and opens a new frame. Hosts call this exactly
// once at the start of every frame, before redrawing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.targets = make(map[string]Target)
	r.order = r.order[:0]
	r.sealed = false
	r.conflicts = 0
	r.staleWrites = 0
}

// Seal marks the end of the frame's draw pass. Registrations after Seal
// are counted as stale writes but still applied (last write wins).
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Register inserts or overwrites a target by ID for the current frame.
// Duplicate IDs within one frame follow last-write-wins and increment
// the conflict counter. Degenerate areas are accepted.
func (r *Registry) Register(t Target) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		r.staleWrites++
	}
	if _, exists := r.targets[t.ID]; exists {
		r.conflicts++
	} else {
		r.order = append(r.order, t.ID)
	}
	r.targets[t.ID] = t
}

// Get returns the target with the given ID.
func (r *Registry) Get(id string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.targets[id]
	return t, ok
}

// All returns the current frame's targets in registration order.
// The returned slice is a snapshot; mutating it does not affect the
// registry.
func (r *Registry) All() []Target {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Target, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.targets[id])
	}
	return out
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}

// Conflicts returns the number of duplicate-ID registrations seen in the
// current frame.
func (r *Registry) Conflicts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.conflicts
}

// StaleWrites returns the number of registrations that arrived after the
// frame was sealed. A non-zero value indicates the host skipped Clear or
// registered targets outside its draw pass.
func (r *Registry) StaleWrites() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.staleWrites
}
