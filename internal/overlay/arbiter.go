package overlay

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/target"
)

// Arbiter errors.
var (
	// ErrNilPlugin is returned when registering a nil plugin.
	ErrNilPlugin = errors.New("nil plugin")

	// ErrNotRegistered is returned when unregistering an unknown handle.
	ErrNotRegistered = errors.New("registration not found")

	// ErrReentrantDispatch is returned when Dispatch is called from
	// inside a plugin handler.
	ErrReentrantDispatch = errors.New("reentrant dispatch")
)

// Registration is an opaque handle identifying one registered plugin.
type Registration string

// DispatchResult reports how one event was resolved.
type DispatchResult struct {
	// Consumed is true if some plugin consumed the event.
	Consumed bool

	// Redraw is true if the consuming outcome or any handler requested
	// a redraw.
	Redraw bool

	// HandledBy names the consuming plugin, or "" when the event fell
	// through every plugin.
	HandledBy string
}

// PanicHandler observes a panic recovered from a plugin handler.
type PanicHandler func(plugin string, recovered any)

type registration struct {
	handle   Registration
	plugin   Plugin
	priority int
	seq      int
}

// Arbiter routes input events through registered plugins in ascending
// priority order, first consumer wins. It is safe for concurrent
// registration, but Dispatch itself is single-flight.
type Arbiter struct {
	mu       sync.RWMutex
	plugins  []*registration
	byHandle map[Registration]*registration
	seq      int

	registry *target.Registry

	dispatchMu  sync.Mutex
	dispatching bool

	onPanic PanicHandler
}

// ArbiterOption configures an Arbiter.
type ArbiterOption func(*Arbiter)

// WithPanicHandler installs a callback invoked when a plugin handler
// panics. The panic is always recovered and treated as not handled.
func WithPanicHandler(h PanicHandler) ArbiterOption {
	return func(a *Arbiter) { a.onPanic = h }
}

// NewArbiter creates an empty arbiter.
func NewArbiter(opts ...ArbiterOption) *Arbiter {
	a := &Arbiter{
		byHandle: make(map[Registration]*registration),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetRegistry publishes the sealed registry for the current frame.
// Subsequent dispatches and renders observe this snapshot.
func (a *Arbiter) SetRegistry(reg *target.Registry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.registry = reg
}

// Register adds a plugin and returns its handle. The plugin's priority
// is captured now; later changes to Priority() have no effect on order.
func (a *Arbiter) Register(p Plugin) (Registration, error) {
	if p == nil {
		return "", ErrNilPlugin
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	reg := &registration{
		handle:   Registration(uuid.NewString()),
		plugin:   p,
		priority: p.Priority(),
		seq:      a.seq,
	}
	a.seq++
	a.byHandle[reg.handle] = reg
	a.plugins = append(a.plugins, reg)
	a.sortLocked()

	return reg.handle, nil
}

// Unregister removes a previously registered plugin.
func (a *Arbiter) Unregister(handle Registration) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	reg, ok := a.byHandle[handle]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, handle)
	}
	delete(a.byHandle, handle)
	for i, r := range a.plugins {
		if r == reg {
			a.plugins = append(a.plugins[:i], a.plugins[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of registered plugins.
func (a *Arbiter) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.plugins)
}

// sortLocked orders plugins ascending by captured priority, ties broken
// by registration order. Called only when the registration set changes.
func (a *Arbiter) sortLocked() {
	sort.SliceStable(a.plugins, func(i, j int) bool {
		if a.plugins[i].priority != a.plugins[j].priority {
			return a.plugins[i].priority < a.plugins[j].priority
		}
		return a.plugins[i].seq < a.plugins[j].seq
	})
}

// Dispatch offers ev to each plugin in priority order until one consumes
// it. Plugins after the consumer never observe the event. A panicking
// handler is recovered and treated as not handled.
func (a *Arbiter) Dispatch(ev key.Event) (DispatchResult, error) {
	a.dispatchMu.Lock()
	if a.dispatching {
		a.dispatchMu.Unlock()
		return DispatchResult{}, ErrReentrantDispatch
	}
	a.dispatching = true
	a.dispatchMu.Unlock()

	defer func() {
		a.dispatchMu.Lock()
		a.dispatching = false
		a.dispatchMu.Unlock()
	}()

	a.mu.RLock()
	ordered := make([]*registration, len(a.plugins))
	copy(ordered, a.plugins)
	reg := a.registry
	a.mu.RUnlock()

	ctx := NewContext(reg)
	var result DispatchResult

	for _, r := range ordered {
		outcome := a.handleOne(r, ev, ctx)
		if outcome.IsConsumed() {
			result.Consumed = true
			result.Redraw = outcome.WantsRedraw()
			result.HandledBy = r.plugin.Name()
			break
		}
	}

	if ctx.RedrawRequested() {
		result.Redraw = true
	}
	return result, nil
}

// handleOne invokes a single handler with panic isolation.
func (a *Arbiter) handleOne(r *registration, ev key.Event, ctx *Context) (outcome Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = OutcomeNotHandled
			if a.onPanic != nil {
				a.onPanic(r.plugin.Name(), rec)
			}
		}
	}()
	return r.plugin.HandleEvent(ev, ctx)
}

// Render gives every plugin a chance to draw, in priority order, into
// the supplied frame.
func (a *Arbiter) Render(frame *Frame) {
	a.mu.RLock()
	ordered := make([]*registration, len(a.plugins))
	copy(ordered, a.plugins)
	reg := a.registry
	a.mu.RUnlock()

	ctx := NewContext(reg)
	for _, r := range ordered {
		r.plugin.Render(ctx, frame)
	}
}
