package nav

import (
	"github.com/mvickers/pounce/internal/hint"
	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay"
	"github.com/mvickers/pounce/internal/target"
)

// DefaultPriority places hint navigation ahead of list-style overlays.
const DefaultPriority = 10

// ActivateFunc receives the target selected by a completed hint label.
type ActivateFunc func(t target.Target)

// Plugin is the hint navigation overlay. It is driven entirely from the
// dispatch goroutine and needs no locking of its own.
type Plugin struct {
	priority   int
	activation key.Event
	generator  *hint.Generator
	matcher    *hint.Matcher

	// current maps target IDs of the active hint set to the targets as
	// captured at activation, so labels stay anchored while collecting.
	current map[string]target.Target

	onActivate ActivateFunc
	onCancel   func()
	debugf     func(format string, args ...any)
}

// Option configures the plugin.
type Option func(*Plugin)

// WithPriority overrides the dispatch priority.
func WithPriority(p int) Option {
	return func(pl *Plugin) { pl.priority = p }
}

// WithActivateFunc sets the callback invoked when a hint completes.
func WithActivateFunc(fn ActivateFunc) Option {
	return func(pl *Plugin) { pl.onActivate = fn }
}

// WithCancelFunc sets the callback invoked when hint mode is cancelled.
func WithCancelFunc(fn func()) Option {
	return func(pl *Plugin) { pl.onCancel = fn }
}

// WithDebugLog routes matcher state transitions to a log function.
func WithDebugLog(fn func(format string, args ...any)) Option {
	return func(pl *Plugin) { pl.debugf = fn }
}

// New creates the plugin. The activation event toggles hint mode from
// idle; gen assigns labels to the registry snapshot at activation time.
func New(activation key.Event, gen *hint.Generator, opts ...Option) *Plugin {
	p := &Plugin{
		priority:   DefaultPriority,
		activation: activation,
		generator:  gen,
		matcher:    hint.NewMatcher(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements overlay.Plugin.
func (p *Plugin) Name() string { return "nav" }

// Priority implements overlay.Plugin.
func (p *Plugin) Priority() int { return p.priority }

// Active reports whether hint mode is collecting input.
func (p *Plugin) Active() bool {
	return p.matcher.State() == hint.StateCollecting
}

// HandleEvent implements overlay.Plugin.
func (p *Plugin) HandleEvent(ev key.Event, ctx *overlay.Context) overlay.Outcome {
	if !p.Active() {
		if ev.Equals(p.activation) {
			p.activate(ctx)
			return overlay.OutcomeConsumedRedraw
		}
		return overlay.OutcomeNotHandled
	}

	switch {
	case ev.IsEscape():
		p.cancel()
		return overlay.OutcomeConsumedRedraw

	case ev.IsBackspace():
		p.matcher.Backspace()
		return overlay.OutcomeConsumedRedraw

	case ev.IsChar():
		return p.typeRune(ev.Rune)

	default:
		// Hint mode is modal: swallow everything else without touching
		// the typed prefix.
		return overlay.OutcomeConsumed
	}
}

// activate snapshots the current registry, generates labels, and enters
// collecting mode. An empty snapshot still enters hint mode so Escape
// behaves uniformly.
func (p *Plugin) activate(ctx *overlay.Context) {
	var targets []target.Target
	if ctx.Registry != nil {
		targets = ctx.Registry.All()
		if n := ctx.Registry.Conflicts(); n > 0 {
			p.logf("registry reported %d duplicate target IDs this frame", n)
		}
	}

	hints := p.generator.Generate(targets)
	byID := make(map[string]target.Target, len(targets))
	for _, t := range targets {
		byID[t.ID] = t
	}
	p.current = make(map[string]target.Target, len(hints))
	for _, h := range hints {
		p.current[h.TargetID] = byID[h.TargetID]
	}

	p.matcher.Start(hints)
	p.logf("hint mode: %d labels over %d targets", len(hints), len(targets))
}

func (p *Plugin) typeRune(r rune) overlay.Outcome {
	res := p.matcher.Type(r)
	switch res.Status {
	case hint.StatusActivated:
		p.logf("hint activated: %s", res.TargetID)
		selected := p.current[res.TargetID]
		p.current = nil
		if p.onActivate != nil {
			p.onActivate(selected)
		}
		return overlay.OutcomeConsumedRedraw

	case hint.StatusRejected:
		// Prefix unchanged, nothing to redraw.
		return overlay.OutcomeConsumed

	default:
		return overlay.OutcomeConsumedRedraw
	}
}

func (p *Plugin) cancel() {
	p.matcher.Cancel()
	p.current = nil
	p.logf("hint mode cancelled")
	if p.onCancel != nil {
		p.onCancel()
	}
}

// Render implements overlay.Plugin. It emits one glyph per remaining
// candidate, annotated with how much of the label is already typed.
func (p *Plugin) Render(ctx *overlay.Context, frame *overlay.Frame) {
	if !p.Active() {
		return
	}
	typed := len([]rune(p.matcher.Typed()))
	for _, h := range p.matcher.Candidates() {
		frame.AddHint(overlay.HintGlyph{
			Label: h.Label,
			Typed: typed,
			Width: h.Width,
			Area:  p.current[h.TargetID].Area,
		})
	}
}

func (p *Plugin) logf(format string, args ...any) {
	if p.debugf != nil {
		p.debugf(format, args...)
	}
}
