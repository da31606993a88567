package palette

import (
	"github.com/mvickers/pounce/internal/input/fuzzy"
	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay"
)

// DefaultPriority places the palette after hint navigation.
const DefaultPriority = 20

// DefaultLimit caps how many results the palette shows at once.
const DefaultLimit = 10

// Plugin is the command palette overlay. It is driven entirely from the
// dispatch goroutine.
type Plugin struct {
	priority int
	limit    int

	activation key.Event
	commands   []Command
	matcher    *fuzzy.Matcher

	open     bool
	query    []rune
	selected int
	results  []fuzzy.Result

	debugf func(format string, args ...any)
}

// Option configures the plugin.
type Option func(*Plugin)

// WithPriority overrides the dispatch priority.
func WithPriority(p int) Option {
	return func(pl *Plugin) { pl.priority = p }
}

// WithLimit overrides how many results are shown.
func WithLimit(n int) Option {
	return func(pl *Plugin) { pl.limit = n }
}

// WithDebugLog routes palette state transitions to a log function.
func WithDebugLog(fn func(format string, args ...any)) Option {
	return func(pl *Plugin) { pl.debugf = fn }
}

// New creates a closed palette toggled by the activation event.
func New(activation key.Event, opts ...Option) *Plugin {
	p := &Plugin{
		priority:   DefaultPriority,
		limit:      DefaultLimit,
		activation: activation,
		matcher:    fuzzy.NewMatcher(fuzzy.DefaultOptions()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements overlay.Plugin.
func (p *Plugin) Name() string { return "palette" }

// Priority implements overlay.Plugin.
func (p *Plugin) Priority() int { return p.priority }

// Open reports whether the palette is visible.
func (p *Plugin) Open() bool { return p.open }

// Register appends a command. Registration order decides ranking ties.
func (p *Plugin) Register(cmd Command) {
	p.commands = append(p.commands, cmd)
	p.rebuildItems()
}

// SetCommands replaces the whole command set.
func (p *Plugin) SetCommands(cmds []Command) {
	p.commands = append(p.commands[:0:0], cmds...)
	p.rebuildItems()
}

// rebuildItems mirrors the command titles into the fuzzy matcher, which
// also invalidates its query cache.
func (p *Plugin) rebuildItems() {
	items := make([]fuzzy.Item, len(p.commands))
	for i, c := range p.commands {
		items[i] = fuzzy.Item{Text: c.Title, Data: i}
	}
	p.matcher.SetItems(items)
}

// HandleEvent implements overlay.Plugin.
func (p *Plugin) HandleEvent(ev key.Event, ctx *overlay.Context) overlay.Outcome {
	if !p.open {
		if ev.Equals(p.activation) {
			p.show()
			return overlay.OutcomeConsumedRedraw
		}
		return overlay.OutcomeNotHandled
	}

	switch {
	case ev.IsEscape():
		p.dismiss()
		return overlay.OutcomeConsumedRedraw

	case ev.IsEnter():
		p.execute()
		return overlay.OutcomeConsumedRedraw

	case ev.Key == key.KeyUp:
		p.move(-1)
		return overlay.OutcomeConsumedRedraw

	case ev.Key == key.KeyDown:
		p.move(1)
		return overlay.OutcomeConsumedRedraw

	case ev.IsBackspace():
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.refresh()
		}
		return overlay.OutcomeConsumedRedraw

	case ev.IsChar():
		p.query = append(p.query, ev.Rune)
		p.refresh()
		return overlay.OutcomeConsumedRedraw

	default:
		// The palette is modal while open.
		return overlay.OutcomeConsumed
	}
}

func (p *Plugin) show() {
	p.open = true
	p.query = p.query[:0]
	p.selected = 0
	p.refresh()
	p.logf("palette opened: %d commands", len(p.commands))
}

func (p *Plugin) dismiss() {
	p.open = false
	p.query = p.query[:0]
	p.results = nil
	p.logf("palette dismissed")
}

// execute closes the palette, then runs the selected command's action.
// Closing first keeps the palette coherent if the action panics.
func (p *Plugin) execute() {
	var cmd Command
	if p.selected < len(p.results) {
		cmd = p.commands[p.results[p.selected].Item.Data.(int)]
	}
	p.dismiss()

	if cmd.Action != nil {
		p.logf("palette executed: %s", cmd.ID)
		cmd.Action()
	}
}

func (p *Plugin) move(delta int) {
	if len(p.results) == 0 {
		return
	}
	p.selected += delta
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= len(p.results) {
		p.selected = len(p.results) - 1
	}
}

// refresh re-ranks the command set and clamps the selection.
func (p *Plugin) refresh() {
	p.results = p.matcher.Match(string(p.query), p.limit)
	if p.selected >= len(p.results) {
		p.selected = 0
	}
}

// Results returns the current ranked commands, best first.
func (p *Plugin) Results() []Command {
	out := make([]Command, len(p.results))
	for i, r := range p.results {
		out[i] = p.commands[r.Item.Data.(int)]
	}
	return out
}

// Selected returns the currently highlighted command.
func (p *Plugin) Selected() (Command, bool) {
	if !p.open || p.selected >= len(p.results) {
		return Command{}, false
	}
	return p.commands[p.results[p.selected].Item.Data.(int)], true
}

// Render implements overlay.Plugin. The query prompt occupies row zero,
// results follow one per row.
func (p *Plugin) Render(ctx *overlay.Context, frame *overlay.Frame) {
	if !p.open {
		return
	}
	frame.AddLine(overlay.Line{X: 0, Y: 0, Text: "> " + string(p.query)})
	for i, r := range p.results {
		cmd := p.commands[r.Item.Data.(int)]
		text := cmd.Title
		if cmd.Shortcut != "" {
			text += "  (" + cmd.Shortcut + ")"
		}
		frame.AddLine(overlay.Line{
			X:        0,
			Y:        i + 1,
			Text:     text,
			Selected: i == p.selected,
		})
	}
}

func (p *Plugin) logf(format string, args ...any) {
	if p.debugf != nil {
		p.debugf(format, args...)
	}
}
