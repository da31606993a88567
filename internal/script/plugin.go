package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay"
)

// DefaultPriority is used when a script declares no priority global.
// Scripted overlays default to running after the built-in ones.
const DefaultPriority = 100

// Plugin wraps a loaded Lua script as an overlay plugin. Scripts run on
// the dispatch goroutine; the interpreter is not shared.
type Plugin struct {
	name     string
	priority int

	state   *lua.LState
	onEvent *lua.LFunction
	render  *lua.LFunction

	debugf func(format string, args ...any)
}

// Option configures script loading.
type Option func(*Plugin)

// WithDebugLog routes script errors and state changes to a log function.
// Handler errors never propagate to the arbiter; they degrade to an
// unhandled event.
func WithDebugLog(fn func(format string, args ...any)) Option {
	return func(p *Plugin) { p.debugf = fn }
}

// Load compiles and runs source, then captures the script's globals.
//
// Recognized globals:
//
//	priority  number   dispatch priority (optional)
//	on_event  function required; receives an event table, returns
//	                   "pass", "consume", or "consume_redraw"
//	render    function optional; receives a frame handle with an
//	                   add_line(x, y, text, selected) method
func Load(name, source string, opts ...Option) (*Plugin, error) {
	p := &Plugin{
		name:     name,
		priority: DefaultPriority,
	}
	for _, opt := range opts {
		opt(p)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openRestrictedLibs(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, name, err)
	}

	if prio := L.GetGlobal("priority"); prio.Type() == lua.LTNumber {
		p.priority = int(lua.LVAsNumber(prio))
	}

	handler, ok := L.GetGlobal("on_event").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, name)
	}
	p.onEvent = handler

	if render, ok := L.GetGlobal("render").(*lua.LFunction); ok {
		p.render = render
	}

	p.state = L
	return p, nil
}

// openRestrictedLibs opens the safe subset of the Lua standard library
// and strips the primitives that load code from outside the script.
func openRestrictedLibs(L *lua.LState) {
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Close releases the script's interpreter. The plugin must be
// unregistered first.
func (p *Plugin) Close() {
	if p.state != nil {
		p.state.Close()
		p.state = nil
	}
}

// Name implements overlay.Plugin.
func (p *Plugin) Name() string { return p.name }

// Priority implements overlay.Plugin.
func (p *Plugin) Priority() int { return p.priority }

// HandleEvent implements overlay.Plugin. The event is presented to Lua
// as a table; the handler's string return maps onto an outcome, with
// anything unrecognized treated as "pass".
func (p *Plugin) HandleEvent(ev key.Event, ctx *overlay.Context) overlay.Outcome {
	if p.state == nil {
		return overlay.OutcomeNotHandled
	}

	err := p.state.CallByParam(lua.P{
		Fn:      p.onEvent,
		NRet:    1,
		Protect: true,
	}, p.eventTable(ev))
	if err != nil {
		p.logf("script %s: on_event: %v", p.name, err)
		return overlay.OutcomeNotHandled
	}

	ret := p.state.Get(-1)
	p.state.Pop(1)

	switch lua.LVAsString(ret) {
	case "consume":
		return overlay.OutcomeConsumed
	case "consume_redraw":
		return overlay.OutcomeConsumedRedraw
	default:
		return overlay.OutcomeNotHandled
	}
}

// eventTable mirrors a key event into a Lua table.
func (p *Plugin) eventTable(ev key.Event) *lua.LTable {
	t := p.state.NewTable()
	p.state.SetField(t, "key", lua.LString(ev.String()))
	if ev.IsRune() {
		p.state.SetField(t, "rune", lua.LString(string(ev.Rune)))
	}
	p.state.SetField(t, "is_char", lua.LBool(ev.IsChar()))
	p.state.SetField(t, "ctrl", lua.LBool(ev.Modifiers.HasCtrl()))
	p.state.SetField(t, "alt", lua.LBool(ev.Modifiers.HasAlt()))
	return t
}

// Render implements overlay.Plugin.
func (p *Plugin) Render(ctx *overlay.Context, frame *overlay.Frame) {
	if p.state == nil || p.render == nil {
		return
	}

	handle := p.state.NewTable()
	p.state.SetField(handle, "add_line", p.state.NewFunction(func(L *lua.LState) int {
		x := L.CheckInt(2)
		y := L.CheckInt(3)
		text := L.CheckString(4)
		selected := L.OptBool(5, false)
		frame.AddLine(overlay.Line{X: x, Y: y, Text: text, Selected: selected})
		return 0
	}))

	err := p.state.CallByParam(lua.P{
		Fn:      p.render,
		NRet:    0,
		Protect: true,
	}, handle)
	if err != nil {
		p.logf("script %s: render: %v", p.name, err)
	}
}

func (p *Plugin) logf(format string, args ...any) {
	if p.debugf != nil {
		p.debugf(format, args...)
	}
}
