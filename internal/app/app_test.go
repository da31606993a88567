package app

import (
	"testing"

	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay"
	"github.com/mvickers/pounce/internal/target"
)

// fakeBackend replays a scripted event sequence, then reports quit.
type fakeBackend struct {
	events  []Event
	renders int
	last    overlay.Frame
}

func (b *fakeBackend) Size() (int, int) { return 80, 24 }

func (b *fakeBackend) Render(frame *overlay.Frame) {
	b.renders++
	b.last = overlay.Frame{
		Hints: append([]overlay.HintGlyph(nil), frame.Hints...),
		Lines: append([]overlay.Line(nil), frame.Lines...),
	}
}

func (b *fakeBackend) PollEvent() Event {
	if len(b.events) == 0 {
		return Event{Kind: EventQuit}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev
}

func keyEvents(runes string) []Event {
	out := make([]Event, 0, len(runes))
	for _, r := range runes {
		out = append(out, Event{Kind: EventKey, Key: key.NewRuneEvent(r, key.ModNone)})
	}
	return out
}

type countingPlugin struct {
	outcome overlay.Outcome
	events  []key.Event
	onEvent func(ev key.Event) overlay.Outcome
}

func (p *countingPlugin) Name() string  { return "counting" }
func (p *countingPlugin) Priority() int { return 10 }

func (p *countingPlugin) HandleEvent(ev key.Event, ctx *overlay.Context) overlay.Outcome {
	p.events = append(p.events, ev)
	if p.onEvent != nil {
		return p.onEvent(ev)
	}
	return p.outcome
}

func (p *countingPlugin) Render(ctx *overlay.Context, frame *overlay.Frame) {
	frame.AddLine(overlay.Line{Text: "counting"})
}

func TestRunDrawsAndSealsEachFrame(t *testing.T) {
	backend := &fakeBackend{events: keyEvents("ab")}

	draws := 0
	draw := func(reg *target.Registry, width, height int) {
		draws++
		if width != 80 || height != 24 {
			t.Errorf("draw got %dx%d, want backend size", width, height)
		}
		reg.Register(target.Target{ID: "t1", Area: target.Rect{X: 1, Y: 1, W: 3, H: 1}})
	}

	a := New(backend, draw)
	plugin := &countingPlugin{outcome: overlay.OutcomeConsumedRedraw}
	if _, err := a.Register(plugin); err != nil {
		t.Fatal(err)
	}

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}

	// Initial frame plus one redraw per consumed-redraw event.
	if draws != 3 {
		t.Errorf("draw pass ran %d times, want 3", draws)
	}
	if backend.renders != 3 {
		t.Errorf("backend rendered %d times, want 3", backend.renders)
	}
	if len(plugin.events) != 2 {
		t.Errorf("plugin saw %d events, want 2", len(plugin.events))
	}
	if got, _ := a.Registry().Get("t1"); got.ID != "t1" {
		t.Error("registry should hold the last frame's targets")
	}
	if len(backend.last.Lines) != 1 || backend.last.Lines[0].Text != "counting" {
		t.Errorf("overlay output missing from rendered frame: %+v", backend.last.Lines)
	}
}

func TestRunSkipsRedrawWhenNotRequested(t *testing.T) {
	backend := &fakeBackend{events: keyEvents("abc")}
	a := New(backend, nil)

	plugin := &countingPlugin{outcome: overlay.OutcomeConsumed}
	if _, err := a.Register(plugin); err != nil {
		t.Fatal(err)
	}

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if backend.renders != 1 {
		t.Errorf("backend rendered %d times, want only the initial frame", backend.renders)
	}
}

func TestRunQuitFromHandler(t *testing.T) {
	backend := &fakeBackend{events: keyEvents("xq" + "never")}
	a := New(backend, nil)

	plugin := &countingPlugin{}
	plugin.onEvent = func(ev key.Event) overlay.Outcome {
		if ev.Rune == 'q' {
			a.Quit()
		}
		return overlay.OutcomeConsumed
	}
	if _, err := a.Register(plugin); err != nil {
		t.Fatal(err)
	}

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if len(plugin.events) != 2 {
		t.Errorf("plugin saw %d events after quit, want 2", len(plugin.events))
	}
}

func TestRunUnhandledFallback(t *testing.T) {
	backend := &fakeBackend{events: keyEvents("ab")}

	var fallthroughs []rune
	a := New(backend, nil, WithUnhandled(func(ev key.Event) {
		fallthroughs = append(fallthroughs, ev.Rune)
	}))

	plugin := &countingPlugin{outcome: overlay.OutcomeNotHandled}
	if _, err := a.Register(plugin); err != nil {
		t.Fatal(err)
	}

	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if string(fallthroughs) != "ab" {
		t.Errorf("fallback saw %q, want ab", string(fallthroughs))
	}
}

func TestRunBackendQuitEndsLoop(t *testing.T) {
	backend := &fakeBackend{}
	a := New(backend, nil)
	if err := a.Run(); err != nil {
		t.Fatal(err)
	}
	if backend.renders != 1 {
		t.Errorf("renders = %d, want 1", backend.renders)
	}
}
