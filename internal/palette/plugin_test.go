package palette

import (
	"testing"

	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay"
)

var activation = key.NewRuneEvent('p', key.ModCtrl)

func testPalette(executed *string, opts ...Option) *Plugin {
	p := New(activation, opts...)
	record := func(id string) func() {
		return func() {
			if executed != nil {
				*executed = id
			}
		}
	}
	p.SetCommands([]Command{
		{ID: "open", Title: "Open File", Shortcut: "C-o", Action: record("open")},
		{ID: "close", Title: "Close Buffer", Action: record("close")},
		{ID: "find", Title: "Find in Files", Action: record("find")},
		{ID: "sidebar", Title: "Toggle Sidebar", Action: record("sidebar")},
	})
	return p
}

func typeString(p *Plugin, ctx *overlay.Context, s string) {
	for _, r := range s {
		p.HandleEvent(key.NewRuneEvent(r, key.ModNone), ctx)
	}
}

func TestPaletteOpensWithAllCommands(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	if out := p.HandleEvent(activation, ctx); out != overlay.OutcomeConsumedRedraw {
		t.Fatalf("activation outcome = %v", out)
	}
	if !p.Open() {
		t.Fatal("palette should be open")
	}
	if got := len(p.Results()); got != 4 {
		t.Errorf("empty query shows %d commands, want 4", got)
	}
	sel, ok := p.Selected()
	if !ok || sel.ID != "open" {
		t.Errorf("initial selection = %v, want first registered command", sel.ID)
	}
}

func TestPaletteIdlePassThrough(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	if out := p.HandleEvent(key.NewRuneEvent('x', key.ModNone), ctx); out != overlay.OutcomeNotHandled {
		t.Errorf("closed palette outcome = %v, want not-handled", out)
	}
}

func TestPaletteQueryNarrowsAndRanks(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	p.HandleEvent(activation, ctx)
	typeString(p, ctx, "file")

	results := p.Results()
	if len(results) != 2 {
		t.Fatalf("query matched %d commands, want 2", len(results))
	}
	if results[0].ID != "open" {
		t.Errorf("top result = %s, want open", results[0].ID)
	}
}

func TestPaletteExecute(t *testing.T) {
	ctx := overlay.NewContext(nil)
	var executed string
	p := testPalette(&executed)

	p.HandleEvent(activation, ctx)
	typeString(p, ctx, "file")
	p.HandleEvent(key.NewSpecialEvent(key.KeyDown, key.ModNone), ctx)
	p.HandleEvent(key.NewSpecialEvent(key.KeyEnter, key.ModNone), ctx)

	if executed != "find" {
		t.Errorf("executed %q, want find", executed)
	}
	if p.Open() {
		t.Error("palette should close after execution")
	}
}

func TestPaletteEnterWithNoResults(t *testing.T) {
	ctx := overlay.NewContext(nil)
	var executed string
	p := testPalette(&executed)

	p.HandleEvent(activation, ctx)
	typeString(p, ctx, "zzzz")
	if got := len(p.Results()); got != 0 {
		t.Fatalf("impossible query matched %d commands", got)
	}

	p.HandleEvent(key.NewSpecialEvent(key.KeyEnter, key.ModNone), ctx)
	if executed != "" {
		t.Errorf("executed %q with no results", executed)
	}
	if p.Open() {
		t.Error("enter should still dismiss the palette")
	}
}

func TestPaletteSelectionClamps(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	p.HandleEvent(activation, ctx)
	up := key.NewSpecialEvent(key.KeyUp, key.ModNone)
	down := key.NewSpecialEvent(key.KeyDown, key.ModNone)

	p.HandleEvent(up, ctx)
	if sel, _ := p.Selected(); sel.ID != "open" {
		t.Error("up at the top should stay on the first result")
	}
	for i := 0; i < 10; i++ {
		p.HandleEvent(down, ctx)
	}
	if sel, _ := p.Selected(); sel.ID != "sidebar" {
		t.Errorf("down past the end landed on %s, want last result", sel.ID)
	}
}

func TestPaletteBackspaceWidensQuery(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	p.HandleEvent(activation, ctx)
	typeString(p, ctx, "filex")
	if got := len(p.Results()); got != 0 {
		t.Fatalf("over-narrowed query matched %d commands", got)
	}

	p.HandleEvent(key.NewSpecialEvent(key.KeyBackspace, key.ModNone), ctx)
	if got := len(p.Results()); got != 2 {
		t.Errorf("backspace restored %d results, want 2", got)
	}
}

func TestPaletteEscapeDismisses(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	p.HandleEvent(activation, ctx)
	typeString(p, ctx, "fi")
	p.HandleEvent(key.NewSpecialEvent(key.KeyEscape, key.ModNone), ctx)

	if p.Open() {
		t.Fatal("escape should dismiss the palette")
	}

	// Reopening starts from a blank query.
	p.HandleEvent(activation, ctx)
	if got := len(p.Results()); got != 4 {
		t.Errorf("reopened palette shows %d commands, want all 4", got)
	}
}

func TestPaletteRender(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil, WithLimit(2))

	p.HandleEvent(activation, ctx)

	var frame overlay.Frame
	p.Render(ctx, &frame)

	if len(frame.Lines) != 3 {
		t.Fatalf("rendered %d lines, want prompt + 2 results", len(frame.Lines))
	}
	if frame.Lines[0].Text != "> " {
		t.Errorf("prompt line = %q", frame.Lines[0].Text)
	}
	if !frame.Lines[1].Selected {
		t.Error("first result should be selected")
	}
	if frame.Lines[1].Text != "Open File  (C-o)" {
		t.Errorf("result line = %q", frame.Lines[1].Text)
	}
}

func TestPaletteModalWhileOpen(t *testing.T) {
	ctx := overlay.NewContext(nil)
	p := testPalette(nil)

	p.HandleEvent(activation, ctx)
	if out := p.HandleEvent(key.NewSpecialEvent(key.KeyPageDown, key.ModNone), ctx); !out.IsConsumed() {
		t.Error("open palette must consume unrelated keys")
	}
}
