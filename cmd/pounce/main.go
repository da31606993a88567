// Command pounce is an interactive demo of keyboard-driven target
// selection: a grid of items navigable by hints, arrows, and a fuzzy
// command palette.
//
// Keys: the configured hint key (default "f") labels every item,
// Ctrl+P opens the palette, "?" shows help, "q" quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mvickers/pounce/internal/app"
	"github.com/mvickers/pounce/internal/config"
	"github.com/mvickers/pounce/internal/hint"
	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay/nav"
	"github.com/mvickers/pounce/internal/palette"
	"github.com/mvickers/pounce/internal/script"
	"github.com/mvickers/pounce/internal/target"
	"github.com/mvickers/pounce/internal/term"
)

// helpScript is a Lua overlay: "?" toggles a help panel.
const helpScript = `
priority = 50
visible = false

function on_event(ev)
	if visible then
		visible = false
		return "consume_redraw"
	end
	if ev.rune == "?" then
		visible = true
		return "consume_redraw"
	end
	return "pass"
end

function render(frame)
	if not visible then return end
	frame:add_line(2, 1, "pounce demo", true)
	frame:add_line(2, 2, "f       label items with hints")
	frame:add_line(2, 3, "Ctrl+P  command palette")
	frame:add_line(2, 4, "arrows  move selection")
	frame:add_line(2, 5, "q       quit")
end
`

var itemLabels = []string{
	"inbox", "drafts", "sent", "archive", "spam", "trash",
	"starred", "snoozed", "important", "chats", "scheduled", "outbox",
	"receipts", "forums", "updates", "promos", "social", "travel",
}

type demo struct {
	labels   []string
	selected string
}

const (
	gridCols   = 6
	cellWidth  = 12
	gridTop    = 2
	gridLeft   = 2
	rowSpacing = 2
)

func (d *demo) cellRect(i int) target.Rect {
	return target.Rect{
		X: gridLeft + (i%gridCols)*cellWidth,
		Y: gridTop + (i/gridCols)*rowSpacing,
		W: cellWidth - 2,
		H: 1,
	}
}

func (d *demo) registerTargets(reg *target.Registry, width, height int) {
	for i, label := range d.labels {
		t := target.Target{
			ID:   label,
			Area: d.cellRect(i),
			Kind: "cell",
		}
		t.Metadata.Set("index", fmt.Sprintf("%d", i))
		reg.Register(t)
	}
}

func (d *demo) drawHost(s *term.Screen, width, height int) {
	for i, label := range d.labels {
		r := d.cellRect(i)
		text := " " + label
		if label == d.selected {
			text = ">" + label
		}
		s.SetText(r.X, r.Y, text)
	}
	s.SetText(gridLeft, gridTop+len(d.labels)/gridCols*rowSpacing+2,
		"f: hints   Ctrl+P: palette   ?: help   q: quit")
}

func (d *demo) moveSelection(reg *target.Registry, dir nav.Direction) {
	if next, ok := nav.MoveFocus(reg, d.selected, dir, target.Manhattan); ok {
		d.selected = next.ID
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a pounce.toml config file")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	level := cfg.Log.Level
	if *logLevel != "" {
		level = *logLevel
	}

	logFile, err := os.OpenFile("pounce.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(level),
		Output: logFile,
		Prefix: "pounce",
	})

	alphabet, err := hint.NewAlphabet(cfg.Hints.Alphabet)
	if err != nil {
		return err
	}
	hintKey, err := key.Parse(cfg.Hints.ActivationKey)
	if err != nil {
		return err
	}
	paletteKey, err := key.Parse(cfg.Palette.ActivationKey)
	if err != nil {
		return err
	}

	d := &demo{labels: itemLabels, selected: itemLabels[0]}

	screen, err := term.NewScreen(term.WithHostDraw(d.drawHost))
	if err != nil {
		return err
	}
	defer screen.Fini()

	var a *app.App
	a = app.New(screen, d.registerTargets,
		app.WithLogger(logger),
		app.WithUnhandled(func(ev key.Event) {
			switch {
			case ev.Rune == 'q':
				a.Quit()
			case ev.Key == key.KeyUp:
				d.moveSelection(a.Registry(), nav.DirUp)
			case ev.Key == key.KeyDown:
				d.moveSelection(a.Registry(), nav.DirDown)
			case ev.Key == key.KeyLeft:
				d.moveSelection(a.Registry(), nav.DirLeft)
			case ev.Key == key.KeyRight:
				d.moveSelection(a.Registry(), nav.DirRight)
			}
		}),
	)

	gen := hint.NewGenerator(alphabet, hint.Options{
		MaxHints: cfg.Hints.MaxHints,
		MinArea:  cfg.Hints.MinTargetArea,
	})
	navPlugin := nav.New(hintKey, gen,
		nav.WithActivateFunc(func(t target.Target) { d.selected = t.ID }),
		nav.WithDebugLog(logger.Debug),
	)
	if _, err := a.Register(navPlugin); err != nil {
		return err
	}

	pal := palette.New(paletteKey,
		palette.WithLimit(cfg.Palette.Limit),
		palette.WithDebugLog(logger.Debug),
	)
	pal.SetCommands([]palette.Command{
		{ID: "first", Title: "Select First Item", Action: func() { d.selected = d.labels[0] }},
		{ID: "last", Title: "Select Last Item", Action: func() { d.selected = d.labels[len(d.labels)-1] }},
		{ID: "quit", Title: "Quit", Shortcut: "q", Action: a.Quit},
	})
	if _, err := a.Register(pal); err != nil {
		return err
	}

	help, err := script.Load("help", helpScript, script.WithDebugLog(logger.Debug))
	if err != nil {
		return err
	}
	defer help.Close()
	if _, err := a.Register(help); err != nil {
		return err
	}

	if *configPath != "" {
		watcher, err := config.Watch(*configPath, func(cfg config.Config, err error) {
			if err != nil {
				logger.Warn("config reload failed: %v", err)
				return
			}
			logger.SetLevel(app.ParseLogLevel(cfg.Log.Level))
			logger.Info("config reloaded")
		})
		if err != nil {
			logger.Warn("config watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	logger.Info("starting with %d items", len(d.labels))
	return a.Run()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pounce:", err)
		os.Exit(1)
	}
}
