package app

import (
	"github.com/mvickers/pounce/internal/input/key"
	"github.com/mvickers/pounce/internal/overlay"
	"github.com/mvickers/pounce/internal/target"
)

// EventKind classifies backend events.
type EventKind uint8

const (
	// EventKey is a key press.
	EventKey EventKind = iota

	// EventResize reports a new terminal size.
	EventResize

	// EventQuit means the backend is shutting down.
	EventQuit
)

// Event is one backend event.
type Event struct {
	Kind   EventKind
	Key    key.Event
	Width  int
	Height int
}

// Backend abstracts the terminal. The tcell implementation lives in the
// term package; tests use scripted fakes.
type Backend interface {
	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// Render draws the host content plus the overlay frame.
	Render(frame *overlay.Frame)

	// PollEvent blocks until the next event.
	PollEvent() Event
}

// DrawFunc is the host's draw pass. It runs once per frame between
// Clear and Seal and registers the frame's targets.
type DrawFunc func(reg *target.Registry, width, height int)

// UnhandledFunc observes events no plugin consumed.
type UnhandledFunc func(ev key.Event)

// App runs the frame loop: draw targets, render overlays, dispatch
// input.
type App struct {
	registry *target.Registry
	arbiter  *overlay.Arbiter
	backend  Backend
	draw     DrawFunc
	logger   *Logger

	onUnhandled UnhandledFunc

	frame overlay.Frame
	quit  bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithUnhandled sets the fallback for unconsumed events.
func WithUnhandled(fn UnhandledFunc) Option {
	return func(a *App) { a.onUnhandled = fn }
}

// New creates an app over the given backend and host draw pass.
func New(backend Backend, draw DrawFunc, opts ...Option) *App {
	a := &App{
		registry: target.NewRegistry(),
		backend:  backend,
		draw:     draw,
		logger:   NullLogger,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.arbiter = overlay.NewArbiter(overlay.WithPanicHandler(func(plugin string, recovered any) {
		a.logger.Error("plugin %s panicked: %v", plugin, recovered)
	}))
	return a
}

// Registry returns the app's target registry.
func (a *App) Registry() *target.Registry {
	return a.registry
}

// Register adds an overlay plugin.
func (a *App) Register(p overlay.Plugin) (overlay.Registration, error) {
	return a.arbiter.Register(p)
}

// Unregister removes an overlay plugin.
func (a *App) Unregister(r overlay.Registration) error {
	return a.arbiter.Unregister(r)
}

// Quit stops the frame loop after the current iteration. Safe to call
// from plugin handlers and command actions.
func (a *App) Quit() {
	a.quit = true
}

// Run drives the frame loop until Quit is called or the backend shuts
// down. Each iteration redraws the frame, then blocks for one event.
func (a *App) Run() error {
	a.redraw()

	for !a.quit {
		ev := a.backend.PollEvent()
		switch ev.Kind {
		case EventQuit:
			a.logger.Info("backend closed, shutting down")
			return nil

		case EventResize:
			a.logger.Debug("resize: %dx%d", ev.Width, ev.Height)
			a.redraw()

		case EventKey:
			res, err := a.arbiter.Dispatch(ev.Key)
			if err != nil {
				a.logger.Error("dispatch: %v", err)
				continue
			}
			if !res.Consumed && a.onUnhandled != nil {
				a.onUnhandled(ev.Key)
				a.redraw()
				continue
			}
			if res.Redraw {
				a.redraw()
			}
		}
	}

	a.logger.Info("quit requested, shutting down")
	return nil
}

// redraw runs one full frame: host draw pass into a fresh registry,
// overlay render pass, then backend output.
func (a *App) redraw() {
	width, height := a.backend.Size()

	a.registry.Clear()
	if a.draw != nil {
		a.draw(a.registry, width, height)
	}
	a.registry.Seal()

	if n := a.registry.Conflicts(); n > 0 {
		a.logger.Warn("draw pass registered %d duplicate target IDs", n)
	}

	a.arbiter.SetRegistry(a.registry)

	a.frame.Reset()
	a.arbiter.Render(&a.frame)
	a.backend.Render(&a.frame)

	if n := a.registry.StaleWrites(); n > 0 {
		a.logger.Warn("%d target registrations arrived after the frame was sealed", n)
	}
}
