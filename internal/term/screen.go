package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mvickers/pounce/internal/app"
	"github.com/mvickers/pounce/internal/overlay"
)

// HostDraw paints the host's own content before overlays are applied.
type HostDraw func(s *Screen, width, height int)

// Screen is the tcell-backed terminal backend.
type Screen struct {
	screen tcell.Screen
	host   HostDraw

	hintStyle      tcell.Style
	hintTypedStyle tcell.Style
	lineStyle      tcell.Style
	selectedStyle  tcell.Style
}

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithHostDraw sets the host content painter.
func WithHostDraw(fn HostDraw) ScreenOption {
	return func(s *Screen) { s.host = fn }
}

// NewScreen initializes the terminal and returns the backend. The caller
// must call Fini when done.
func NewScreen(opts ...ScreenOption) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}

	s := &Screen{
		screen: screen,
		hintStyle: tcell.StyleDefault.
			Foreground(tcell.ColorBlack).
			Background(tcell.ColorYellow).
			Bold(true),
		hintTypedStyle: tcell.StyleDefault.
			Foreground(tcell.ColorGray).
			Background(tcell.ColorYellow),
		lineStyle:     tcell.StyleDefault,
		selectedStyle: tcell.StyleDefault.Reverse(true),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size implements app.Backend.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// SetText draws text starting at (x, y) with the default style. Hosts
// use it from their HostDraw callback.
func (s *Screen) SetText(x, y int, text string) {
	s.setText(x, y, text, s.lineStyle)
}

func (s *Screen) setText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// Render implements app.Backend: host content first, then overlay lines
// and hint labels on top.
func (s *Screen) Render(frame *overlay.Frame) {
	s.screen.Clear()

	width, height := s.screen.Size()
	if s.host != nil {
		s.host(s, width, height)
	}

	for _, line := range frame.Lines {
		style := s.lineStyle
		if line.Selected {
			style = s.selectedStyle
		}
		s.setText(line.X, line.Y, line.Text, style)
	}

	for _, h := range frame.Hints {
		col := h.Area.X
		for i, r := range h.Label {
			style := s.hintStyle
			if i < h.Typed {
				style = s.hintTypedStyle
			}
			s.screen.SetContent(col, h.Area.Y, r, nil, style)
			col++
		}
	}

	s.screen.Show()
}

// PollEvent implements app.Backend. Events the key model cannot
// represent are skipped.
func (s *Screen) PollEvent() app.Event {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			kev, ok := TranslateKey(ev)
			if !ok {
				continue
			}
			return app.Event{Kind: app.EventKey, Key: kev}

		case *tcell.EventResize:
			w, h := ev.Size()
			s.screen.Sync()
			return app.Event{Kind: app.EventResize, Width: w, Height: h}

		case nil:
			// The screen was finalized.
			return app.Event{Kind: app.EventQuit}
		}
	}
}
