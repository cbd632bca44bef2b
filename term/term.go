// Package term hosts letterboxed panes on a tcell screen. Sizes are in
// terminal cells.
package term

import (
	"fmt"
	"sync"

	"github.com/frizinak/letterbox"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenID is the window id a Screen answers to.
const ScreenID letterbox.WindowID = 1

// Screen is a letterbox.Windows backed by a tcell screen.
type Screen struct {
	sem      sync.Mutex
	s        tcell.Screen
	onResize func(letterbox.ResizeEvent)
	panes    []*Pane
}

// New wraps an initialized tcell screen. onResize receives a resize event
// for every *tcell.EventResize passed to HandleEvent.
func New(s tcell.Screen, onResize func(letterbox.ResizeEvent)) *Screen {
	if onResize == nil {
		onResize = func(letterbox.ResizeEvent) {}
	}
	return &Screen{s: s, onResize: onResize}
}

func (s *Screen) Size(id letterbox.WindowID) (letterbox.Dimensions, error) {
	if id != ScreenID {
		return letterbox.Dimensions{}, fmt.Errorf("%w: %d", letterbox.ErrNoWindow, id)
	}

	w, h := s.s.Size()
	if w < 0 || h < 0 {
		return letterbox.Dimensions{}, nil
	}
	return letterbox.Dimensions{W: uint32(w), H: uint32(h)}, nil
}

// HandleEvent consumes resize events and reports whether ev was one.
func (s *Screen) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); !ok {
		return false
	}

	s.s.Sync()
	s.onResize(letterbox.ResizeEvent{Window: ScreenID})
	return true
}

// Pane creates a camera drawn by Draw.
func (s *Screen) Pane(label string, style tcell.Style) *Pane {
	p := &Pane{Label: label, Style: style, Fill: ' '}
	s.sem.Lock()
	s.panes = append(s.panes, p)
	s.sem.Unlock()
	return p
}

// Draw clears the screen and paints every pane into its viewport.
func (s *Screen) Draw() {
	s.sem.Lock()
	panes := make([]*Pane, len(s.panes))
	copy(panes, s.panes)
	s.sem.Unlock()

	s.s.Clear()
	w, h := s.s.Size()
	for _, p := range panes {
		p.draw(s.s, w, h)
	}
	s.s.Show()
}

// Pane is a letterbox.Camera that fills its viewport with Fill and centers
// Label inside it.
type Pane struct {
	sem      sync.Mutex
	viewport letterbox.Viewport

	Label string
	Style tcell.Style
	Fill  rune
}

func (p *Pane) SetViewport(v letterbox.Viewport) {
	p.sem.Lock()
	p.viewport = v
	p.sem.Unlock()
}

func (p *Pane) Viewport() letterbox.Viewport {
	p.sem.Lock()
	defer p.sem.Unlock()
	return p.viewport
}

func (p *Pane) draw(s tcell.Screen, sw, sh int) {
	v := p.Viewport()
	x0, y0 := int(v.Position.X), int(v.Position.Y)
	x1, y1 := min(x0+int(v.Size.W), sw), min(y0+int(v.Size.H), sh)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, p.Fill, nil, p.Style)
		}
	}

	label := p.Label
	if label == "" {
		return
	}
	if runewidth.StringWidth(label) > x1-x0 {
		label = runewidth.Truncate(label, x1-x0, "")
	}

	x := x0 + (x1-x0-runewidth.StringWidth(label))/2
	y := y0 + (y1-y0)/2
	for _, r := range label {
		s.SetContent(x, y, r, nil, p.Style)
		x += runewidth.RuneWidth(r)
	}
}
