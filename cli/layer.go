package cli

import (
	"sync"

	"github.com/frizinak/letterbox"
)

// Layer is a letterbox.Camera backed by a ueberzug placement. Viewports are
// in terminal cells.
type Layer struct {
	sem     sync.Mutex
	c       Commander
	OnError func(error)

	id       string
	path     string
	viewport letterbox.Viewport
	hide     bool
	shown    bool
}

func NewLayer(c Commander, id string) *Layer {
	return &Layer{c: c, id: id, OnError: func(error) {}}
}

func (l *Layer) ID() string { return l.id }

func (l *Layer) SetViewport(v letterbox.Viewport) {
	l.sem.Lock()
	defer l.sem.Unlock()
	if l.viewport == v && l.shown {
		return
	}
	l.viewport = v
	l.report(l.draw())
}

func (l *Layer) Viewport() letterbox.Viewport {
	l.sem.Lock()
	defer l.sem.Unlock()
	return l.viewport
}

// SetSource sets the image file to display.
func (l *Layer) SetSource(path string) error {
	l.sem.Lock()
	defer l.sem.Unlock()
	l.path = path
	return l.draw()
}

func (l *Layer) Show() error { return l.setHidden(false) }
func (l *Layer) Hide() error { return l.setHidden(true) }

func (l *Layer) setHidden(v bool) error {
	l.sem.Lock()
	defer l.sem.Unlock()
	if l.hide == v {
		return nil
	}
	l.hide = v
	return l.draw()
}

func (l *Layer) report(err error) {
	if err != nil {
		l.OnError(err)
	}
}

func (l *Layer) draw() error {
	size := l.viewport.Size
	if l.path == "" || l.hide || size.W == 0 || size.H == 0 {
		if !l.shown {
			return nil
		}
		l.shown = false
		return l.c.Command(Remove(l.id))
	}

	l.shown = true
	return l.c.Command(Add(l.id, l.path, l.viewport))
}
