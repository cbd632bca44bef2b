// Package glw feeds glfw framebuffer resizes into a letterbox.Reactor and
// applies the resulting viewports with OpenGL.
package glw

import (
	"fmt"
	"sync"

	"github.com/frizinak/letterbox"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Windows is a letterbox.Windows for glfw windows, sized by their
// framebuffer.
type Windows struct {
	sem     sync.RWMutex
	windows map[letterbox.WindowID]*glfw.Window
	next    letterbox.WindowID
	push    func(letterbox.ResizeEvent)
}

// New returns an empty registry. push receives a resize event from every
// framebuffer size callback of an added window.
func New(push func(letterbox.ResizeEvent)) *Windows {
	if push == nil {
		push = func(letterbox.ResizeEvent) {}
	}
	return &Windows{
		windows: make(map[letterbox.WindowID]*glfw.Window),
		push:    push,
	}
}

// Add registers win and installs its framebuffer size callback, replacing
// any callback previously set. Must be called on the main thread.
func (w *Windows) Add(win *glfw.Window) letterbox.WindowID {
	w.sem.Lock()
	w.next++
	id := w.next
	w.windows[id] = win
	w.sem.Unlock()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(letterbox.ResizeEvent{Window: id})
	})

	return id
}

// Remove forgets id. Call before destroying the glfw window.
func (w *Windows) Remove(id letterbox.WindowID) {
	w.sem.Lock()
	win := w.windows[id]
	delete(w.windows, id)
	w.sem.Unlock()
	if win != nil {
		win.SetFramebufferSizeCallback(nil)
	}
}

func (w *Windows) Window(id letterbox.WindowID) (*glfw.Window, error) {
	w.sem.RLock()
	win, ok := w.windows[id]
	w.sem.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", letterbox.ErrNoWindow, id)
	}
	return win, nil
}

func (w *Windows) Size(id letterbox.WindowID) (letterbox.Dimensions, error) {
	win, err := w.Window(id)
	if err != nil {
		return letterbox.Dimensions{}, err
	}

	fw, fh := win.GetFramebufferSize()
	return letterbox.Dimensions{W: uint32(max(fw, 0)), H: uint32(max(fh, 0))}, nil
}
