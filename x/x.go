package x

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/frizinak/letterbox"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Display watches X windows for size changes and hosts SubWindow cameras
// inside a parent window.
type Display struct {
	sem sync.RWMutex
	c   Config

	x   *xgb.Conn
	wnd xproto.Window

	windows map[string]*SubWindow
	sizes   map[xproto.Window]letterbox.Dimensions

	depth  xproto.DepthInfo
	visual xproto.VisualInfo
}

type Config struct {
	// OnResize is called for every window whose size changed.
	OnResize func(letterbox.ResizeEvent)
	OnError  func(error)
}

func NewFromEnv(c Config) (*Display, error) { return New(os.Getenv("WINDOWID"), c) }

// New connects to the X server and watches windowID for resizes.
func New(windowID string, c Config) (*Display, error) {
	wnd, err := strconv.ParseUint(windowID, 10, 32)
	if err != nil || wnd == 0 {
		return nil, fmt.Errorf("'%s' is not a valid X window id", windowID)
	}

	if c.OnResize == nil {
		c.OnResize = func(letterbox.ResizeEvent) {}
	}
	if c.OnError == nil {
		c.OnError = func(error) {}
	}

	x, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}

	d := &Display{
		c:       c,
		x:       x,
		wnd:     xproto.Window(wnd),
		windows: make(map[string]*SubWindow),
		sizes:   make(map[xproto.Window]letterbox.Dimensions),
	}

	if err := d.Watch(d.ID()); err != nil {
		x.Close()
		return nil, err
	}

	return d, nil
}

// ID of the parent window.
func (d *Display) ID() letterbox.WindowID { return letterbox.WindowID(d.wnd) }

func (d *Display) Close() {
	d.DelAllWindows()
	d.x.Close()
}

// Watch subscribes to structure changes of id so resizes are reported.
func (d *Display) Watch(id letterbox.WindowID) error {
	wnd := xproto.Window(id)
	err := xproto.ChangeWindowAttributesChecked(
		d.x,
		wnd,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskStructureNotify | xproto.EventMaskExposure},
	).Check()
	if err != nil {
		return windowError(id, err)
	}

	size, err := d.Size(id)
	if err != nil {
		return err
	}

	d.sem.Lock()
	d.sizes[wnd] = size
	d.sem.Unlock()
	return nil
}

// Size queries the current size of window id from the X server.
func (d *Display) Size(id letterbox.WindowID) (letterbox.Dimensions, error) {
	g, err := xproto.GetGeometry(d.x, xproto.Drawable(id)).Reply()
	if err != nil {
		return letterbox.Dimensions{}, windowError(id, err)
	}

	return letterbox.Dimensions{W: uint32(g.Width), H: uint32(g.Height)}, nil
}

func windowError(id letterbox.WindowID, err error) error {
	switch err.(type) {
	case xproto.WindowError, xproto.DrawableError:
		return fmt.Errorf("%w: %d", letterbox.ErrNoWindow, id)
	}
	return fmt.Errorf("window %d: %w", id, err)
}

// Render processes a single X event. This method blocks until an event is
// received when block is true.
func (d *Display) Render(block bool) error {
	if block {
		evt, err := d.x.WaitForEvent()
		if err != nil {
			return err
		}
		if evt == nil {
			return errors.New("X server connection closed")
		}
		return d.processEvent(evt)
	}

	evt, err := d.x.PollForEvent()
	if err != nil {
		return err
	}

	return d.processEvent(evt)
}

func (d *Display) processEvent(event xgb.Event) error {
	if event == nil {
		return nil
	}

	switch e := event.(type) {
	case xproto.ConfigureNotifyEvent:
		if e.Window != e.Event {
			return nil
		}
		if d.resized(e.Window, letterbox.Dimensions{W: uint32(e.Width), H: uint32(e.Height)}) {
			d.c.OnResize(letterbox.ResizeEvent{Window: letterbox.WindowID(e.Window)})
		}
	case xproto.DestroyNotifyEvent:
		d.sem.Lock()
		delete(d.sizes, e.Window)
		d.sem.Unlock()
	case xproto.ExposeEvent:
		d.sem.RLock()
		for _, w := range d.windows {
			if w.id() == e.Window {
				w.Render()
			}
		}
		d.sem.RUnlock()
	}

	return nil
}

// resized records size for a watched window and reports whether it changed.
// Moves also produce ConfigureNotify events and are ignored here.
func (d *Display) resized(wnd xproto.Window, size letterbox.Dimensions) bool {
	d.sem.Lock()
	defer d.sem.Unlock()
	prev, ok := d.sizes[wnd]
	if !ok || prev == size {
		return false
	}

	d.sizes[wnd] = size
	return true
}
