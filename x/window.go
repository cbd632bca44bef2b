package x

import (
	"sync"

	"github.com/frizinak/letterbox"
	"github.com/jezek/xgb/xproto"
)

func (d *Display) initWindows() {
	if d.depth.Depth != 0 {
		return
	}

	setup := xproto.Setup(d.x)
	screen := setup.DefaultScreen(d.x)
	depth := screen.AllowedDepths[0]
	visual := depth.Visuals[0]
	d.depth = depth
	d.visual = visual
}

// DelWindow will close a subwindow by name. Identical to calling Close on
// the subwindow.
func (d *Display) DelWindow(name string) {
	d.sem.RLock()
	w := d.windows[name]
	d.sem.RUnlock()
	if w != nil {
		w.Close()
	}
}

func (d *Display) DelAllWindows() {
	d.sem.RLock()
	l := make([]string, 0, len(d.windows))
	for name := range d.windows {
		l = append(l, name)
	}
	d.sem.RUnlock()
	for _, name := range l {
		d.DelWindow(name)
	}
}

func (d *Display) delWindow(name string) {
	d.sem.Lock()
	delete(d.windows, name)
	d.sem.Unlock()
}

// SubWindow creates a new subwindow instance if one doesn't already exist
// by that name. The subwindow is a letterbox.Camera: it is moved and resized
// to every viewport it receives.
func (d *Display) SubWindow(name string) *SubWindow {
	d.initWindows()
	d.sem.Lock()
	w, ok := d.windows[name]
	if !ok {
		w = &SubWindow{d: d, name: name}
		d.windows[name] = w
	}
	d.sem.Unlock()

	return w
}

type state byte

const (
	stateMapped state = 1 << iota
	stateCreated
)

type SubWindow struct {
	sem  sync.Mutex
	d    *Display
	name string
	wnd  xproto.Window

	state    state
	viewport letterbox.Viewport
	src      Image
	img      *BGRA
	pixmap   xproto.Pixmap
	gc       xproto.Gcontext

	change bool
}

// Close frees resources on the x server and this subwindow must not be
// used anymore.
func (w *SubWindow) Close() {
	w.sem.Lock()
	w.src = nil
	if w.is(stateCreated) {
		xproto.DestroyWindow(w.d.x, w.wnd)
		w.wnd = 0
		w.state &= ^stateCreated
	}
	w.freePixmap()
	w.sem.Unlock()

	w.d.delWindow(w.name)
}

func (w *SubWindow) Show() {
	w.sem.Lock()
	defer w.sem.Unlock()
	if w.is(stateMapped) {
		return
	}

	w.state |= stateMapped
	if w.is(stateCreated) {
		xproto.MapWindow(w.d.x, w.wnd)
	}

	w.draw()
}

func (w *SubWindow) Hide() {
	w.sem.Lock()
	defer w.sem.Unlock()
	if !w.is(stateMapped) {
		return
	}

	w.state &= ^stateMapped
	if w.is(stateCreated) {
		xproto.UnmapWindow(w.d.x, w.wnd)
	}
}

func (w *SubWindow) Render() {
	w.sem.Lock()
	defer w.sem.Unlock()
	w.draw()
}

func (w *SubWindow) SetImage(img Image) {
	w.sem.Lock()
	w.src = img
	w.img = nil
	w.change = true
	w.draw()
	w.sem.Unlock()
}

// SetViewport moves and resizes the subwindow and rescales its image.
func (w *SubWindow) SetViewport(v letterbox.Viewport) {
	w.sem.Lock()
	defer w.sem.Unlock()
	if v == w.viewport {
		return
	}

	w.viewport = v
	w.change = true
	w.draw()
}

func (w *SubWindow) Viewport() letterbox.Viewport {
	w.sem.Lock()
	v := w.viewport
	w.sem.Unlock()
	return v
}

func (w *SubWindow) id() xproto.Window {
	w.sem.Lock()
	id := w.wnd
	w.sem.Unlock()
	return id
}

func (w *SubWindow) is(s state) bool { return w.state&s != 0 }

func (w *SubWindow) freePixmap() {
	if w.pixmap != 0 {
		xproto.FreePixmap(w.d.x, w.pixmap)
	}
	if w.gc != 0 {
		xproto.FreeGC(w.d.x, w.gc)
	}
	w.pixmap, w.gc = 0, 0
}

func (w *SubWindow) place() {
	r := rect(w.viewport)
	if w.is(stateCreated) {
		xproto.ConfigureWindow(
			w.d.x,
			w.wnd,
			xproto.ConfigWindowX|xproto.ConfigWindowY|
				xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
			[]uint32{
				uint32(r.Min.X),
				uint32(r.Min.Y),
				uint32(r.Dx()),
				uint32(r.Dy()),
			},
		)
		return
	}

	wnd, err := xproto.NewWindowId(w.d.x)
	if err != nil {
		w.d.c.OnError(err)
		return
	}
	w.wnd = wnd
	xproto.CreateWindow(
		w.d.x,
		w.d.depth.Depth,
		w.wnd,
		w.d.wnd,
		int16(r.Min.X),
		int16(r.Min.Y),
		uint16(r.Dx()),
		uint16(r.Dy()),
		0,
		xproto.WindowClassInputOutput,
		w.d.visual.VisualId,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{0x000000, xproto.EventMaskExposure},
	)
	w.state |= stateCreated
	if w.is(stateMapped) {
		xproto.MapWindow(w.d.x, w.wnd)
	}
}

func (w *SubWindow) drawImage() {
	r := rect(w.viewport)
	width, height := r.Dx(), r.Dy()
	if w.img != nil {
		b := w.img.Rect
		if b.Dx() == width && b.Dy() == height && w.pixmap != 0 {
			return
		}
	}

	w.src.Resize(width, height)
	w.img = w.src.BGRA()

	w.freePixmap()
	pixmap, err := xproto.NewPixmapId(w.d.x)
	if err != nil {
		w.d.c.OnError(err)
		return
	}
	gc, err := xproto.NewGcontextId(w.d.x)
	if err != nil {
		w.d.c.OnError(err)
		return
	}

	w.pixmap, w.gc = pixmap, gc
	xproto.CreatePixmap(
		w.d.x,
		w.d.depth.Depth,
		w.pixmap,
		xproto.Drawable(w.wnd),
		uint16(width),
		uint16(height),
	)
	xproto.CreateGC(w.d.x, w.gc, xproto.Drawable(w.pixmap), 0, nil)
	w.d.putImage(w.img, xproto.Drawable(w.pixmap), w.gc, w.d.depth.Depth)
}

func (w *SubWindow) draw() {
	if w.src == nil || !w.is(stateMapped) {
		return
	}

	r := rect(w.viewport)
	if r.Empty() {
		return
	}

	if w.change || !w.is(stateCreated) {
		w.change = false
		w.place()
		if !w.is(stateCreated) {
			return
		}
		w.drawImage()
	}
	if w.pixmap == 0 {
		return
	}

	xproto.CopyArea(
		w.d.x,
		xproto.Drawable(w.pixmap),
		xproto.Drawable(w.wnd),
		w.gc,
		0,
		0,
		0,
		0,
		uint16(r.Dx()),
		uint16(r.Dy()),
	)
}

func (d *Display) putImage(
	img *BGRA,
	pixMap xproto.Drawable,
	gc xproto.Gcontext,
	depth byte,
) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return
	}

	// Requests are capped at 16 bit lengths, send the image in bands.
	s := width * 4
	lines := maxuint16 / s
	if lines == 0 {
		lines = 1
	}
	for y := 0; y < height; y += lines {
		n := lines
		if y+n > height {
			n = height - y
		}
		from, till := y*s, (y+n)*s
		xproto.PutImage(
			d.x,
			xproto.ImageFormatZPixmap,
			pixMap,
			gc,
			uint16(width),
			uint16(n),
			0, int16(y),
			0, depth,
			img.Pix[from:till],
		)
	}
}
