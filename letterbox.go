package letterbox

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoWindow = errors.New("no such window")
	ErrNoCamera = errors.New("bundle has no camera")
)

// WindowID identifies a host window. AnyWindow is never a valid id.
type WindowID uint32

const AnyWindow WindowID = 0

// ResizeEvent notifies the reactor that a window changed size.
type ResizeEvent struct {
	Window WindowID
}

// Windows resolves a window to its current physical size. Implementations
// return an error wrapping ErrNoWindow when the window is gone.
type Windows interface {
	Size(id WindowID) (Dimensions, error)
}

// Camera receives recomputed viewports.
type Camera interface {
	SetViewport(Viewport)
}

// Bundle creates a camera together with its descriptor.
type Bundle struct {
	Camera   Camera
	Viewport Descriptor

	// Target restricts the camera to resizes of a single window.
	// AnyWindow follows all of them.
	Target WindowID
}

type Config struct {
	OnError func(error)
}

// Reactor applies queued resize events to every spawned camera.
type Reactor struct {
	sem     sync.Mutex
	c       Config
	windows Windows

	cameras map[string]Bundle
	order   []string
	queue   []ResizeEvent
}

func New(windows Windows, c Config) *Reactor {
	if c.OnError == nil {
		c.OnError = func(error) {}
	}

	return &Reactor{
		c:       c,
		windows: windows,
		cameras: make(map[string]Bundle),
		order:   []string{},
	}
}

// Spawn registers b under name, replacing any camera by that name.
func (r *Reactor) Spawn(name string, b Bundle) error {
	if b.Camera == nil {
		return fmt.Errorf("%w: '%s'", ErrNoCamera, name)
	}
	if err := b.Viewport.validate(); err != nil {
		return fmt.Errorf("camera '%s': %w", name, err)
	}

	r.sem.Lock()
	defer r.sem.Unlock()
	if _, ok := r.cameras[name]; !ok {
		r.order = append(r.order, name)
	}
	r.cameras[name] = b

	return nil
}

func (r *Reactor) Despawn(name string) {
	r.sem.Lock()
	defer r.sem.Unlock()
	if _, ok := r.cameras[name]; !ok {
		return
	}

	delete(r.cameras, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Names of all spawned cameras in spawn order.
func (r *Reactor) Names() []string {
	r.sem.Lock()
	l := make([]string, len(r.order))
	copy(l, r.order)
	r.sem.Unlock()
	return l
}

// Push queues a resize event. Safe to call from host event goroutines.
func (r *Reactor) Push(ev ResizeEvent) {
	r.sem.Lock()
	r.queue = append(r.queue, ev)
	r.sem.Unlock()
}

// Update drains all queued events in arrival order and returns how many were
// processed. Events for windows that no longer exist are reported to
// Config.OnError and skipped.
func (r *Reactor) Update() int {
	r.sem.Lock()
	queue := r.queue
	r.queue = nil
	r.sem.Unlock()

	for _, ev := range queue {
		if err := r.Resize(ev.Window); err != nil {
			r.c.OnError(err)
		}
	}

	return len(queue)
}

// Resize immediately refits all cameras following window id.
func (r *Reactor) Resize(id WindowID) error {
	size, err := r.windows.Size(id)
	if err != nil {
		return fmt.Errorf("resize of window %d: %w", id, err)
	}

	for _, b := range r.bundles(id) {
		b.Camera.SetViewport(Fit(size, b.Viewport))
	}

	return nil
}

func (r *Reactor) bundles(id WindowID) []Bundle {
	r.sem.Lock()
	defer r.sem.Unlock()
	l := make([]Bundle, 0, len(r.order))
	for _, name := range r.order {
		b := r.cameras[name]
		if b.Target != AnyWindow && b.Target != id {
			continue
		}
		l = append(l, b)
	}

	return l
}
