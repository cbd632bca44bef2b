package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/containerd/console"
	"github.com/frizinak/letterbox"
)

// TerminalID is the window id a Terminal answers to.
const TerminalID letterbox.WindowID = 1

type sizer interface {
	Size() (console.WinSize, error)
}

// Terminal reports the size of a console in cells.
type Terminal struct {
	sem  sync.Mutex
	con  sizer
	last letterbox.Dimensions
}

func NewTerminal(c console.Console) *Terminal { return &Terminal{con: c} }

func (t *Terminal) Size(id letterbox.WindowID) (letterbox.Dimensions, error) {
	if id != TerminalID {
		return letterbox.Dimensions{}, fmt.Errorf("%w: %d", letterbox.ErrNoWindow, id)
	}

	s, err := t.con.Size()
	if err != nil {
		return letterbox.Dimensions{}, err
	}

	return letterbox.Dimensions{W: uint32(s.Width), H: uint32(s.Height)}, nil
}

// Poll reports whether the terminal size changed since the previous call.
func (t *Terminal) Poll() (bool, error) {
	size, err := t.Size(TerminalID)
	if err != nil {
		return false, err
	}

	t.sem.Lock()
	defer t.sem.Unlock()
	c := size != t.last
	t.last = size
	return c, nil
}

// Watch polls the terminal every interval until stop is closed and pushes a
// resize event on every change, including the first poll.
func (t *Terminal) Watch(
	interval time.Duration,
	push func(letterbox.ResizeEvent),
	onError func(error),
	stop <-chan struct{},
) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		changed, err := t.Poll()
		if err != nil {
			onError(err)
		} else if changed {
			push(letterbox.ResizeEvent{Window: TerminalID})
		}

		select {
		case <-stop:
			return
		case <-tick.C:
		}
	}
}
