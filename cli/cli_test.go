package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/containerd/console"
	"github.com/frizinak/letterbox"
)

type recorder struct {
	cmds []map[string]any
}

func (r *recorder) Command(c Command) error {
	var buf bytes.Buffer
	if err := c.JSON(&buf); err != nil {
		return err
	}
	v := map[string]any{}
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		return err
	}
	r.cmds = append(r.cmds, v)
	return nil
}

func TestLayer(t *testing.T) {
	rec := &recorder{}
	l := NewLayer(rec, "main")

	l.SetViewport(letterbox.Viewport{
		Position: letterbox.Position{X: 10, Y: 2},
		Size:     letterbox.Dimensions{W: 60, H: 20},
	})
	if len(rec.cmds) != 0 {
		t.Fatalf("layer without source sent %v", rec.cmds)
	}

	if err := l.SetSource("/tmp/a.png"); err != nil {
		t.Fatal(err)
	}
	if len(rec.cmds) != 1 {
		t.Fatalf("expected one add, got %v", rec.cmds)
	}
	add := rec.cmds[0]
	if add["action"] != "add" || add["identifier"] != "main" || add["path"] != "/tmp/a.png" {
		t.Errorf("unexpected add %v", add)
	}
	if add["x"] != 10.0 || add["y"] != 2.0 || add["width"] != 60.0 || add["height"] != 20.0 {
		t.Errorf("unexpected placement %v", add)
	}
	if add["scaler"] != string(Distort) {
		t.Errorf("unexpected scaler %v", add["scaler"])
	}

	l.SetViewport(l.Viewport())
	if len(rec.cmds) != 1 {
		t.Fatalf("unchanged viewport redrawn: %v", rec.cmds)
	}

	if err := l.Hide(); err != nil {
		t.Fatal(err)
	}
	if len(rec.cmds) != 2 || rec.cmds[1]["action"] != "remove" {
		t.Fatalf("expected remove, got %v", rec.cmds)
	}
	if err := l.Hide(); err != nil || len(rec.cmds) != 2 {
		t.Fatalf("hide twice sent %v (%v)", rec.cmds, err)
	}

	if err := l.Show(); err != nil {
		t.Fatal(err)
	}
	l.SetViewport(letterbox.Viewport{})
	if len(rec.cmds) != 4 || rec.cmds[3]["action"] != "remove" {
		t.Fatalf("empty viewport should remove, got %v", rec.cmds)
	}
}

func TestOutputErr(t *testing.T) {
	if err := (Output{Type: "info", Name: "x", Message: "ok"}).Err(); err != nil {
		t.Errorf("info message reported as error: %v", err)
	}
	err := Output{Type: "error", Name: "FileNotFoundError", Message: "a.png"}.Err()
	if err == nil || err.Error() != "ueberzug: [FileNotFoundError] a.png" {
		t.Errorf("unexpected error %v", err)
	}
}

type fakeConsole struct {
	size console.WinSize
	err  error
}

func (f *fakeConsole) Size() (console.WinSize, error) { return f.size, f.err }

func TestTerminal(t *testing.T) {
	con := &fakeConsole{size: console.WinSize{Width: 80, Height: 24}}
	term := &Terminal{con: con}

	size, err := term.Size(TerminalID)
	if err != nil {
		t.Fatal(err)
	}
	if size != (letterbox.Dimensions{W: 80, H: 24}) {
		t.Errorf("got %s", size)
	}

	if _, err := term.Size(2); !errors.Is(err, letterbox.ErrNoWindow) {
		t.Errorf("expected ErrNoWindow, got %v", err)
	}

	if c, _ := term.Poll(); !c {
		t.Error("first poll should report a change")
	}
	if c, _ := term.Poll(); c {
		t.Error("unchanged size reported as change")
	}
	con.size.Width = 100
	if c, _ := term.Poll(); !c {
		t.Error("resize not reported")
	}

	con.err = errors.New("not a tty")
	if _, err := term.Poll(); err == nil {
		t.Error("expected console error")
	}
}

func TestTerminalWatch(t *testing.T) {
	con := &fakeConsole{size: console.WinSize{Width: 80, Height: 24}}
	term := &Terminal{con: con}

	events := make(chan letterbox.ResizeEvent, 1)
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		term.Watch(time.Millisecond, func(ev letterbox.ResizeEvent) {
			select {
			case events <- ev:
			default:
			}
		}, func(err error) { t.Error(err) }, stop)
		close(done)
	}()

	select {
	case ev := <-events:
		if ev.Window != TerminalID {
			t.Errorf("unexpected window %d", ev.Window)
		}
	case <-time.After(time.Second):
		t.Fatal("no resize event")
	}

	close(stop)
	<-done
}
