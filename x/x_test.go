package x

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/frizinak/letterbox"
	"github.com/jezek/xgb/xproto"
)

func TestRect(t *testing.T) {
	tests := []struct {
		v    letterbox.Viewport
		want image.Rectangle
	}{
		{
			letterbox.Viewport{
				Position: letterbox.Position{X: 250},
				Size:     letterbox.Dimensions{W: 500, H: 500},
			},
			image.Rect(250, 0, 750, 500),
		},
		{
			letterbox.Viewport{Size: letterbox.Dimensions{W: 100000, H: 20}},
			image.Rect(0, 0, maxuint16, 20),
		},
		{
			letterbox.Viewport{
				Position: letterbox.Position{X: 40000, Y: 1},
				Size:     letterbox.Dimensions{W: 1, H: 1},
			},
			image.Rect(maxint16, 1, maxint16+1, 2),
		},
	}

	for _, tt := range tests {
		if got := rect(tt.v); got != tt.want {
			t.Errorf("rect(%+v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestResizeNotify(t *testing.T) {
	var got []letterbox.ResizeEvent
	d := &Display{
		c: Config{OnResize: func(ev letterbox.ResizeEvent) { got = append(got, ev) }},
		sizes: map[xproto.Window]letterbox.Dimensions{
			5: {W: 800, H: 600},
		},
	}

	events := []xproto.ConfigureNotifyEvent{
		{Event: 5, Window: 5, Width: 800, Height: 600, X: 10},
		{Event: 5, Window: 5, Width: 1024, Height: 600},
		{Event: 5, Window: 9, Width: 10, Height: 10},
		{Event: 6, Window: 6, Width: 10, Height: 10},
		{Event: 5, Window: 5, Width: 1024, Height: 768},
	}
	for _, ev := range events {
		if err := d.processEvent(ev); err != nil {
			t.Fatal(err)
		}
	}

	if len(got) != 2 || got[0].Window != 5 || got[1].Window != 5 {
		t.Fatalf("unexpected resize events %v", got)
	}

	if err := d.processEvent(xproto.DestroyNotifyEvent{Event: 5, Window: 5}); err != nil {
		t.Fatal(err)
	}
	_ = d.processEvent(xproto.ConfigureNotifyEvent{Event: 5, Window: 5, Width: 1, Height: 1})
	if len(got) != 2 {
		t.Fatalf("destroyed window still reported: %v", got)
	}
}

func TestWindowError(t *testing.T) {
	err := windowError(3, xproto.DrawableError{})
	if !errors.Is(err, letterbox.ErrNoWindow) {
		t.Errorf("expected ErrNoWindow, got %v", err)
	}

	other := errors.New("connection reset")
	err = windowError(3, other)
	if errors.Is(err, letterbox.ErrNoWindow) || !errors.Is(err, other) {
		t.Errorf("unexpected wrapping: %v", err)
	}
}

func TestImageToBGRA(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 4, 3))
	src.Set(2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(3, 2, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	img := ImageToBGRA(src)
	if img.Rect != image.Rect(0, 0, 2, 1) {
		t.Fatalf("unexpected bounds %v", img.Rect)
	}
	want := []byte{30, 20, 10, 255, 3, 2, 1, 4}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("pix %v, want %v", img.Pix, want)
		}
	}

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 77
	if c := ImageToBGRA(gray).At(0, 0); c != (color.RGBA{77, 77, 77, 255}) {
		t.Errorf("gray converted to %v", c)
	}
}

func TestImageResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 9))
	img := NewImage(src)

	img.Resize(32, 18)
	if b := img.BGRA().Bounds(); b != image.Rect(0, 0, 32, 18) {
		t.Fatalf("resized to %v", b)
	}

	img.Resize(16, 9)
	if img.BGRA() != img.(*nativeImage).in {
		t.Fatal("resize to the source size should use the source")
	}
}
