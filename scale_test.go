package letterbox

import (
	"math"
	"testing"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name   string
		window Dimensions
		ratio  Dimensions
		mode   Mode
		want   Dimensions
	}{
		{"pillarbox", Dimensions{1000, 500}, Dimensions{1, 1}, Keep, Dimensions{500, 500}},
		{"letterbox", Dimensions{1920, 1200}, Dimensions{16, 9}, Keep, Dimensions{1920, 1080}},
		{"exact fit", Dimensions{800, 600}, Dimensions{4, 3}, Keep, Dimensions{800, 600}},
		{"keep width", Dimensions{1000, 1000}, Dimensions{4, 3}, KeepWidth, Dimensions{1000, 750}},
		{"keep width oversized", Dimensions{1000, 500}, Dimensions{1, 1}, KeepWidth, Dimensions{1000, 1000}},
		{"keep height", Dimensions{1000, 500}, Dimensions{16, 9}, KeepHeight, Dimensions{889, 500}},
		{"keep height rounds half up", Dimensions{10, 3}, Dimensions{1, 2}, KeepHeight, Dimensions{2, 3}},
		{"scale", Dimensions{1000, 500}, Dimensions{16, 9}, Scale, Dimensions{1000, 500}},
		{"zero ratio", Dimensions{640, 480}, Dimensions{0, 9}, Keep, Dimensions{640, 480}},
		{"keep zero width window", Dimensions{0, 480}, Dimensions{16, 9}, Keep, Dimensions{}},
		{"keep zero height window", Dimensions{640, 0}, Dimensions{16, 9}, Keep, Dimensions{}},
		{"scale zero window", Dimensions{0, 480}, Dimensions{16, 9}, Scale, Dimensions{0, 480}},
		{"keep width zero height window", Dimensions{1920, 0}, Dimensions{16, 9}, KeepWidth, Dimensions{1920, 1080}},
		{"keep height zero width window", Dimensions{0, 1080}, Dimensions{16, 9}, KeepHeight, Dimensions{1920, 1080}},
		{"keep width saturates", Dimensions{100000, 1}, Dimensions{1, 100000}, KeepWidth, Dimensions{100000, math.MaxUint32}},
		{"keep height saturates", Dimensions{1, 100000}, Dimensions{100000, 1}, KeepHeight, Dimensions{math.MaxUint32, 100000}},
		{"unknown mode", Dimensions{640, 480}, Dimensions{16, 9}, Mode(42), Dimensions{640, 480}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.window, tt.ratio, tt.mode)
			if got != tt.want {
				t.Fatalf("Map(%s, %s, %s) = %s, want %s", tt.window, tt.ratio, tt.mode, got, tt.want)
			}
			if again := Map(tt.window, tt.ratio, tt.mode); again != got {
				t.Fatalf("Map not deterministic: %s then %s", got, again)
			}
		})
	}
}

var (
	windows = []Dimensions{
		{1, 1}, {3, 7}, {640, 480}, {800, 600}, {1000, 500}, {1280, 720},
		{1366, 768}, {1920, 1080}, {1080, 1920}, {2560, 1080}, {333, 1001},
	}
	ratios = []Dimensions{
		{1, 1}, {4, 3}, {3, 2}, {16, 9}, {16, 10}, {21, 9}, {9, 16}, {7, 3}, {1, 5},
	}
)

func TestMapProperties(t *testing.T) {
	for _, w := range windows {
		for _, r := range ratios {
			target := float64(r.W) / float64(r.H)

			if got := Map(w, r, Scale); got != w {
				t.Errorf("scale %s %s: got %s", w, r, got)
			}
			if got := Map(w, r, KeepWidth); got.W != w.W {
				t.Errorf("keep width %s %s: got %s", w, r, got)
			}
			if got := Map(w, r, KeepHeight); got.H != w.H {
				t.Errorf("keep height %s %s: got %s", w, r, got)
			}

			got := Map(w, r, Keep)
			if got.W > w.W || got.H > w.H {
				t.Errorf("keep %s %s: %s exceeds window", w, r, got)
			}
			dw := math.Abs(float64(got.W) - float64(got.H)*target)
			dh := math.Abs(float64(got.H) - float64(got.W)/target)
			if dw > 0.5 && dh > 0.5 {
				t.Errorf("keep %s %s: %s is off ratio by more than a pixel", w, r, got)
			}
		}
	}
}

func TestRound(t *testing.T) {
	tests := map[float64]uint32{
		0.5:            1,
		1.49:           1,
		2.5:            3,
		-3:             0,
		4294967294.4:   math.MaxUint32 - 1,
		math.MaxUint32: math.MaxUint32,
		1e10:           math.MaxUint32,
		math.Inf(1):    math.MaxUint32,
	}
	for in, want := range tests {
		if got := round(in); got != want {
			t.Errorf("round(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		window, size Dimensions
		want         Position
	}{
		{Dimensions{1000, 500}, Dimensions{500, 500}, Position{250, 0}},
		{Dimensions{800, 600}, Dimensions{800, 600}, Position{0, 0}},
		{Dimensions{1000, 500}, Dimensions{889, 500}, Position{55, 0}},
		{Dimensions{1000, 500}, Dimensions{1000, 1000}, Position{0, 0}},
		{Dimensions{1001, 3}, Dimensions{2, 3}, Position{499, 0}},
	}

	for _, tt := range tests {
		if got := Center(tt.window, tt.size); got != tt.want {
			t.Errorf("Center(%s, %s) = %v, want %v", tt.window, tt.size, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	d, err := FromRatio(Dimensions{1, 1}, Keep)
	if err != nil {
		t.Fatal(err)
	}
	got := Fit(Dimensions{1000, 500}, d)
	want := Viewport{Position: Position{250, 0}, Size: Dimensions{500, 500}}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	d, err = FromRatio(Dimensions{4, 3}, Keep)
	if err != nil {
		t.Fatal(err)
	}
	got = Fit(Dimensions{800, 600}, d)
	want = Viewport{Size: Dimensions{800, 600}}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
