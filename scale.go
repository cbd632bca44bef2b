package letterbox

import "math"

// Position of a viewport's top-left corner.
type Position struct {
	X, Y uint32
}

// Viewport is the region of a window a camera renders into.
type Viewport struct {
	Position Position
	Size     Dimensions
}

type scaler func(w, h uint32, target float64) (uint32, uint32)

// round saturates like a float to unsigned cast, oversized KeepWidth and
// KeepHeight results can exceed the uint32 range.
func round(v float64) uint32 {
	v = math.Round(v)
	switch {
	case v >= math.MaxUint32:
		return math.MaxUint32
	case v > 0:
		return uint32(v)
	}
	return 0
}

func scaleKeep(w, h uint32, target float64) (uint32, uint32) {
	if w == 0 || h == 0 {
		return 0, 0
	}
	if float64(w)/float64(h) > target {
		return scaleKeepHeight(w, h, target)
	}
	return scaleKeepWidth(w, h, target)
}

func scaleKeepWidth(w, h uint32, target float64) (uint32, uint32) {
	return w, round(float64(w) / target)
}

func scaleKeepHeight(w, h uint32, target float64) (uint32, uint32) {
	return round(float64(h) * target), h
}

func scaleExact(w, h uint32, target float64) (uint32, uint32) { return w, h }

var scalers = map[Mode]scaler{
	Keep:       scaleKeep,
	KeepWidth:  scaleKeepWidth,
	KeepHeight: scaleKeepHeight,
	Scale:      scaleExact,
}

// Map returns the viewport size for a window of the given size.
//
// A zero ratio component or an unknown mode leaves the window size
// unchanged. Under Keep a window with a zero dimension maps to a zero size.
func Map(window, ratio Dimensions, mode Mode) Dimensions {
	s := scalers[mode]
	if s == nil || ratio.W == 0 || ratio.H == 0 {
		return window
	}

	w, h := s(window.W, window.H, float64(ratio.W)/float64(ratio.H))
	return Dimensions{W: w, H: h}
}

// Center returns the offset that centers size inside window. Axes on which
// size exceeds window are pinned to 0.
func Center(window, size Dimensions) Position {
	var p Position
	if size.W < window.W {
		p.X = (window.W - size.W) / 2
	}
	if size.H < window.H {
		p.Y = (window.H - size.H) / 2
	}
	return p
}

// Fit maps and centers d inside window.
func Fit(window Dimensions, d Descriptor) Viewport {
	size := Map(window, d.Ratio, d.Mode)
	return Viewport{Position: Center(window, size), Size: size}
}
