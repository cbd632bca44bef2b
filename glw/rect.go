package glw

import (
	"math"

	"github.com/frizinak/letterbox"
	"github.com/go-gl/mathgl/mgl32"
)

func clamp32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// glRect converts a top-left based viewport to GL window coordinates, which
// start at the bottom-left of a framebuffer fbHeight pixels high. Values
// outside the int32 range GL accepts are clamped.
func glRect(v letterbox.Viewport, fbHeight int) (x, y, w, h int32) {
	x = clamp32(int64(v.Position.X))
	w = clamp32(int64(v.Size.W))
	h = clamp32(int64(v.Size.H))
	y = clamp32(int64(fbHeight) - int64(v.Position.Y) - int64(h))
	return
}

func projection(v letterbox.Viewport) mgl32.Mat4 {
	w, h := float32(v.Size.W), float32(v.Size.H)
	if w == 0 || h == 0 {
		return mgl32.Ident4()
	}
	return mgl32.Ortho2D(0, w, h, 0)
}
