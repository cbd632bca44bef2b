package x

import (
	"image"

	"github.com/frizinak/letterbox"
)

const (
	maxuint16 = 1<<16 - 1
	maxint16  = 1<<15 - 1
)

func clamp(v uint32, limit int) int {
	if v > uint32(limit) {
		return limit
	}
	return int(v)
}

// rect converts a viewport to X11 window geometry. X coordinates are 16 bit,
// oversized viewports are clipped to what the protocol can express.
func rect(v letterbox.Viewport) image.Rectangle {
	x, y := clamp(v.Position.X, maxint16), clamp(v.Position.Y, maxint16)
	return image.Rect(
		x,
		y,
		x+clamp(v.Size.W, maxuint16),
		y+clamp(v.Size.H, maxuint16),
	)
}
