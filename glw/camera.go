package glw

import (
	"sync"

	"github.com/frizinak/letterbox"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a letterbox.Camera rendering into a region of a glfw window.
type Camera struct {
	sem      sync.Mutex
	win      *glfw.Window
	viewport letterbox.Viewport

	ClearColor mgl32.Vec4
}

func NewCamera(win *glfw.Window) *Camera {
	return &Camera{win: win, ClearColor: mgl32.Vec4{0, 0, 0, 1}}
}

func (c *Camera) SetViewport(v letterbox.Viewport) {
	c.sem.Lock()
	c.viewport = v
	c.sem.Unlock()
}

func (c *Camera) Viewport() letterbox.Viewport {
	c.sem.Lock()
	defer c.sem.Unlock()
	return c.viewport
}

// Projection maps pixel coordinates inside the viewport, origin top-left,
// to clip space.
func (c *Camera) Projection() mgl32.Mat4 {
	return projection(c.Viewport())
}

// Apply sets the GL viewport and scissor box to the camera's viewport. Must
// be called with the window's context current.
func (c *Camera) Apply() {
	_, fh := c.win.GetFramebufferSize()
	x, y, w, h := glRect(c.Viewport(), fh)
	gl.Viewport(x, y, w, h)
	gl.Scissor(x, y, w, h)
	gl.Enable(gl.SCISSOR_TEST)
}

// Clear applies the camera and clears its region with ClearColor.
func (c *Camera) Clear() {
	c.Apply()
	col := c.ClearColor
	gl.ClearColor(col.X(), col.Y(), col.Z(), col.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
