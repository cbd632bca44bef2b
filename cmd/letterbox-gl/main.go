package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/frizinak/letterbox"
	"github.com/frizinak/letterbox/glw"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func perr(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func main() {
	var ratio, mode string
	flag.StringVar(&ratio, "ratio", "4:3", "target aspect ratio as W:H or resolution as WxH")
	flag.StringVar(&mode, "mode", "keep", "scaling mode: keep, keep_width, keep_height or scale")
	flag.Parse()

	m, err := letterbox.ParseMode(mode)
	if err != nil {
		perr(err)
		os.Exit(1)
	}
	desc, err := letterbox.ParseDescriptor(ratio, m)
	if err != nil {
		perr(err)
		os.Exit(1)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "letterbox "+desc.String(), nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	var r *letterbox.Reactor
	windows := glw.New(func(ev letterbox.ResizeEvent) { r.Push(ev) })
	r = letterbox.New(windows, letterbox.Config{OnError: perr})

	id := windows.Add(window)
	defer windows.Remove(id)

	cam := glw.NewCamera(window)
	cam.ClearColor = mgl32.Vec4{0.2, 0.3, 0.5, 1}
	if err := r.Spawn("main", letterbox.Bundle{Camera: cam, Viewport: desc, Target: id}); err != nil {
		perr(err)
		os.Exit(1)
	}
	if err := r.Resize(id); err != nil {
		perr(err)
		os.Exit(1)
	}

	q, err := newQuad(16, mgl32.Vec4{0.9, 0.6, 0.2, 1})
	if err != nil {
		perr(err)
		os.Exit(1)
	}
	defer q.Delete()

	for !window.ShouldClose() {
		glfw.PollEvents()
		r.Update()

		gl.Disable(gl.SCISSOR_TEST)
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		cam.Clear()
		q.Draw(cam)

		window.SwapBuffers()
	}
}
