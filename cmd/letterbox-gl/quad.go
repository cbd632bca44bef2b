package main

import (
	"fmt"

	"github.com/frizinak/letterbox"
	"github.com/frizinak/letterbox/glw"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const quadVertexShader = `#version 410 core
layout(location = 0) in vec2 pos;
uniform mat4 proj;
void main() {
	gl_Position = proj * vec4(pos, 0.0, 1.0);
}
` + "\x00"

const quadFragmentShader = `#version 410 core
uniform vec4 color;
out vec4 frag;
void main() {
	frag = color;
}
` + "\x00"

// quadVertices returns two triangles in viewport pixels covering size,
// inset by margin on every side.
func quadVertices(size letterbox.Dimensions, margin float32) []float32 {
	w, h := float32(size.W)-margin, float32(size.H)-margin
	if w <= margin || h <= margin {
		return nil
	}
	return []float32{
		margin, margin,
		w, margin,
		w, h,
		margin, margin,
		w, h,
		margin, h,
	}
}

// quad draws a rectangle inset into a camera's viewport through the camera's
// projection, so it stretches with the letterboxed region.
type quad struct {
	program uint32
	vao     uint32
	vbo     uint32
	proj    int32
	color   int32

	margin float32
	size   letterbox.Dimensions
	count  int32

	Color mgl32.Vec4
}

func newQuad(margin float32, color mgl32.Vec4) (*quad, error) {
	program, err := newProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}

	q := &quad{program: program, margin: margin, Color: color}
	q.proj = gl.GetUniformLocation(program, gl.Str("proj\x00"))
	q.color = gl.GetUniformLocation(program, gl.Str("color\x00"))

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return q, nil
}

// Draw renders the quad into cam. The camera must already be applied.
func (q *quad) Draw(cam *glw.Camera) {
	size := cam.Viewport().Size
	if size != q.size {
		q.size = size
		verts := quadVertices(size, q.margin)
		q.count = int32(len(verts) / 2)
		gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
		if len(verts) != 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}
	if q.count == 0 {
		return
	}

	proj := cam.Projection()
	gl.UseProgram(q.program)
	gl.UniformMatrix4fv(q.proj, 1, false, &proj[0])
	gl.Uniform4f(q.color, q.Color.X(), q.Color.Y(), q.Color.Z(), q.Color.W())
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, q.count)
	gl.BindVertexArray(0)
}

func (q *quad) Delete() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
	gl.DeleteProgram(q.program)
}

func shaderLog(get func(uint32, uint32, *int32), info func(uint32, int32, *int32, *uint8), id uint32) string {
	var n int32
	get(id, gl.INFO_LOG_LENGTH, &n)
	log := make([]byte, n+1)
	info(id, n, nil, &log[0])
	return string(log)
}

func compile(kind uint32, src string) (uint32, error) {
	s := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("shader compile error: %s", shaderLog(gl.GetShaderiv, gl.GetShaderInfoLog, s))
	}
	return s, nil
}

// newProgram compiles shaders and links them into a program.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compile(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	f, err := compile(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(v)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)
	gl.DeleteShader(v)
	gl.DeleteShader(f)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, fmt.Errorf("program link error: %s", shaderLog(gl.GetProgramiv, gl.GetProgramInfoLog, program))
	}
	return program, nil
}
