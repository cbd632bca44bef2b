package main

import (
	"testing"

	"github.com/frizinak/letterbox"
	"github.com/frizinak/letterbox/glw"
	"github.com/go-gl/mathgl/mgl32"
)

func TestQuadVertices(t *testing.T) {
	if v := quadVertices(letterbox.Dimensions{W: 20, H: 200}, 10); v != nil {
		t.Errorf("viewport thinner than the margins should draw nothing, got %v", v)
	}
	if v := quadVertices(letterbox.Dimensions{W: 1, H: 1}, 0); len(v) != 12 {
		t.Errorf("expected 6 vertices, got %d floats", len(v))
	}
}

func TestQuadInsideProjection(t *testing.T) {
	cam := glw.NewCamera(nil)
	cam.SetViewport(letterbox.Viewport{
		Position: letterbox.Position{X: 150},
		Size:     letterbox.Dimensions{W: 600, H: 450},
	})

	proj := cam.Projection()
	verts := quadVertices(cam.Viewport().Size, 16)
	if len(verts) != 12 {
		t.Fatalf("expected 6 vertices, got %d floats", len(verts))
	}

	for i := 0; i < len(verts); i += 2 {
		p := proj.Mul4x1(mgl32.Vec4{verts[i], verts[i+1], 0, 1})
		if p.X() <= -1 || p.X() >= 1 || p.Y() <= -1 || p.Y() >= 1 {
			t.Errorf("vertex %v,%v projects outside the viewport: %v", verts[i], verts[i+1], p)
		}
	}

	topLeft := proj.Mul4x1(mgl32.Vec4{verts[0], verts[1], 0, 1})
	want := mgl32.Vec4{-1 + 32.0/600, 1 - 32.0/450, 0, 1}
	if !topLeft.ApproxEqual(want) {
		t.Errorf("top-left corner projects to %v, want %v", topLeft, want)
	}
}
