package x

import (
	"image"
	"image/color"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image is the content a SubWindow stretches over its viewport.
type Image interface {
	Bounds() image.Rectangle
	Resize(w int, h int)
	BGRA() *BGRA
}

type nativeImage struct {
	in  *BGRA
	out *BGRA
}

func ImageRead(r io.Reader) (Image, error) {
	_img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	return NewImage(_img), nil
}

func NewImage(i image.Image) Image {
	return &nativeImage{in: ImageToBGRA(i)}
}

func (n *nativeImage) Bounds() image.Rectangle { return n.in.Bounds() }

// Resize scales the source image to w x h. The source is kept so repeated
// resizes don't accumulate filtering artifacts.
func (n *nativeImage) Resize(w, h int) {
	b := n.in.Bounds()
	if w == b.Dx() && h == b.Dy() {
		n.out = nil
		return
	}

	n.out = NewBGRA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(
		n.out,
		n.out.Bounds(),
		n.in,
		b,
		draw.Src,
		nil,
	)
}

func (n *nativeImage) BGRA() *BGRA {
	if n.out == nil {
		return n.in
	}
	return n.out
}

// ImageToBGRA converts i to the pixel layout of a 24/32 bit ZPixmap.
func ImageToBGRA(i image.Image) *BGRA {
	b := i.Bounds()
	img := NewBGRA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := i.(*image.RGBA); ok {
		rgbaCopy(img, src)
		return img
	}

	draw.Draw(img, img.Rect, i, b.Min, draw.Src)
	return img
}

func rgbaCopy(dst *BGRA, src *image.RGBA) {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		d := dst.Pix[dst.PixOffset(0, y):]
		for x := 0; x < b.Dx()*4; x += 4 {
			d[x+0] = s[x+2]
			d[x+1] = s[x+1]
			d[x+2] = s[x+0]
			d[x+3] = s[x+3]
		}
	}
}

// BGRA is an in-memory image with premultiplied blue, green, red, alpha
// samples.
type BGRA struct {
	Rect   image.Rectangle
	Pix    []byte
	Stride int
}

func NewBGRA(r image.Rectangle) *BGRA {
	return &BGRA{
		Rect:   r,
		Pix:    make([]uint8, 4*r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
	}
}

func (i *BGRA) ColorModel() color.Model { return color.RGBAModel }
func (i *BGRA) Bounds() image.Rectangle { return i.Rect }

func (i *BGRA) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*4
}

func (i *BGRA) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return color.RGBA{}
	}
	o := i.PixOffset(x, y)
	s := i.Pix[o : o+4 : o+4]
	return color.RGBA{s[2], s[1], s[0], s[3]}
}

func (i *BGRA) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	o := i.PixOffset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := i.Pix[o : o+4 : o+4]
	s[3] = c1.A
	s[2] = c1.R
	s[1] = c1.G
	s[0] = c1.B
}
