package glyphgen

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Canvas is a rectangular RGBA pixel buffer that glyphs are drawn onto.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	return &Canvas{img: img}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the backing image. Drawing into it modifies the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Scaled returns a new canvas resampled to width x height with Catmull-Rom.
func (c *Canvas) Scaled(width, height int) *Canvas {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), xdraw.Src, nil)
	return &Canvas{img: dst}
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file, replacing any existing file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is built from the output directory
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
