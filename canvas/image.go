// Package canvas provides drawing surface implementations for the mosaic
// renderer.
package canvas

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"mosaic/core"
)

// ImageSurface is a raster drawing surface backed by a gg context. The
// rendered pixels can be read back as an image.Image or encoded as PNG.
type ImageSurface struct {
	ctx    *gg.Context
	width  int
	height int
}

// NewImageSurface creates a raster surface with the specified pixel
// dimensions. Returns nil if either dimension is not positive.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &ImageSurface{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Size returns the surface's pixel dimensions.
func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}

// FillRect fills an axis-aligned rectangle. Rectangles that fall partly
// outside the surface are clipped by the context; empty rectangles are
// ignored.
func (s *ImageSurface) FillRect(x, y, w, h int, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.ctx.SetColor(c)
	s.ctx.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.ctx.Fill()
}

// Image returns the backing image.
func (s *ImageSurface) Image() image.Image {
	return s.ctx.Image()
}

// EncodePNG writes the surface contents to w as a PNG image.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ctx.Image())
}
