// Package core contains the fundamental types used throughout the mosaic renderer.
package core

// Surface is the minimal 2D drawing target a mosaic paints onto.
// The grid never creates, resizes or releases a surface; it receives one as
// a dependency and issues synchronous fill calls against it.
type Surface interface {
	// FillRect fills the axis-aligned rectangle at (x, y) with the given
	// width, height and color. Implementations must tolerate rectangles
	// that fall partly or fully outside the surface.
	FillRect(x, y, w, h int, c Color)

	// Size returns the surface's current pixel dimensions.
	Size() (width, height int)
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// ContainsRect reports whether o lies entirely inside the rectangle.
// An empty o is contained by anything.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Inset returns the rectangle shrunk by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}
