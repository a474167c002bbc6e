package render

import (
	"mosaic/core"
	"mosaic/geometry"
)

// ShadeOffset is the fixed per-channel amount added to the highlight edges
// and removed from the shadow edges of a beveled cell, clamped to [0, 1].
const ShadeOffset = 0.25

// minCellSpan is the smallest width or height (in pixels) at which a cell
// still has room for a one-pixel grouting outline or bevel edge. Below it
// the cell degrades to a flat fill.
const minCellSpan = 3

// Painter draws mosaic cells onto a core.Surface.
//
// The cell grid is laid out against the surface's current size, not any
// preferred size the grid was created with: cellWidth = surfaceWidth/columns
// and cellHeight = surfaceHeight/rows with the remainder pixels absorbed
// into the last column and row (see geometry.SpanSlot). Because the slots
// tile the whole surface, a full paint needs no separate clear pass.
type Painter struct {
	shade float64
}

// NewPainter returns a painter using the default bevel shading.
func NewPainter() *Painter {
	return &Painter{shade: ShadeOffset}
}

// PaintGrid renders every cell of g onto s.
func (p *Painter) PaintGrid(s core.Surface, g Grid) {
	if s == nil || g == nil {
		return
	}
	rows, cols := g.Rows(), g.Columns()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p.PaintCell(s, g, row, col)
		}
	}
}

// PaintCell renders the single cell (row, col) onto s. Out-of-range cells
// and cells with no pixel area are ignored.
//
// Per cell: the effective color is the explicit color if set, else the
// grid's default. A one-pixel grouting outline is drawn when a grouting
// color is configured and the cell is set (or AlwaysDrawGrouting is on).
// Set cells are beveled when Use3D is on; unset cells are always flat.
func (p *Painter) PaintCell(s core.Surface, g Grid, row, col int) {
	if s == nil || g == nil {
		return
	}
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Columns() {
		return
	}
	rect := CellRect(s, g, row, col)
	if rect.Empty() {
		return
	}

	explicit, set := g.Color(row, col)
	effective := g.DefaultColor()
	if set {
		effective = explicit
	}

	inner := rect
	if grout, ok := g.GroutingColor(); ok && (set || g.AlwaysDrawGrouting()) &&
		rect.W >= minCellSpan && rect.H >= minCellSpan {
		p.outline(s, rect, grout)
		inner = rect.Inset(1)
	}

	if !set || !g.Use3D() || inner.W < minCellSpan || inner.H < minCellSpan {
		s.FillRect(inner.X, inner.Y, inner.W, inner.H, effective)
		return
	}
	p.bevel(s, inner, effective)
}

// CellRect returns the pixel rectangle covered by cell (row, col) on s.
func CellRect(s core.Surface, g Grid, row, col int) core.Rect {
	w, h := s.Size()
	x, cw := geometry.SpanSlot(w, g.Columns(), col)
	y, ch := geometry.SpanSlot(h, g.Rows(), row)
	return core.Rect{X: x, Y: y, W: cw, H: ch}
}

// outline draws a one-pixel grouting border along the inside of r.
func (p *Painter) outline(s core.Surface, r core.Rect, c core.Color) {
	s.FillRect(r.X, r.Y, r.W, 1, c)
	s.FillRect(r.X, r.Y+r.H-1, r.W, 1, c)
	s.FillRect(r.X, r.Y+1, 1, r.H-2, c)
	s.FillRect(r.X+r.W-1, r.Y+1, 1, r.H-2, c)
}

// bevel draws a raised cell: base-colored interior, lighter one-pixel edges
// on the top and left, darker one-pixel edges on the bottom and right.
func (p *Painter) bevel(s core.Surface, r core.Rect, base core.Color) {
	light := base.Lighter(p.shade)
	dark := base.Darker(p.shade)

	interior := r.Inset(1)
	s.FillRect(interior.X, interior.Y, interior.W, interior.H, base)
	s.FillRect(r.X, r.Y, r.W-1, 1, light)
	s.FillRect(r.X, r.Y, 1, r.H-1, light)
	s.FillRect(r.X, r.Y+r.H-1, r.W, 1, dark)
	s.FillRect(r.X+r.W-1, r.Y, 1, r.H, dark)
}
