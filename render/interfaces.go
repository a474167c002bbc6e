// Package render turns mosaic grid state into fill calls on a drawing surface.
package render

import "mosaic/core"

// Grid is the read-only view of a mosaic that the painter needs. It is
// satisfied by grid.Mosaic; defining it here keeps the painter free of any
// dependency on the grid implementation.
type Grid interface {
	Rows() int
	Columns() int

	// Color returns the explicit color of a cell, or false when the cell
	// is unset or out of range.
	Color(row, col int) (core.Color, bool)

	// DefaultColor is the color rendered for unset cells. Never "unset".
	DefaultColor() core.Color

	// GroutingColor returns false when grouting is disabled.
	GroutingColor() (core.Color, bool)

	AlwaysDrawGrouting() bool
	Use3D() bool
}
