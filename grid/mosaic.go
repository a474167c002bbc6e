// Package grid implements the mosaic grid: a matrix of optionally-colored
// cells together with its display configuration and repaint logic.
//
// Thread Safety:
// Mosaic is NOT safe for concurrent use. Every operation is a bounded,
// synchronous computation expected to run on the goroutine that owns the
// drawing surface; callers needing shared access must serialize externally.
//
// Coordinate System:
//   - Cell (0, 0) is the top-left of the grid
//   - Rows increase downward, columns increase rightward
//   - Out-of-range coordinates are not errors: reads fall back to the
//     default color and writes are silently ignored, so callers may address
//     cells near the grid edges speculatively without bounds-checking first
package grid

import (
	"errors"

	"mosaic/core"
	"mosaic/geometry"
	"mosaic/render"
)

// ErrInvalidDimension is returned when a mosaic is created or resized with a
// non-positive number of rows or columns.
var ErrInvalidDimension = errors.New("rows and columns must be greater than zero")

// Defaults applied by New and NewWithBlockSize.
const (
	DefaultRows      = 42
	DefaultColumns   = 42
	DefaultBlockSize = 16

	// MinBlockSize is the smallest preferred cell edge; smaller requests
	// are raised to this value.
	MinBlockSize = 5
)

// Mosaic is a grid of rows × columns colored rectangles. Cells without an
// explicit color render in the default color; optional "grouting" draws a
// one-pixel outline around cells, and set cells can be drawn with a raised
// 3D bevel.
type Mosaic struct {
	rows, cols int
	cells      []*core.Color // row-major arena; nil entries are unset

	defaultColor       core.Color
	groutingColor      *core.Color // nil disables grouting
	alwaysDrawGrouting bool
	use3D              bool
	autopaint          bool

	blockW, blockH int
	surface        core.Surface
	painter        *render.Painter
}

// The painter reads mosaic state through this view.
var _ render.Grid = (*Mosaic)(nil)

// New creates a mosaic with the given dimensions and the default 16-pixel
// preferred block size. Returns ErrInvalidDimension unless both dimensions
// are positive.
func New(rows, columns int) (*Mosaic, error) {
	return NewWithBlockSize(rows, columns, DefaultBlockSize, DefaultBlockSize)
}

// NewWithBlockSize creates a mosaic with the given dimensions and preferred
// per-cell pixel size. Block sizes below MinBlockSize are raised to it. The
// actual rendered cell size is derived from the attached surface, so the
// preferred size only drives PreferredSize.
//
// A new mosaic has every cell unset, a black default color, gray grouting,
// AlwaysDrawGrouting off, Use3D on and Autopaint on. No surface is attached;
// draw operations are skipped until SetSurface is called.
func NewWithBlockSize(rows, columns, blockHeight, blockWidth int) (*Mosaic, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidDimension
	}
	grouting := core.Gray
	return &Mosaic{
		rows:          rows,
		cols:          columns,
		cells:         make([]*core.Color, rows*columns),
		defaultColor:  core.Black,
		groutingColor: &grouting,
		use3D:         true,
		autopaint:     true,
		blockW:        geometry.Max(blockWidth, MinBlockSize),
		blockH:        geometry.Max(blockHeight, MinBlockSize),
		painter:       render.NewPainter(),
	}, nil
}

// Rows returns the number of rows of cells in the grid.
func (m *Mosaic) Rows() int {
	return m.rows
}

// Columns returns the number of columns of cells in the grid.
func (m *Mosaic) Columns() int {
	return m.cols
}

// PreferredSize returns the pixel size the mosaic would like its surface to
// have: columns×blockWidth by rows×blockHeight. The owner of the surface is
// free to ignore it; rendering always follows the surface's actual size.
func (m *Mosaic) PreferredSize() (width, height int) {
	return m.cols * m.blockW, m.rows * m.blockH
}

// SetSurface attaches the drawing surface and paints the current state onto
// it. The surface stays owned by the caller. A nil surface detaches and
// turns all subsequent draw operations into no-ops.
func (m *Mosaic) SetSurface(s core.Surface) {
	m.surface = s
	m.repaintAll()
}

// Surface returns the currently attached surface, which may be nil.
func (m *Mosaic) Surface() core.Surface {
	return m.surface
}

// Color returns the explicitly set color of a cell. The second return is
// false when the cell is unset or out of range; the default color is never
// substituted here (see Channel for the effective rendered color).
func (m *Mosaic) Color(row, col int) (core.Color, bool) {
	if !m.inRange(row, col) {
		return core.Color{}, false
	}
	c := m.cells[m.index(row, col)]
	if c == nil {
		return core.Color{}, false
	}
	return *c, true
}

// Channel returns the requested channel of the cell's effective color: the
// explicit color when set and in range, otherwise the default color.
func (m *Mosaic) Channel(row, col int, ch core.Channel) float64 {
	if c, ok := m.Color(row, col); ok {
		return c.Channel(ch)
	}
	return m.defaultColor.Channel(ch)
}

// Red returns the red channel of the cell's effective color.
func (m *Mosaic) Red(row, col int) float64 {
	return m.Channel(row, col, core.ChannelRed)
}

// Green returns the green channel of the cell's effective color.
func (m *Mosaic) Green(row, col int) float64 {
	return m.Channel(row, col, core.ChannelGreen)
}

// Blue returns the blue channel of the cell's effective color.
func (m *Mosaic) Blue(row, col int) float64 {
	return m.Channel(row, col, core.ChannelBlue)
}

// SetColor sets the explicit color of a cell, clamping each channel to
// [0, 1], and repaints exactly that cell. Out-of-range coordinates are
// silently ignored.
func (m *Mosaic) SetColor(row, col int, c core.Color) {
	if !m.inRange(row, col) {
		return
	}
	c = c.Clamped()
	m.cells[m.index(row, col)] = &c
	m.repaintCell(row, col)
}

// SetRGB sets the explicit color of a cell from individual channel values,
// clamping each to [0, 1]. Out-of-range coordinates are silently ignored.
func (m *Mosaic) SetRGB(row, col int, r, g, b float64) {
	m.SetColor(row, col, core.Color{R: r, G: g, B: b})
}

// ClearColor unsets a cell so it renders in the default color again, and
// repaints that cell. Out-of-range coordinates are silently ignored.
func (m *Mosaic) ClearColor(row, col int) {
	if !m.inRange(row, col) {
		return
	}
	m.cells[m.index(row, col)] = nil
	m.repaintCell(row, col)
}

// Clear unsets every cell and repaints the grid.
func (m *Mosaic) Clear() {
	m.cells = make([]*core.Color, m.rows*m.cols)
	m.repaintAll()
}

// DefaultColor returns the color rendered for unset cells.
func (m *Mosaic) DefaultColor() core.Color {
	return m.defaultColor
}

// SetDefaultColor sets the color rendered for unset cells, clamped to
// [0, 1] per channel. Setting the current value again is a no-op; a changed
// value repaints the whole grid.
func (m *Mosaic) SetDefaultColor(c core.Color) {
	c = c.Clamped()
	if c == m.defaultColor {
		return
	}
	m.defaultColor = c
	m.repaintAll()
}

// GroutingColor returns the grouting color; false means grouting is
// disabled.
func (m *Mosaic) GroutingColor() (core.Color, bool) {
	if m.groutingColor == nil {
		return core.Color{}, false
	}
	return *m.groutingColor, true
}

// SetGroutingColor sets the color of the grouting drawn between cells,
// clamped per channel. The grid is repainted only when the value actually
// changes, including the change from disabled to enabled.
func (m *Mosaic) SetGroutingColor(c core.Color) {
	c = c.Clamped()
	if m.groutingColor != nil && *m.groutingColor == c {
		return
	}
	m.groutingColor = &c
	m.repaintAll()
}

// ClearGroutingColor disables grouting. A no-op when grouting is already
// disabled; otherwise the grid is repainted.
func (m *Mosaic) ClearGroutingColor() {
	if m.groutingColor == nil {
		return
	}
	m.groutingColor = nil
	m.repaintAll()
}

// AlwaysDrawGrouting reports whether grouting is drawn around unset cells
// too.
func (m *Mosaic) AlwaysDrawGrouting() bool {
	return m.alwaysDrawGrouting
}

// SetAlwaysDrawGrouting controls whether grouting is drawn around unset
// cells. Repaints the grid when the value changes.
func (m *Mosaic) SetAlwaysDrawGrouting(always bool) {
	if m.alwaysDrawGrouting == always {
		return
	}
	m.alwaysDrawGrouting = always
	m.repaintAll()
}

// Use3D reports whether set cells are drawn with a raised bevel.
func (m *Mosaic) Use3D() bool {
	return m.use3D
}

// SetUse3D controls whether set cells are drawn with a raised bevel; unset
// cells are always flat. Repaints the grid when the value changes.
func (m *Mosaic) SetUse3D(use3D bool) {
	if m.use3D == use3D {
		return
	}
	m.use3D = use3D
	m.repaintAll()
}

// Autopaint reports whether state changes repaint the surface immediately.
func (m *Mosaic) Autopaint() bool {
	return m.autopaint
}

// SetAutopaint controls whether state changes repaint the surface
// immediately. With autopaint off, callers batch changes and invoke Repaint
// themselves. Changing the flag never draws anything.
func (m *Mosaic) SetAutopaint(autopaint bool) {
	m.autopaint = autopaint
}

// SetGridSize changes the grid dimensions. When preserveData is true the
// overlapping top-left block of cell colors is carried over; every other
// cell in the new grid is unset. Returns ErrInvalidDimension, with no state
// changed, unless both dimensions are positive. Always repaints.
func (m *Mosaic) SetGridSize(rows, columns int, preserveData bool) error {
	if rows <= 0 || columns <= 0 {
		return ErrInvalidDimension
	}
	cells := make([]*core.Color, rows*columns)
	if preserveData {
		rowMax := geometry.Min(rows, m.rows)
		colMax := geometry.Min(columns, m.cols)
		for r := 0; r < rowMax; r++ {
			for c := 0; c < colMax; c++ {
				cells[r*columns+c] = m.cells[r*m.cols+c]
			}
		}
	}
	m.rows = rows
	m.cols = columns
	m.cells = cells
	m.repaintAll()
	return nil
}

// Repaint renders the whole grid onto the attached surface, regardless of
// the autopaint flag. A no-op without a surface.
func (m *Mosaic) Repaint() {
	m.painter.PaintGrid(m.surface, m)
}

// Paint renders the whole grid onto an arbitrary surface without attaching
// it. Exporters and previews use this to rasterize the current state.
func (m *Mosaic) Paint(s core.Surface) {
	m.painter.PaintGrid(s, m)
}

func (m *Mosaic) repaintCell(row, col int) {
	if m.autopaint && m.surface != nil {
		m.painter.PaintCell(m.surface, m, row, col)
	}
}

func (m *Mosaic) repaintAll() {
	if m.autopaint && m.surface != nil {
		m.painter.PaintGrid(m.surface, m)
	}
}

func (m *Mosaic) inRange(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Mosaic) index(row, col int) int {
	return row*m.cols + col
}
