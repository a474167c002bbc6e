package canvas

import "mosaic/core"

// FillOp records a single FillRect call made against a RecordingSurface.
type FillOp struct {
	Rect  core.Rect
	Color core.Color
}

// RecordingSurface is a headless surface that records every fill call it
// receives. It backs the package tests, and suits any caller that wants to
// inspect draw traffic without rasterizing anything.
type RecordingSurface struct {
	width, height int
	ops           []FillOp
}

// NewRecordingSurface creates a recording surface with a fixed logical size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{width: width, height: height}
}

// Size returns the surface's logical dimensions.
func (s *RecordingSurface) Size() (int, int) {
	return s.width, s.height
}

// FillRect records the call. Empty rectangles are recorded too, since the
// point of this surface is a faithful trace of what was requested.
func (s *RecordingSurface) FillRect(x, y, w, h int, c core.Color) {
	s.ops = append(s.ops, FillOp{
		Rect:  core.Rect{X: x, Y: y, W: w, H: h},
		Color: c,
	})
}

// Ops returns every recorded fill call in issue order.
func (s *RecordingSurface) Ops() []FillOp {
	return s.ops
}

// Len returns the number of recorded fill calls.
func (s *RecordingSurface) Len() int {
	return len(s.ops)
}

// Reset discards all recorded calls.
func (s *RecordingSurface) Reset() {
	s.ops = nil
}

// OpsWithin returns the recorded calls whose rectangles lie entirely inside r.
func (s *RecordingSurface) OpsWithin(r core.Rect) []FillOp {
	var within []FillOp
	for _, op := range s.ops {
		if r.ContainsRect(op.Rect) {
			within = append(within, op)
		}
	}
	return within
}
