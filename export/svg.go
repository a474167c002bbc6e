package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"mosaic/core"
	"mosaic/grid"
)

// SVGExporter renders a mosaic as an SVG document of filled rectangles, one
// rect per fill call the painter issues.
type SVGExporter struct {
	// Scale multiplies the mosaic's preferred pixel size. Values below 1
	// are treated as 1.
	Scale int
}

// NewSVGExporter creates an SVG exporter at 1:1 scale.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{Scale: 1}
}

// svgSurface adapts an svgo document to core.Surface.
type svgSurface struct {
	doc    *svg.SVG
	width  int
	height int
}

func (s *svgSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *svgSurface) FillRect(x, y, w, h int, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.doc.Rect(x, y, w, h, "fill:"+c.Hex())
}

// Export renders the mosaic and returns the SVG document bytes.
func (e *SVGExporter) Export(m *grid.Mosaic) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("mosaic is nil")
	}
	scale := e.Scale
	if scale < 1 {
		scale = 1
	}
	width, height := m.PreferredSize()
	width *= scale
	height *= scale

	var buf bytes.Buffer
	doc := svg.New(&buf)
	doc.Start(width, height)
	m.Paint(&svgSurface{doc: doc, width: width, height: height})
	doc.End()
	return buf.Bytes(), nil
}

// FileExtension returns the recommended file extension.
func (e *SVGExporter) FileExtension() string {
	return ".svg"
}

// FormatName returns the format name.
func (e *SVGExporter) FormatName() string {
	return "SVG document"
}
