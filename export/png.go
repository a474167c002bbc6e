package export

import (
	"bytes"
	"fmt"

	"mosaic/canvas"
	"mosaic/grid"
)

// PNGExporter rasterizes a mosaic onto an image surface and encodes it as
// PNG. The image is sized by the mosaic's preferred size times Scale.
type PNGExporter struct {
	// Scale multiplies the mosaic's preferred pixel size. Values below 1
	// are treated as 1.
	Scale int
}

// NewPNGExporter creates a PNG exporter at 1:1 scale.
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{Scale: 1}
}

// Export renders the mosaic and returns the encoded PNG bytes.
func (e *PNGExporter) Export(m *grid.Mosaic) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("mosaic is nil")
	}
	scale := e.Scale
	if scale < 1 {
		scale = 1
	}
	width, height := m.PreferredSize()
	surface := canvas.NewImageSurface(width*scale, height*scale)
	if surface == nil {
		return nil, fmt.Errorf("mosaic has no renderable area")
	}
	m.Paint(surface)

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// FileExtension returns the recommended file extension.
func (e *PNGExporter) FileExtension() string {
	return ".png"
}

// FormatName returns the format name.
func (e *PNGExporter) FormatName() string {
	return "PNG image"
}
