package export

import (
	"fmt"
	"strings"

	"mosaic/grid"
)

const ansiReset = "\x1b[0m"

// ANSIExporter renders a mosaic as 24-bit ANSI block art: one two-character
// block per cell, colored with a truecolor background escape. Output is
// cell-level rather than pixel-level, so grouting and the 3D bevel are not
// reproduced; every cell shows its effective color.
type ANSIExporter struct{}

// NewANSIExporter creates a new ANSI exporter.
func NewANSIExporter() *ANSIExporter {
	return &ANSIExporter{}
}

// Export converts the mosaic to ANSI block art, one line per row.
func (e *ANSIExporter) Export(m *grid.Mosaic) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("mosaic is nil")
	}

	var sb strings.Builder
	sb.Grow(m.Rows() * (m.Columns()*22 + len(ansiReset) + 1))
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Columns(); col++ {
			fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm  ",
				channelByte(m.Red(row, col)),
				channelByte(m.Green(row, col)),
				channelByte(m.Blue(row, col)))
		}
		sb.WriteString(ansiReset)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// FileExtension returns the recommended file extension.
func (e *ANSIExporter) FileExtension() string {
	return ".ans"
}

// FormatName returns the format name.
func (e *ANSIExporter) FormatName() string {
	return "ANSI block art"
}

func channelByte(v float64) int {
	return int(v*255 + 0.5)
}
