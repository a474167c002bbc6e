// Package export renders mosaics to portable output formats.
package export

import (
	"fmt"

	"mosaic/grid"
)

// Format represents an export format.
type Format string

const (
	// FormatPNG exports a rasterized PNG image.
	FormatPNG Format = "png"
	// FormatSVG exports an SVG document of filled rectangles.
	FormatSVG Format = "svg"
	// FormatANSI exports 24-bit ANSI block art for terminals.
	FormatANSI Format = "ansi"
)

// Exporter interface for different export formats.
type Exporter interface {
	// Export renders the mosaic's current state to the target format.
	Export(m *grid.Mosaic) ([]byte, error)
	// FileExtension returns the recommended file extension for this format.
	FileExtension() string
	// FormatName returns a human-readable name for this format.
	FormatName() string
}

// New creates an exporter for the specified format.
func New(format Format) (Exporter, error) {
	switch format {
	case FormatPNG:
		return NewPNGExporter(), nil
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatANSI:
		return NewANSIExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	case "ansi", "term", "txt":
		return FormatANSI, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// Formats returns a list of all available export formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatSVG, FormatANSI}
}
