package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"mosaic/core"
	"mosaic/grid"
)

// newUniformMosaic builds a mosaic with every cell set to the same color and
// the pixel-level decorations disabled, so exported output has predictable
// uniform pixels.
func newUniformMosaic(t *testing.T, rows, cols int, c core.Color) *grid.Mosaic {
	t.Helper()
	m, err := grid.NewWithBlockSize(rows, cols, grid.MinBlockSize, grid.MinBlockSize)
	if err != nil {
		t.Fatalf("NewWithBlockSize() error = %v", err)
	}
	m.SetUse3D(false)
	m.ClearGroutingColor()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m.SetColor(row, col, c)
		}
	}
	return m
}

// TestParseFormat tests format string parsing.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"svg", FormatSVG, false},
		{"ansi", FormatANSI, false},
		{"term", FormatANSI, false},
		{"txt", FormatANSI, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNew tests the exporter factory.
func TestNew(t *testing.T) {
	for _, format := range Formats() {
		exporter, err := New(format)
		if err != nil {
			t.Errorf("New(%q) error = %v", format, err)
			continue
		}
		if exporter.FileExtension() == "" || exporter.FormatName() == "" {
			t.Errorf("New(%q) exporter missing extension or name", format)
		}
	}

	if _, err := New(Format("bmp")); err == nil {
		t.Error("New(bmp) error = nil, want error")
	}
}

// TestExporters_NilMosaic verifies every exporter rejects a nil mosaic.
func TestExporters_NilMosaic(t *testing.T) {
	for _, format := range Formats() {
		exporter, err := New(format)
		if err != nil {
			t.Fatalf("New(%q) error = %v", format, err)
		}
		if _, err := exporter.Export(nil); err == nil {
			t.Errorf("%s Export(nil) error = nil, want error", exporter.FormatName())
		}
	}
}

// TestPNGExporter verifies size, scale and pixel content of PNG output.
func TestPNGExporter(t *testing.T) {
	m := newUniformMosaic(t, 2, 2, core.Red)

	e := NewPNGExporter()
	data, err := e.Export(m)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	wantW, wantH := m.PreferredSize()
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("image size = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}

	r, g, b, _ := img.At(wantW/2, wantH/2).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 {
		t.Errorf("center pixel = (%d, %d, %d), want red", r>>8, g>>8, b>>8)
	}

	e.Scale = 3
	data, err = e.Export(m)
	if err != nil {
		t.Fatalf("Export() at scale 3 error = %v", err)
	}
	img, err = png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() at scale 3 error = %v", err)
	}
	if img.Bounds().Dx() != wantW*3 || img.Bounds().Dy() != wantH*3 {
		t.Errorf("scaled size = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW*3, wantH*3)
	}
}

// TestSVGExporter verifies structure and colors of SVG output.
func TestSVGExporter(t *testing.T) {
	m := newUniformMosaic(t, 2, 3, core.Red)

	data, err := NewSVGExporter().Export(m)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("output is not an SVG document")
	}
	if got := strings.Count(out, "<rect"); got != 2*3 {
		t.Errorf("output has %d rects, want %d", got, 2*3)
	}
	if !strings.Contains(out, "fill:#ff0000") {
		t.Error("output missing the red fill style")
	}
}

// TestANSIExporter verifies the block art line structure and colors.
func TestANSIExporter(t *testing.T) {
	m, err := grid.New(2, 3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.SetColor(0, 1, core.Red)

	data, err := NewANSIExporter().Export(m)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := string(data)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want 2", len(lines))
	}
	if !strings.Contains(out, "\x1b[48;2;255;0;0m") {
		t.Error("output missing the red cell escape")
	}
	// Unset cells show the effective (default black) color.
	if !strings.Contains(out, "\x1b[48;2;0;0;0m") {
		t.Error("output missing the default color escape")
	}
	if got := strings.Count(out, "\x1b[0m"); got != 2 {
		t.Errorf("output has %d resets, want one per row (2)", got)
	}
}
