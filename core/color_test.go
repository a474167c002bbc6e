package core

import "testing"

// TestColor_Clamped tests channel clamping on assignment paths.
func TestColor_Clamped(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want Color
	}{
		{"In range", Color{0.2, 0.5, 0.9}, Color{0.2, 0.5, 0.9}},
		{"Below zero", Color{-0.5, -1, 0.5}, Color{0, 0, 0.5}},
		{"Above one", Color{1.5, 2, 0.5}, Color{1, 1, 0.5}},
		{"Mixed", Color{-0.5, 1.5, 0.5}, Color{0, 1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamped(); got != tt.want {
				t.Errorf("Clamped() = %v, want %v", got, tt.want)
			}
			if got := NewColor(tt.in.R, tt.in.G, tt.in.B); got != tt.want {
				t.Errorf("NewColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestColor_Channel tests per-channel access.
func TestColor_Channel(t *testing.T) {
	c := Color{0.1, 0.2, 0.3}

	tests := []struct {
		channel Channel
		want    float64
		name    string
	}{
		{ChannelRed, 0.1, "red"},
		{ChannelGreen, 0.2, "green"},
		{ChannelBlue, 0.3, "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Channel(tt.channel); got != tt.want {
				t.Errorf("Channel(%v) = %v, want %v", tt.channel, got, tt.want)
			}
			if tt.channel.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.channel.String(), tt.name)
			}
		})
	}
}

// TestColor_LighterDarker tests the bevel shading offsets.
func TestColor_LighterDarker(t *testing.T) {
	base := Color{0.5, 0.5, 0.5}

	if got, want := base.Lighter(0.25), (Color{0.75, 0.75, 0.75}); got != want {
		t.Errorf("Lighter(0.25) = %v, want %v", got, want)
	}
	if got, want := base.Darker(0.25), (Color{0.25, 0.25, 0.25}); got != want {
		t.Errorf("Darker(0.25) = %v, want %v", got, want)
	}

	// Shading must clamp at the channel bounds.
	if got := White.Lighter(0.25); got != White {
		t.Errorf("White.Lighter(0.25) = %v, want %v", got, White)
	}
	if got := Black.Darker(0.25); got != Black {
		t.Errorf("Black.Darker(0.25) = %v, want %v", got, Black)
	}
	if got, want := (Color{0.875, 0.125, 0.5}).Lighter(0.25), (Color{1, 0.375, 0.75}); got != want {
		t.Errorf("Lighter(0.25) = %v, want %v", got, want)
	}
}

// TestColor_RGBA tests the image/color.Color implementation.
func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		r, g, b uint32
	}{
		{"Black", Black, 0, 0, 0},
		{"White", White, 0xffff, 0xffff, 0xffff},
		{"Red", Red, 0xffff, 0, 0},
		{"Out of range", Color{2, -1, 1}, 0xffff, 0, 0xffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.color.RGBA()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGBA() = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
			if a != 0xffff {
				t.Errorf("RGBA() alpha = %d, want opaque", a)
			}
		})
	}
}

// TestColor_Hex tests hex formatting and parsing.
func TestColor_Hex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		hex   string
	}{
		{"Black", Black, "#000000"},
		{"White", White, "#ffffff"},
		{"Red", Red, "#ff0000"},
		{"Gray", Color{0.5, 0.5, 0.5}, "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.hex {
				t.Errorf("Hex() = %q, want %q", got, tt.hex)
			}
			parsed, err := ParseHex(tt.hex)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.hex, err)
			}
			if parsed.Hex() != tt.hex {
				t.Errorf("round trip = %q, want %q", parsed.Hex(), tt.hex)
			}
		})
	}

	if _, err := ParseHex("not-a-color"); err == nil {
		t.Error("ParseHex() error = nil, want error")
	}
}

// TestRect tests the rectangle helpers used by the painter.
func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	if r.Empty() {
		t.Error("Empty() = true for a non-empty rect")
	}
	if !(Rect{W: 0, H: 5}).Empty() {
		t.Error("Empty() = false for a zero-width rect")
	}

	if !r.Contains(10, 20) || !r.Contains(39, 59) {
		t.Error("Contains() = false for interior points")
	}
	if r.Contains(40, 20) || r.Contains(10, 60) || r.Contains(9, 20) {
		t.Error("Contains() = true for exterior points")
	}

	if got, want := r.Inset(1), (Rect{X: 11, Y: 21, W: 28, H: 38}); got != want {
		t.Errorf("Inset(1) = %v, want %v", got, want)
	}

	if !r.ContainsRect(Rect{X: 10, Y: 20, W: 30, H: 40}) {
		t.Error("ContainsRect() = false for itself")
	}
	if !r.ContainsRect(r.Inset(5)) {
		t.Error("ContainsRect() = false for an inset rect")
	}
	if r.ContainsRect(Rect{X: 5, Y: 20, W: 30, H: 40}) {
		t.Error("ContainsRect() = true for an overlapping rect")
	}
	if !r.ContainsRect(Rect{X: 100, Y: 100, W: 0, H: 0}) {
		t.Error("ContainsRect() = false for an empty rect")
	}
}
