package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with float64 channels in the range [0, 1].
// The zero value is black. Color implements image/color.Color, so it can be
// handed directly to raster drawing contexts.
type Color struct {
	R, G, B float64
}

// Channel identifies one of the three color channels.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

// String returns the string representation of a Channel.
func (ch Channel) String() string {
	switch ch {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// A few named colors used as grid defaults and by the CLI patterns.
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Gray    = Color{0.5, 0.5, 0.5}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Yellow  = Color{1, 1, 0}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
)

// NewColor builds a Color, clamping each channel to [0, 1].
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}.Clamped()
}

// Clamped returns a copy of the color with every channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
	}
}

// Channel returns the value of the requested channel.
func (c Color) Channel(ch Channel) float64 {
	switch ch {
	case ChannelGreen:
		return c.G
	case ChannelBlue:
		return c.B
	default:
		return c.R
	}
}

// Lighter returns the color with offset added to every channel, clamped.
// Used for the highlight edges of beveled cells.
func (c Color) Lighter(offset float64) Color {
	return Color{R: c.R + offset, G: c.G + offset, B: c.B + offset}.Clamped()
}

// Darker returns the color with offset removed from every channel, clamped.
// Used for the shadow edges of beveled cells.
func (c Color) Darker(offset float64) Color {
	return c.Lighter(-offset)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamped()
	return uint32(cc.R*0xffff + 0.5),
		uint32(cc.G*0xffff + 0.5),
		uint32(cc.B*0xffff + 0.5),
		0xffff
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	cc := c.Clamped()
	return colorful.Color{R: cc.R, G: cc.G, B: cc.B}.Hex()
}

// ParseHex parses a "#rrggbb" or "#rgb" string into a Color.
func ParseHex(s string) (Color, error) {
	parsed, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: parsed.R, G: parsed.G, B: parsed.B}, nil
}

func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
