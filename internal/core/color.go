package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an optional 24-bit terminal color.
// The zero value leaves the terminal default in place.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// NoColor is the terminal default color.
var NoColor = Color{}

// RGB returns a color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// Hex parses a color in "#rrggbb" form.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return NoColor, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustHex is like Hex but panics on malformed input.
// Intended for package-level palettes.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns "#rrggbb", or "" for the default color.
func (c Color) String() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c towards other by t in [0, 1], in Lab space.
// Blending with the default color returns the valid side unchanged.
func (c Color) Blend(other Color, t float64) Color {
	switch {
	case !c.Valid:
		return other
	case !other.Valid:
		return c
	}
	mixed := c.colorful().BlendLab(other.colorful(), ClampF(t, 0, 1)).Clamped()
	r, g, b := mixed.RGB255()
	return RGB(r, g, b)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
