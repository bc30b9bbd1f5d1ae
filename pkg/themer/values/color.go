// Package values defines the engine value types a theme can hold: colors,
// vectors, insets, background components, icons and bitmap fonts.
package values

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Color is a linear RGBA color with float channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}
)

func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HexColor converts a 0xRRGGBB value to an opaque Color.
func HexColor(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xFF) / 255,
		G: float32((hex>>8)&0xFF) / 255,
		B: float32(hex&0xFF) / 255,
		A: 1,
	}
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// SDL converts the color to the 8-bit form used by the renderer.
func (c Color) SDL() sdl.Color {
	return sdl.Color{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// Hex formats the RGB channels as #rrggbb.
func (c Color) Hex() string {
	sc := c.SDL()
	return fmt.Sprintf("#%02x%02x%02x", sc.R, sc.G, sc.B)
}

func (c Color) String() string {
	return fmt.Sprintf("Color[%g, %g, %g, %g]", c.R, c.G, c.B, c.A)
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
