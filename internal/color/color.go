// Package color provides the RGB value type used across the tool, hex
// parsing, terminal escape encoding under a selectable color mode, and
// the linear-space blending the animation relies on.
package color

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	// ErrInvalidHex indicates a malformed hex color string.
	ErrInvalidHex = errors.New("color: invalid hex color")

	// ErrUnknownMode indicates an unrecognized color mode name.
	ErrUnknownMode = errors.New("color: unknown color mode")
)

// ResetSequence clears all active terminal styling.
const ResetSequence = termenv.CSI + termenv.ResetSeq + "m"

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// FromHex parses "#RRGGBB" or "#RGB" (case-insensitive, leading #
// required).
func FromHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustHex is like [FromHex] but panics on a malformed string. Use for
// static color tables only.
func MustHex(s string) RGB {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Sequence returns the complete SGR escape selecting this color as the
// foreground or background under the given mode. Colors are quantized
// through the mode's terminal profile for the ansi and 8bit modes.
func (c RGB) Sequence(mode Mode, background bool) string {
	col := mode.Profile().Convert(termenv.RGBColor(c.Hex()))
	if col == nil {
		return ""
	}
	return termenv.CSI + col.Sequence(background) + "m"
}

// Overlay alpha-blends layer over c in linear RGB space and converts the
// result back to 8-bit sRGB. alpha 0 returns c, alpha 1 returns layer;
// values outside [0,1] are clamped.
func (c RGB) Overlay(layer RGB, alpha float64) RGB {
	a := clamp01(alpha)
	br, bg, bb := c.colorful().LinearRgb()
	lr, lg, lb := layer.colorful().LinearRgb()
	blended := colorful.LinearRgb(
		br*(1-a)+lr*a,
		bg*(1-a)+lg*a,
		bb*(1-a)+lb*a,
	)
	return fromColorful(blended)
}

// WithLightness returns the color with its HSL lightness channel replaced
// by l, clamped to [0,1]. Hue and saturation are preserved.
func (c RGB) WithLightness(l float64) RGB {
	h, s, _ := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l)))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
