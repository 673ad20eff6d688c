// Package paint holds the visual primitives shared by themes, styles, and
// text measurement: ARGB colors with perceptual helpers, and typography
// descriptors.
package paint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// ParseHex parses a CSS-style hex color. Accepted forms are #RGB, #RRGGBB,
// and #AARRGGBB; the leading "#" is optional and hex digits are
// case-insensitive. Three-digit colors expand per CSS (#abc -> #aabbcc) and
// parse as opaque.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
		fallthrough
	case 6:
		hex = "FF" + hex
	case 8:
		// already AARRGGBB
	default:
		return 0, fmt.Errorf("invalid hex color %q: want #RGB, #RRGGBB, or #AARRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color(v), nil
}

// MustParseHex is like [ParseHex] but panics on malformed input. Intended
// for color literals in source.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#RRGGBB", or "#AARRGGBB" when it is not fully
// opaque. The output round-trips through [ParseHex].
func (c Color) Hex() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Lighten returns a copy of the color with its HSL lightness raised by
// amount (0-1). Alpha is preserved.
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l+amount)), uint8(c>>24))
}

// Darken returns a copy of the color with its HSL lightness lowered by
// amount (0-1). Alpha is preserved.
func (c Color) Darken(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, clamp01(l-amount)), uint8(c>>24))
}

// Mix blends the color toward other in Lab space. t is the blend position:
// 0 returns the receiver, 1 returns other. Alpha interpolates linearly.
func (c Color) Mix(other Color, t float64) Color {
	t = clamp01(t)
	blended := c.colorful().BlendLab(other.colorful(), t).Clamped()
	a := float64(uint8(c>>24))*(1-t) + float64(uint8(other>>24))*t
	return fromColorful(blended, uint8(math.Round(a)))
}

// Luminance returns the WCAG relative luminance of the color, from 0.0
// (black) to 1.0 (white). Alpha is ignored.
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from
// 1.0 (identical) to 21.0 (black on white).
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsDark reports whether white text meets WCAG contrast on this color
// better than black text does. Useful for picking foreground colors.
func (c Color) IsDark() bool {
	return ContrastRatio(c, ColorWhite) >= ContrastRatio(c, ColorBlack)
}

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

func fromColorful(col colorful.Color, alpha uint8) Color {
	r, g, b := col.RGB255()
	return RGBA8(r, g, b, alpha)
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
