package paint

import (
	"fmt"
	"strings"
)

// DefaultFontSize is used when a text style does not specify a size.
const DefaultFontSize = 16

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightThin:
		return "thin"
	case FontWeightExtraLight:
		return "extra_light"
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemibold:
		return "semibold"
	case FontWeightBold:
		return "bold"
	case FontWeightExtraBold:
		return "extra_bold"
	case FontWeightBlack:
		return "black"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// IsBold reports whether the weight renders with a bold face (600 and up).
func (w FontWeight) IsBold() bool {
	return w >= FontWeightSemibold
}

// ParseFontWeight parses a weight name as used in theme and preset files.
// Names match [FontWeight.String], case-insensitive, with "regular" accepted
// for "normal" and underscores optional.
func ParseFontWeight(s string) (FontWeight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin":
		return FontWeightThin, nil
	case "extra_light", "extralight":
		return FontWeightExtraLight, nil
	case "light":
		return FontWeightLight, nil
	case "normal", "regular":
		return FontWeightNormal, nil
	case "medium":
		return FontWeightMedium, nil
	case "semibold":
		return FontWeightSemibold, nil
	case "bold":
		return FontWeightBold, nil
	case "extra_bold", "extrabold":
		return FontWeightExtraBold, nil
	case "black":
		return FontWeightBlack, nil
	}
	return 0, fmt.Errorf("unknown font weight %q", s)
}

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// String returns a human-readable representation of the font style.
func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// TextAlign controls paragraph-level horizontal alignment for wrapped text.
//
// Alignment only has a visible effect when text is laid out against a
// constrained width; without wrapping there is no paragraph width to align
// within.
type TextAlign int

const (
	// TextAlignLeft aligns lines to the left edge of the paragraph.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns lines to the right edge of the paragraph.
	TextAlignRight
	// TextAlignCenter centers each line horizontally within the paragraph.
	TextAlignCenter
)

// String returns a human-readable representation of the text alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	case TextAlignCenter:
		return "center"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextStyle describes how text should be rendered. The zero value inherits
// everything: measurement and themes substitute [DefaultFontSize], the
// registered default family, and [FontWeightNormal] for unset fields.
type TextStyle struct {
	Color         Color
	FontFamily    string
	FontSize      float64
	FontWeight    FontWeight
	FontStyle     FontStyle
	LetterSpacing float64
	// Height is a line-height multiplier applied to the font's natural
	// line height. Zero means the font metrics decide.
	Height float64
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// WithSize returns a copy of the TextStyle with the specified font size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.FontSize = size
	return s
}

// WithWeight returns a copy of the TextStyle with the specified font weight.
func (s TextStyle) WithWeight(w FontWeight) TextStyle {
	s.FontWeight = w
	return s
}

// WithFamily returns a copy of the TextStyle with the specified font family.
func (s TextStyle) WithFamily(family string) TextStyle {
	s.FontFamily = family
	return s
}

// WithItalic returns a copy of the TextStyle set to italic.
func (s TextStyle) WithItalic() TextStyle {
	s.FontStyle = FontStyleItalic
	return s
}

// Merge fills the unset fields of s from other and returns the result.
// Set fields of s win.
func (s TextStyle) Merge(other TextStyle) TextStyle {
	if s.Color == 0 {
		s.Color = other.Color
	}
	if s.FontFamily == "" {
		s.FontFamily = other.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = other.FontSize
	}
	if s.FontWeight == 0 {
		s.FontWeight = other.FontWeight
	}
	if s.FontStyle == FontStyleNormal {
		s.FontStyle = other.FontStyle
	}
	if s.LetterSpacing == 0 {
		s.LetterSpacing = other.LetterSpacing
	}
	if s.Height == 0 {
		s.Height = other.Height
	}
	return s
}
