// Package style describes the visual treatment of a container: colors,
// border, corner radius, padding, opacity, and text. Styles are plain
// values; modifiers return copies, and unset fields resolve against a theme
// at use time.
package style

import (
	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/theme"
)

// Style describes the visual treatment of a container. The zero value
// leaves everything unset; [Style.Resolve] fills unset fields from a theme.
// A zero color means "use the theme slot"; a deliberately transparent
// field can use any non-zero color with zero alpha, such as 0x00FFFFFF.
type Style struct {
	// Background fills the container behind its content.
	Background paint.Color
	// Foreground is the default content color.
	Foreground paint.Color
	// Border is the border color. The border is only drawn when
	// BorderWidth is positive.
	Border paint.Color
	// BorderWidth is the border stroke width.
	BorderWidth float64
	// Radius is the corner radius.
	Radius float64
	// Padding is the space between the border and the content.
	Padding geometry.EdgeInsets
	// Opacity multiplies the container's overall alpha. Zero means unset
	// and resolves to fully opaque.
	Opacity float64
	// Text styles text inside the container. Nil inherits the theme's
	// body style colored with Foreground.
	Text *paint.TextStyle
}

// WithBackground returns a copy of the style with the given background.
func (s Style) WithBackground(c paint.Color) Style {
	s.Background = c
	return s
}

// WithForeground returns a copy of the style with the given foreground.
func (s Style) WithForeground(c paint.Color) Style {
	s.Foreground = c
	return s
}

// WithBorder returns a copy of the style with the given border color and
// stroke width.
func (s Style) WithBorder(c paint.Color, width float64) Style {
	s.Border = c
	s.BorderWidth = width
	return s
}

// WithRadius returns a copy of the style with the given corner radius.
func (s Style) WithRadius(r float64) Style {
	s.Radius = r
	return s
}

// WithPadding returns a copy of the style with the given padding.
func (s Style) WithPadding(p geometry.EdgeInsets) Style {
	s.Padding = p
	return s
}

// WithOpacity returns a copy of the style with the given opacity (0-1).
func (s Style) WithOpacity(o float64) Style {
	s.Opacity = o
	return s
}

// WithText returns a copy of the style with the given text style.
func (s Style) WithText(t paint.TextStyle) Style {
	s.Text = &t
	return s
}

// Merge fills the unset fields of s from other and returns the result. Set
// fields of s win. Text styles merge field by field.
func (s Style) Merge(other Style) Style {
	if s.Background == 0 {
		s.Background = other.Background
	}
	if s.Foreground == 0 {
		s.Foreground = other.Foreground
	}
	if s.Border == 0 {
		s.Border = other.Border
	}
	if s.BorderWidth == 0 {
		s.BorderWidth = other.BorderWidth
	}
	if s.Radius == 0 {
		s.Radius = other.Radius
	}
	if s.Padding.IsZero() {
		s.Padding = other.Padding
	}
	if s.Opacity == 0 {
		s.Opacity = other.Opacity
	}
	switch {
	case s.Text == nil && other.Text != nil:
		t := *other.Text
		s.Text = &t
	case s.Text != nil && other.Text != nil:
		t := s.Text.Merge(*other.Text)
		s.Text = &t
	}
	return s
}

// Resolve returns a copy of the style with unset fields filled from the
// theme: Background from Surface, Foreground from OnSurface, Border from
// Outline, zero Opacity raised to 1, and Text completed from the theme's
// body style. Geometry fields (BorderWidth, Radius, Padding) are left
// alone; zero is meaningful there.
func (s Style) Resolve(th *theme.Theme) Style {
	scheme := th.ColorScheme
	if s.Background == 0 {
		s.Background = scheme.Surface
	}
	if s.Foreground == 0 {
		s.Foreground = scheme.OnSurface
	}
	if s.Border == 0 {
		s.Border = scheme.Outline
	}
	if s.Opacity == 0 {
		s.Opacity = 1
	}

	var text paint.TextStyle
	if s.Text != nil {
		text = *s.Text
	}
	if text.Color == 0 {
		text.Color = s.Foreground
	}
	text = text.Merge(th.TextThemeOf().BodyMedium)
	if text.FontFamily == "" {
		text.FontFamily = th.DefaultFontFamily
	}
	s.Text = &text

	return s
}
