// Package theme defines the theme object carried explicitly through styling
// and layout code: a color scheme, a type scale, and spacing/radius token
// tables. Themes are plain values passed as parameters; there is no ambient
// global to mutate.
package theme

// Theme bundles all visual configuration for a tree of containers.
type Theme struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// DefaultFontFamily overrides the font registry's default family when
	// set.
	DefaultFontFamily string

	// Optional parts - derived from ColorScheme or defaults if nil.
	TextTheme *TextTheme
	Spacing   *SpacingScale
	Radii     *RadiusScale
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *Theme {
	return &Theme{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *Theme {
	return &Theme{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// Default returns the default theme for the given brightness.
func Default(b Brightness) *Theme {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CopyWith returns a new Theme with the specified fields overridden.
func (t *Theme) CopyWith(colorScheme *ColorScheme, textTheme *TextTheme, brightness *Brightness) *Theme {
	result := &Theme{
		ColorScheme:       t.ColorScheme,
		Brightness:        t.Brightness,
		DefaultFontFamily: t.DefaultFontFamily,
		TextTheme:         t.TextTheme,
		Spacing:           t.Spacing,
		Radii:             t.Radii,
	}
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if textTheme != nil {
		result.TextTheme = textTheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return result
}

// ForBrightness returns the theme matching the given brightness. If the
// receiver already matches it is returned unchanged. Otherwise the color
// scheme is swapped for the default scheme of the requested brightness while
// token tables, typography overrides, and the font family carry over.
func (t *Theme) ForBrightness(b Brightness) *Theme {
	if t.Brightness == b {
		return t
	}
	scheme := LightColorScheme()
	if b == BrightnessDark {
		scheme = DarkColorScheme()
	}
	return t.CopyWith(&scheme, nil, &b)
}

// TextThemeOf returns the text theme, deriving from ColorScheme if not set.
func (t *Theme) TextThemeOf() TextTheme {
	if t.TextTheme != nil {
		return *t.TextTheme
	}
	return DefaultTextTheme(t.ColorScheme.OnBackground)
}

// SpacingOf returns the spacing scale, falling back to [DefaultSpacing] if
// not set.
func (t *Theme) SpacingOf() SpacingScale {
	if t.Spacing != nil {
		return *t.Spacing
	}
	return DefaultSpacing()
}

// RadiiOf returns the radius scale, falling back to [DefaultRadii] if not
// set.
func (t *Theme) RadiiOf() RadiusScale {
	if t.Radii != nil {
		return *t.Radii
	}
	return DefaultRadii()
}
