package theme

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/paint"
)

// fileTheme mirrors the YAML theme document. Every section is optional;
// absent values keep the defaults for the declared brightness.
type fileTheme struct {
	Brightness string       `yaml:"brightness,omitempty"`
	FontFamily string       `yaml:"fontFamily,omitempty"`
	Colors     fileColors   `yaml:"colors,omitempty"`
	Text       fileText     `yaml:"text,omitempty"`
	Spacing    *fileSpacing `yaml:"spacing,omitempty"`
	Radii      *fileRadii   `yaml:"radii,omitempty"`
}

type fileColors struct {
	Primary          string `yaml:"primary,omitempty"`
	OnPrimary        string `yaml:"onPrimary,omitempty"`
	Secondary        string `yaml:"secondary,omitempty"`
	OnSecondary      string `yaml:"onSecondary,omitempty"`
	Background       string `yaml:"background,omitempty"`
	OnBackground     string `yaml:"onBackground,omitempty"`
	Surface          string `yaml:"surface,omitempty"`
	OnSurface        string `yaml:"onSurface,omitempty"`
	SurfaceVariant   string `yaml:"surfaceVariant,omitempty"`
	OnSurfaceVariant string `yaml:"onSurfaceVariant,omitempty"`
	Error            string `yaml:"error,omitempty"`
	OnError          string `yaml:"onError,omitempty"`
	Outline          string `yaml:"outline,omitempty"`
}

type fileText struct {
	DisplayLarge   *fileTextStyle `yaml:"displayLarge,omitempty"`
	HeadlineLarge  *fileTextStyle `yaml:"headlineLarge,omitempty"`
	HeadlineMedium *fileTextStyle `yaml:"headlineMedium,omitempty"`
	HeadlineSmall  *fileTextStyle `yaml:"headlineSmall,omitempty"`
	TitleMedium    *fileTextStyle `yaml:"titleMedium,omitempty"`
	BodyLarge      *fileTextStyle `yaml:"bodyLarge,omitempty"`
	BodyMedium     *fileTextStyle `yaml:"bodyMedium,omitempty"`
	BodySmall      *fileTextStyle `yaml:"bodySmall,omitempty"`
	LabelLarge     *fileTextStyle `yaml:"labelLarge,omitempty"`
	LabelMedium    *fileTextStyle `yaml:"labelMedium,omitempty"`
	LabelSmall     *fileTextStyle `yaml:"labelSmall,omitempty"`
}

type fileTextStyle struct {
	Size   float64 `yaml:"size,omitempty"`
	Weight string  `yaml:"weight,omitempty"`
	Family string  `yaml:"family,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

type fileSpacing struct {
	XS  *float64 `yaml:"xs,omitempty"`
	SM  *float64 `yaml:"sm,omitempty"`
	MD  *float64 `yaml:"md,omitempty"`
	LG  *float64 `yaml:"lg,omitempty"`
	XL  *float64 `yaml:"xl,omitempty"`
	XXL *float64 `yaml:"xxl,omitempty"`
}

type fileRadii struct {
	Small  *float64 `yaml:"small,omitempty"`
	Medium *float64 `yaml:"medium,omitempty"`
	Large  *float64 `yaml:"large,omitempty"`
	Full   *float64 `yaml:"full,omitempty"`
}

// Load reads a YAML theme file. See [Parse] for the accepted document
// format.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.LoomError{Op: "theme.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	t, err := Parse(data)
	if err != nil {
		return nil, &errors.LoomError{Op: "theme.Load", Kind: errors.KindConfig, Path: path, Err: err}
	}
	return t, nil
}

// Parse decodes a YAML theme document. The document starts from the default
// theme for its declared brightness ("light" when omitted) and overrides
// individual values:
//
//	brightness: dark
//	fontFamily: Go
//	colors:
//	  primary: "#D0BCFF"
//	  onPrimary: "#381E72"
//	text:
//	  bodyMedium: {size: 15, weight: medium}
//	spacing:
//	  md: 20
//	radii:
//	  medium: 6
//
// Colors are CSS hex strings (#RGB, #RRGGBB, or #AARRGGBB). Invalid values
// are rejected with a [errors.ValidationError] naming the offending field.
func Parse(data []byte) (*Theme, error) {
	var f fileTheme
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	brightness := BrightnessLight
	if f.Brightness != "" {
		b, err := ParseBrightness(f.Brightness)
		if err != nil {
			return nil, err
		}
		brightness = b
	}

	t := Default(brightness)
	t.DefaultFontFamily = strings.TrimSpace(f.FontFamily)

	scheme := t.ColorScheme
	if err := f.Colors.apply(&scheme); err != nil {
		return nil, err
	}
	t.ColorScheme = scheme

	// Text overrides layer on top of the scheme-derived scale, so colors
	// must be applied first.
	if f.Text != (fileText{}) {
		tt := t.TextThemeOf()
		if err := f.Text.apply(&tt); err != nil {
			return nil, err
		}
		t.TextTheme = &tt
	}

	if f.Spacing != nil {
		spacing := t.SpacingOf()
		if err := f.Spacing.apply(&spacing); err != nil {
			return nil, err
		}
		t.Spacing = &spacing
	}

	if f.Radii != nil {
		radii := t.RadiiOf()
		if err := f.Radii.apply(&radii); err != nil {
			return nil, err
		}
		t.Radii = &radii
	}

	return t, nil
}

func (f fileColors) apply(scheme *ColorScheme) error {
	entries := []struct {
		name string
		src  string
		dst  *paint.Color
	}{
		{"colors.primary", f.Primary, &scheme.Primary},
		{"colors.onPrimary", f.OnPrimary, &scheme.OnPrimary},
		{"colors.secondary", f.Secondary, &scheme.Secondary},
		{"colors.onSecondary", f.OnSecondary, &scheme.OnSecondary},
		{"colors.background", f.Background, &scheme.Background},
		{"colors.onBackground", f.OnBackground, &scheme.OnBackground},
		{"colors.surface", f.Surface, &scheme.Surface},
		{"colors.onSurface", f.OnSurface, &scheme.OnSurface},
		{"colors.surfaceVariant", f.SurfaceVariant, &scheme.SurfaceVariant},
		{"colors.onSurfaceVariant", f.OnSurfaceVariant, &scheme.OnSurfaceVariant},
		{"colors.error", f.Error, &scheme.Error},
		{"colors.onError", f.OnError, &scheme.OnError},
		{"colors.outline", f.Outline, &scheme.Outline},
	}
	for _, e := range entries {
		if e.src == "" {
			continue
		}
		c, err := paint.ParseHex(e.src)
		if err != nil {
			return &errors.ValidationError{Field: e.name, Value: e.src, Reason: "not a valid hex color"}
		}
		*e.dst = c
	}
	return nil
}

func (f fileText) apply(tt *TextTheme) error {
	entries := []struct {
		name string
		src  *fileTextStyle
		dst  *paint.TextStyle
	}{
		{"text.displayLarge", f.DisplayLarge, &tt.DisplayLarge},
		{"text.headlineLarge", f.HeadlineLarge, &tt.HeadlineLarge},
		{"text.headlineMedium", f.HeadlineMedium, &tt.HeadlineMedium},
		{"text.headlineSmall", f.HeadlineSmall, &tt.HeadlineSmall},
		{"text.titleMedium", f.TitleMedium, &tt.TitleMedium},
		{"text.bodyLarge", f.BodyLarge, &tt.BodyLarge},
		{"text.bodyMedium", f.BodyMedium, &tt.BodyMedium},
		{"text.bodySmall", f.BodySmall, &tt.BodySmall},
		{"text.labelLarge", f.LabelLarge, &tt.LabelLarge},
		{"text.labelMedium", f.LabelMedium, &tt.LabelMedium},
		{"text.labelSmall", f.LabelSmall, &tt.LabelSmall},
	}
	for _, e := range entries {
		if e.src == nil {
			continue
		}
		if err := e.src.apply(e.name, e.dst); err != nil {
			return err
		}
	}
	return nil
}

func (f *fileTextStyle) apply(name string, style *paint.TextStyle) error {
	if f.Size != 0 {
		if f.Size < 0 || math.IsNaN(f.Size) || math.IsInf(f.Size, 0) {
			return &errors.ValidationError{Field: name + ".size", Value: f.Size, Reason: "font size must be a positive number"}
		}
		style.FontSize = f.Size
	}
	if f.Weight != "" {
		w, err := paint.ParseFontWeight(f.Weight)
		if err != nil {
			return &errors.ValidationError{Field: name + ".weight", Value: f.Weight, Reason: err.Error()}
		}
		style.FontWeight = w
	}
	if f.Family != "" {
		style.FontFamily = f.Family
	}
	if f.Color != "" {
		c, err := paint.ParseHex(f.Color)
		if err != nil {
			return &errors.ValidationError{Field: name + ".color", Value: f.Color, Reason: "not a valid hex color"}
		}
		style.Color = c
	}
	return nil
}

func (f *fileSpacing) apply(spacing *SpacingScale) error {
	entries := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"spacing.xs", f.XS, &spacing.XS},
		{"spacing.sm", f.SM, &spacing.SM},
		{"spacing.md", f.MD, &spacing.MD},
		{"spacing.lg", f.LG, &spacing.LG},
		{"spacing.xl", f.XL, &spacing.XL},
		{"spacing.xxl", f.XXL, &spacing.XXL},
	}
	for _, e := range entries {
		if e.src == nil {
			continue
		}
		if err := applyToken(e.name, *e.src, e.dst); err != nil {
			return err
		}
	}
	return nil
}

func (f *fileRadii) apply(radii *RadiusScale) error {
	entries := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"radii.small", f.Small, &radii.Small},
		{"radii.medium", f.Medium, &radii.Medium},
		{"radii.large", f.Large, &radii.Large},
		{"radii.full", f.Full, &radii.Full},
	}
	for _, e := range entries {
		if e.src == nil {
			continue
		}
		if err := applyToken(e.name, *e.src, e.dst); err != nil {
			return err
		}
	}
	return nil
}

func applyToken(name string, v float64, dst *float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return &errors.ValidationError{Field: name, Value: v, Reason: "must be a non-negative number"}
	}
	*dst = v
	return nil
}
