package style

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/paint"
)

// tomlPreset is the TOML-friendly representation used for serialization.
type tomlPreset struct {
	Name        string    `toml:"name"`
	Description string    `toml:"description,omitempty"`
	Style       tomlStyle `toml:"style,omitempty"`
}

type tomlStyle struct {
	Background  string      `toml:"background,omitempty"`
	Foreground  string      `toml:"foreground,omitempty"`
	Border      string      `toml:"border,omitempty"`
	BorderWidth float64     `toml:"border_width,omitempty"`
	Radius      float64     `toml:"radius,omitempty"`
	Opacity     float64     `toml:"opacity,omitempty"`
	Padding     *tomlInsets `toml:"padding,omitempty"`
	Text        *tomlText   `toml:"text,omitempty"`
}

type tomlInsets struct {
	Left   float64 `toml:"left,omitempty"`
	Top    float64 `toml:"top,omitempty"`
	Right  float64 `toml:"right,omitempty"`
	Bottom float64 `toml:"bottom,omitempty"`
}

type tomlText struct {
	Size   float64 `toml:"size,omitempty"`
	Weight string  `toml:"weight,omitempty"`
	Family string  `toml:"family,omitempty"`
	Color  string  `toml:"color,omitempty"`
	Italic bool    `toml:"italic,omitempty"`
}

// LoadTOML parses a preset definition from TOML data.
func LoadTOML(data []byte) (Preset, error) {
	var raw tomlPreset
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Preset{}, fmt.Errorf("failed to parse preset: %w", err)
	}
	if raw.Name == "" {
		return Preset{}, &errors.ValidationError{Field: "name", Reason: "preset name is required"}
	}

	s, err := raw.Style.toStyle()
	if err != nil {
		return Preset{}, err
	}
	return Preset{
		Name:        raw.Name,
		Description: raw.Description,
		Style:       s,
	}, nil
}

// LoadTOMLFile reads a preset definition from a file.
func LoadTOMLFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, &errors.LoomError{Op: "style.LoadTOMLFile", Kind: errors.KindConfig, Path: path, Err: err}
	}
	p, err := LoadTOML(data)
	if err != nil {
		return Preset{}, &errors.LoomError{Op: "style.LoadTOMLFile", Kind: errors.KindConfig, Path: path, Err: err}
	}
	return p, nil
}

// SaveTOML serializes a preset to TOML.
func SaveTOML(p Preset) ([]byte, error) {
	raw := tomlPreset{
		Name:        p.Name,
		Description: p.Description,
		Style:       fromStyle(p.Style),
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode preset: %w", err)
	}
	return buf.Bytes(), nil
}

func (t tomlStyle) toStyle() (Style, error) {
	var s Style

	colors := []struct {
		name string
		src  string
		dst  *paint.Color
	}{
		{"style.background", t.Background, &s.Background},
		{"style.foreground", t.Foreground, &s.Foreground},
		{"style.border", t.Border, &s.Border},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		parsed, err := paint.ParseHex(c.src)
		if err != nil {
			return Style{}, &errors.ValidationError{Field: c.name, Value: c.src, Reason: "not a valid hex color"}
		}
		*c.dst = parsed
	}

	values := []struct {
		name string
		v    float64
	}{
		{"style.border_width", t.BorderWidth},
		{"style.radius", t.Radius},
		{"style.opacity", t.Opacity},
	}
	for _, e := range values {
		if e.v < 0 {
			return Style{}, &errors.ValidationError{Field: e.name, Value: e.v, Reason: "must be non-negative"}
		}
	}
	s.BorderWidth = t.BorderWidth
	s.Radius = t.Radius
	s.Opacity = t.Opacity

	if t.Padding != nil {
		p := *t.Padding
		if p.Left < 0 || p.Top < 0 || p.Right < 0 || p.Bottom < 0 {
			return Style{}, &errors.ValidationError{Field: "style.padding", Value: p, Reason: "sides must be non-negative"}
		}
		s.Padding = geometry.EdgeInsetsOnly(p.Left, p.Top, p.Right, p.Bottom)
	}

	if t.Text != nil {
		text, err := t.Text.toTextStyle()
		if err != nil {
			return Style{}, err
		}
		s.Text = &text
	}

	return s, nil
}

func (t *tomlText) toTextStyle() (paint.TextStyle, error) {
	var ts paint.TextStyle
	if t.Size < 0 {
		return ts, &errors.ValidationError{Field: "style.text.size", Value: t.Size, Reason: "must be non-negative"}
	}
	ts.FontSize = t.Size
	if t.Weight != "" {
		w, err := paint.ParseFontWeight(t.Weight)
		if err != nil {
			return ts, &errors.ValidationError{Field: "style.text.weight", Value: t.Weight, Reason: err.Error()}
		}
		ts.FontWeight = w
	}
	ts.FontFamily = t.Family
	if t.Color != "" {
		c, err := paint.ParseHex(t.Color)
		if err != nil {
			return ts, &errors.ValidationError{Field: "style.text.color", Value: t.Color, Reason: "not a valid hex color"}
		}
		ts.Color = c
	}
	if t.Italic {
		ts.FontStyle = paint.FontStyleItalic
	}
	return ts, nil
}

func fromStyle(s Style) tomlStyle {
	t := tomlStyle{
		BorderWidth: s.BorderWidth,
		Radius:      s.Radius,
		Opacity:     s.Opacity,
	}
	if s.Background != 0 {
		t.Background = s.Background.Hex()
	}
	if s.Foreground != 0 {
		t.Foreground = s.Foreground.Hex()
	}
	if s.Border != 0 {
		t.Border = s.Border.Hex()
	}
	if !s.Padding.IsZero() {
		t.Padding = &tomlInsets{
			Left:   s.Padding.Left,
			Top:    s.Padding.Top,
			Right:  s.Padding.Right,
			Bottom: s.Padding.Bottom,
		}
	}
	if s.Text != nil {
		text := &tomlText{
			Size:   s.Text.FontSize,
			Family: s.Text.FontFamily,
			Italic: s.Text.FontStyle == paint.FontStyleItalic,
		}
		if s.Text.FontWeight != 0 {
			text.Weight = s.Text.FontWeight.String()
		}
		if s.Text.Color != 0 {
			text.Color = s.Text.Color.Hex()
		}
		t.Text = text
	}
	return t
}
