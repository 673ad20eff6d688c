package style_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/style"
	"github.com/go-drift/loom/pkg/theme"
)

func TestBuiltinPresets(t *testing.T) {
	chip := style.Get("chip")
	if chip.Name != "chip" {
		t.Errorf("Name = %q", chip.Name)
	}
	if chip.Style.Radius != theme.DefaultRadii().Full {
		t.Errorf("chip radius = %v, want the full token", chip.Style.Radius)
	}

	card := style.Get("card")
	if card.Style.BorderWidth != 1 {
		t.Errorf("card border width = %v, want 1", card.Style.BorderWidth)
	}

	// Builtin styles leave colors unset so they adapt to any theme.
	for _, name := range []string{"plain", "chip", "card", "banner"} {
		p := style.Get(name)
		if p.Style.Background != 0 || p.Style.Foreground != 0 {
			t.Errorf("%s: builtin presets should not pin colors", name)
		}
	}
}

func TestGetFallback(t *testing.T) {
	got := style.Get("no-such-preset")
	if got.Name != "plain" {
		t.Errorf("fallback = %q, want plain", got.Name)
	}
	if style.Has("no-such-preset") {
		t.Error("Has should report missing presets")
	}
	if !style.Has("card") {
		t.Error("Has should report builtin presets")
	}
}

func TestNamesSorted(t *testing.T) {
	names := style.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() = %v, want sorted", names)
	}
	for _, want := range []string{"banner", "card", "chip", "plain"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
}

func TestRegister(t *testing.T) {
	p := style.Preset{
		Name:  "test-alert",
		Style: style.Style{}.WithBackground(paint.ColorRed),
	}
	if err := style.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := style.Get("test-alert"); got.Style.Background != paint.ColorRed {
		t.Errorf("registered preset not returned: %+v", got)
	}

	// Re-registering replaces.
	p.Style = style.Style{}.WithBackground(paint.ColorGreen)
	if err := style.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := style.Get("test-alert"); got.Style.Background != paint.ColorGreen {
		t.Error("re-register should replace the preset")
	}
}

func TestRegisterEmptyName(t *testing.T) {
	err := style.Register(style.Preset{})
	var verr *errors.ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	doc := `
name = "alert"
description = "Error banner"

[style]
background = "#B3261E"
foreground = "#FFFFFF"
border_width = 2
radius = 8
opacity = 0.9

[style.padding]
left = 16
top = 12
right = 16
bottom = 12

[style.text]
size = 14
weight = "medium"
italic = true
`
	p, err := style.LoadTOML([]byte(doc))
	if err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}
	if p.Name != "alert" || p.Description != "Error banner" {
		t.Errorf("preset = %q / %q", p.Name, p.Description)
	}
	if got := p.Style.Background.Hex(); got != "#B3261E" {
		t.Errorf("Background = %s", got)
	}
	if p.Style.BorderWidth != 2 || p.Style.Radius != 8 || p.Style.Opacity != 0.9 {
		t.Errorf("geometry = %v/%v/%v", p.Style.BorderWidth, p.Style.Radius, p.Style.Opacity)
	}
	if p.Style.Padding.Left != 16 || p.Style.Padding.Top != 12 {
		t.Errorf("Padding = %+v", p.Style.Padding)
	}
	if p.Style.Text == nil {
		t.Fatal("Text not decoded")
	}
	if p.Style.Text.FontSize != 14 {
		t.Errorf("text size = %v", p.Style.Text.FontSize)
	}
	if p.Style.Text.FontWeight != paint.FontWeightMedium {
		t.Errorf("text weight = %v", p.Style.Text.FontWeight)
	}
	if p.Style.Text.FontStyle != paint.FontStyleItalic {
		t.Errorf("text style = %v, want italic", p.Style.Text.FontStyle)
	}
}

func TestLoadTOMLErrors(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing name", "description = \"x\"\n", "name"},
		{"bad color", "name = \"x\"\n[style]\nbackground = \"nope\"\n", "style.background"},
		{"negative radius", "name = \"x\"\n[style]\nradius = -1\n", "style.radius"},
		{"bad weight", "name = \"x\"\n[style.text]\nweight = \"chunky\"\n", "style.text.weight"},
		{"negative padding", "name = \"x\"\n[style.padding]\nleft = -3\n", "style.padding"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := style.LoadTOML([]byte(c.doc))
			var verr *errors.ValidationError
			if !stderrors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Field != c.field {
				t.Errorf("Field = %q, want %q", verr.Field, c.field)
			}
		})
	}
}

func TestLoadTOMLMalformed(t *testing.T) {
	_, err := style.LoadTOML([]byte("name = [unterminated"))
	if err == nil {
		t.Fatal("want error for malformed TOML")
	}
	if !strings.Contains(err.Error(), "failed to parse preset") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	orig := style.Preset{
		Name:        "fancy",
		Description: "Round trip test",
		Style: style.Style{
			Background:  paint.MustParseHex("#112233"),
			BorderWidth: 1.5,
			Radius:      10,
			Padding:     style.Get("card").Style.Padding,
		},
	}
	orig.Style.Text = &paint.TextStyle{FontSize: 13, FontWeight: paint.FontWeightBold}

	data, err := style.SaveTOML(orig)
	if err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}
	got, err := style.LoadTOML(data)
	if err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}

	if got.Name != orig.Name || got.Description != orig.Description {
		t.Errorf("metadata = %q / %q", got.Name, got.Description)
	}
	if got.Style.Background != orig.Style.Background {
		t.Errorf("Background = %v, want %v", got.Style.Background, orig.Style.Background)
	}
	if got.Style.BorderWidth != 1.5 || got.Style.Radius != 10 {
		t.Errorf("geometry = %v/%v", got.Style.BorderWidth, got.Style.Radius)
	}
	if got.Style.Padding != orig.Style.Padding {
		t.Errorf("Padding = %+v, want %+v", got.Style.Padding, orig.Style.Padding)
	}
	if got.Style.Text == nil || *got.Style.Text != *orig.Style.Text {
		t.Errorf("Text = %+v, want %+v", got.Style.Text, orig.Style.Text)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preset.toml")
	if err := os.WriteFile(path, []byte("name = \"disk\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := style.LoadTOMLFile(path)
	if err != nil {
		t.Fatalf("LoadTOMLFile: %v", err)
	}
	if p.Name != "disk" {
		t.Errorf("Name = %q", p.Name)
	}

	_, err = style.LoadTOMLFile(filepath.Join(dir, "absent.toml"))
	var lerr *errors.LoomError
	if !stderrors.As(err, &lerr) {
		t.Fatalf("want LoomError, got %v", err)
	}
	if lerr.Kind != errors.KindConfig || lerr.Path == "" {
		t.Errorf("Kind = %v Path = %q", lerr.Kind, lerr.Path)
	}
}

func TestPresetResolvesAgainstTheme(t *testing.T) {
	th := theme.DefaultDarkTheme()
	resolved := style.Get("card").Style.Resolve(th)
	if resolved.Background != th.ColorScheme.Surface {
		t.Errorf("Background = %v, want dark Surface", resolved.Background)
	}
	if resolved.BorderWidth != 1 {
		t.Error("preset geometry should survive resolution")
	}
}
