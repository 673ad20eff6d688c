package theme_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/theme"
)

func TestParseEmpty(t *testing.T) {
	th, err := theme.Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Brightness != theme.BrightnessLight {
		t.Errorf("Brightness = %v, want light", th.Brightness)
	}
	if th.ColorScheme != theme.LightColorScheme() {
		t.Error("empty document should produce the default light scheme")
	}
}

func TestParseDarkBase(t *testing.T) {
	th, err := theme.Parse([]byte("brightness: dark\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Brightness != theme.BrightnessDark {
		t.Errorf("Brightness = %v, want dark", th.Brightness)
	}
	if th.ColorScheme != theme.DarkColorScheme() {
		t.Error("dark document should start from the dark scheme")
	}
}

func TestParseColorOverrides(t *testing.T) {
	doc := `
colors:
  primary: "#FF8800"
  onPrimary: "#000000"
`
	th, err := theme.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := th.ColorScheme.Primary.Hex(); got != "#FF8800" {
		t.Errorf("Primary = %s, want #FF8800", got)
	}
	if th.ColorScheme.OnPrimary != paint.ColorBlack {
		t.Errorf("OnPrimary = %v, want black", th.ColorScheme.OnPrimary)
	}
	// Untouched slots keep their defaults.
	if th.ColorScheme.Surface != theme.LightColorScheme().Surface {
		t.Error("Surface should keep its default")
	}
}

// Overriding onBackground must recolor the derived text theme, whether the
// document customizes text styles or not.
func TestParseTextDerivation(t *testing.T) {
	base := `
colors:
  onBackground: "#112233"
`
	th, err := theme.Parse([]byte(base))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := paint.MustParseHex("#112233")
	if got := th.TextThemeOf().BodyMedium.Color; got != want {
		t.Errorf("derived body color = %v, want %v", got, want)
	}

	withText := base + `
text:
  bodyMedium:
    size: 15
    weight: medium
`
	th, err = theme.Parse([]byte(withText))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tt := th.TextThemeOf()
	if tt.BodyMedium.FontSize != 15 {
		t.Errorf("BodyMedium size = %v, want 15", tt.BodyMedium.FontSize)
	}
	if tt.BodyMedium.FontWeight != paint.FontWeightMedium {
		t.Errorf("BodyMedium weight = %v, want medium", tt.BodyMedium.FontWeight)
	}
	if tt.BodyMedium.Color != want {
		t.Errorf("BodyMedium color = %v, want %v", tt.BodyMedium.Color, want)
	}
	// Styles the document does not touch keep the derived values.
	if tt.BodyLarge.FontSize != 16 {
		t.Errorf("BodyLarge size = %v, want 16", tt.BodyLarge.FontSize)
	}
}

func TestParseTextStyleFields(t *testing.T) {
	doc := `
text:
  titleMedium:
    family: Inter
    color: "#AA00AA"
  labelSmall:
    weight: bold
`
	th, err := theme.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tt := th.TextThemeOf()
	if tt.TitleMedium.FontFamily != "Inter" {
		t.Errorf("TitleMedium family = %q, want Inter", tt.TitleMedium.FontFamily)
	}
	if got := tt.TitleMedium.Color.Hex(); got != "#AA00AA" {
		t.Errorf("TitleMedium color = %s, want #AA00AA", got)
	}
	if tt.LabelSmall.FontWeight != paint.FontWeightBold {
		t.Errorf("LabelSmall weight = %v, want bold", tt.LabelSmall.FontWeight)
	}
}

func TestParseTokens(t *testing.T) {
	doc := `
fontFamily: Go
spacing:
  md: 20
  xxl: 64
radii:
  medium: 6
`
	th, err := theme.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.DefaultFontFamily != "Go" {
		t.Errorf("DefaultFontFamily = %q, want Go", th.DefaultFontFamily)
	}
	spacing := th.SpacingOf()
	if spacing.MD != 20 || spacing.XXL != 64 {
		t.Errorf("spacing = %+v, want MD=20 XXL=64", spacing)
	}
	if spacing.SM != theme.DefaultSpacing().SM {
		t.Error("untouched spacing tokens should keep their defaults")
	}
	radii := th.RadiiOf()
	if radii.Medium != 6 {
		t.Errorf("radii.Medium = %v, want 6", radii.Medium)
	}
	if radii.Large != theme.DefaultRadii().Large {
		t.Error("untouched radius tokens should keep their defaults")
	}
}

// Explicit zero must override, not fall back to the default.
func TestParseZeroToken(t *testing.T) {
	th, err := theme.Parse([]byte("radii:\n  medium: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := th.RadiiOf().Medium; got != 0 {
		t.Errorf("radii.Medium = %v, want 0", got)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"bad hex", "colors:\n  primary: ZZZ\n", "colors.primary"},
		{"bad brightness", "brightness: dim\n", "brightness"},
		{"bad weight", "text:\n  bodyMedium:\n    weight: chunky\n", "text.bodyMedium.weight"},
		{"negative size", "text:\n  bodySmall:\n    size: -4\n", "text.bodySmall.size"},
		{"bad text color", "text:\n  bodyLarge:\n    color: nope\n", "text.bodyLarge.color"},
		{"negative spacing", "spacing:\n  lg: -1\n", "spacing.lg"},
		{"negative radius", "radii:\n  small: -2\n", "radii.small"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := theme.Parse([]byte(c.doc))
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

func TestParseMalformedYAML(t *testing.T) {
	_, err := theme.Parse([]byte("colors: [not a map"))
	if err == nil {
		t.Fatal("want error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse theme") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	doc := "brightness: dark\ncolors:\n  primary: \"#113355\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := theme.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Brightness != theme.BrightnessDark {
		t.Errorf("Brightness = %v, want dark", th.Brightness)
	}
	if got := th.ColorScheme.Primary.Hex(); got != "#113355" {
		t.Errorf("Primary = %s, want #113355", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := theme.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var lerr *errors.LoomError
	if !stderrors.As(err, &lerr) {
		t.Fatalf("want LoomError, got %v", err)
	}
	if lerr.Kind != errors.KindConfig {
		t.Errorf("Kind = %v, want config", lerr.Kind)
	}
	if lerr.Path == "" {
		t.Error("Path should name the missing file")
	}
}

func TestLoadInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("colors:\n  surface: oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := theme.Load(path)
	var lerr *errors.LoomError
	if !stderrors.As(err, &lerr) {
		t.Fatalf("want LoomError, got %v", err)
	}
	var verr *errors.ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("want wrapped ValidationError, got %v", err)
	}
	if verr.Field != "colors.surface" {
		t.Errorf("Field = %q, want colors.surface", verr.Field)
	}
}
