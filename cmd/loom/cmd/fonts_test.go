package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/loom/pkg/paint"
)

func writeFontFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestInspectFont(t *testing.T) {
	path := writeFontFile(t, t.TempDir(), "goregular.ttf", goregular.TTF)

	info, err := inspectFont(path, "")
	if err != nil {
		t.Fatalf("inspectFont() error = %v", err)
	}
	if info.Family != "Go" {
		t.Errorf("Family = %q, want %q", info.Family, "Go")
	}
	if info.Weight != paint.FontWeightNormal {
		t.Errorf("Weight = %v, want normal", info.Weight)
	}
	if info.Glyphs == 0 {
		t.Error("Glyphs should be positive")
	}
	if info.Sample != "" {
		t.Errorf("Sample = %q, want empty without --sample", info.Sample)
	}
}

func TestInspectFontBold(t *testing.T) {
	path := writeFontFile(t, t.TempDir(), "gobold.ttf", gobold.TTF)

	info, err := inspectFont(path, "")
	if err != nil {
		t.Fatalf("inspectFont() error = %v", err)
	}
	if info.Weight != paint.FontWeightBold {
		t.Errorf("Weight = %v, want bold", info.Weight)
	}
	if !strings.Contains(strings.ToLower(info.Subfamily), "bold") {
		t.Errorf("Subfamily = %q, want bold face", info.Subfamily)
	}
}

func TestInspectFontSample(t *testing.T) {
	path := writeFontFile(t, t.TempDir(), "goregular.ttf", goregular.TTF)

	info, err := inspectFont(path, "Hello")
	if err != nil {
		t.Fatalf("inspectFont() error = %v", err)
	}
	if info.Sample == "" {
		t.Fatal("Sample should be measured")
	}
	if !strings.Contains(info.Sample, "×") {
		t.Errorf("Sample = %q, want WxH form", info.Sample)
	}
}

func TestInspectFontInvalid(t *testing.T) {
	path := writeFontFile(t, t.TempDir(), "broken.ttf", []byte("not a font"))
	if _, err := inspectFont(path, ""); err == nil {
		t.Fatal("expected error for invalid font data")
	}
}

func TestCollectFontFiles(t *testing.T) {
	dir := t.TempDir()
	writeFontFile(t, dir, "b.ttf", []byte("x"))
	writeFontFile(t, dir, "readme.txt", []byte("x"))
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFontFile(t, sub, "a.otf", []byte("x"))

	files, err := collectFontFiles([]string{dir})
	if err != nil {
		t.Fatalf("collectFontFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "b.ttf" && filepath.Base(files[1]) != "b.ttf" {
		t.Errorf("b.ttf not collected: %v", files)
	}
}

func TestCollectFontFilesExplicit(t *testing.T) {
	// An explicitly named file is kept regardless of extension.
	path := writeFontFile(t, t.TempDir(), "whatever.bin", []byte("x"))

	files, err := collectFontFiles([]string{path})
	if err != nil {
		t.Fatalf("collectFontFiles() error = %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("got %v, want [%s]", files, path)
	}
}

func TestIsFontFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.ttf", true},
		{"A.TTF", true},
		{"b.otf", true},
		{"c.txt", false},
		{"d.woff2", false},
	}
	for _, tt := range tests {
		if got := isFontFile(tt.path); got != tt.want {
			t.Errorf("isFontFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestGuessWeight(t *testing.T) {
	tests := []struct {
		sub  string
		want paint.FontWeight
	}{
		{"Regular", paint.FontWeightNormal},
		{"Bold", paint.FontWeightBold},
		{"Bold Italic", paint.FontWeightBold},
		{"SemiBold", paint.FontWeightSemibold},
		{"Extra Light", paint.FontWeightExtraLight},
		{"Medium", paint.FontWeightMedium},
		{"Black", paint.FontWeightBlack},
		{"Heavy", paint.FontWeightBlack},
		{"Thin Italic", paint.FontWeightThin},
		{"", paint.FontWeightNormal},
	}
	for _, tt := range tests {
		if got := guessWeight(tt.sub); got != tt.want {
			t.Errorf("guessWeight(%q) = %v, want %v", tt.sub, got, tt.want)
		}
	}
}
