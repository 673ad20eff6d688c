package theme

import (
	"strings"

	"github.com/go-drift/loom/pkg/errors"
)

// Brightness indicates whether a theme targets a light or dark appearance.
type Brightness int

const (
	// BrightnessLight is the light appearance.
	BrightnessLight Brightness = iota
	// BrightnessDark is the dark appearance.
	BrightnessDark
)

// String returns the brightness name as used in theme files.
func (b Brightness) String() string {
	switch b {
	case BrightnessDark:
		return "dark"
	default:
		return "light"
	}
}

// ParseBrightness parses a brightness name ("light" or "dark",
// case-insensitive).
func ParseBrightness(s string) (Brightness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	}
	return BrightnessLight, &errors.ValidationError{
		Field:  "brightness",
		Value:  s,
		Reason: `must be "light" or "dark"`,
	}
}
