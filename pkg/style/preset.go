package style

import (
	"sort"
	"sync"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/theme"
)

// Preset is a named, reusable style bundle. Preset styles leave their
// colors unset so they pick up whichever theme they are resolved against.
type Preset struct {
	Name        string
	Description string
	Style       Style
}

var (
	presetMu sync.RWMutex
	presets  map[string]Preset
)

func init() {
	presets = map[string]Preset{
		"plain":  plainPreset(),
		"chip":   chipPreset(),
		"card":   cardPreset(),
		"banner": bannerPreset(),
	}
}

// Get returns a named preset, falling back to "plain" if not found.
func Get(name string) Preset {
	presetMu.RLock()
	defer presetMu.RUnlock()
	if p, ok := presets[name]; ok {
		return p
	}
	return presets["plain"]
}

// Has reports whether a preset with the given name exists.
func Has(name string) bool {
	presetMu.RLock()
	defer presetMu.RUnlock()
	_, ok := presets[name]
	return ok
}

// Names returns all available preset names in sorted order.
func Names() []string {
	presetMu.RLock()
	defer presetMu.RUnlock()
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Register adds a preset to the registry, replacing any preset with the
// same name.
func Register(p Preset) error {
	if p.Name == "" {
		return &errors.ValidationError{Field: "name", Reason: "preset name cannot be empty"}
	}
	presetMu.Lock()
	defer presetMu.Unlock()
	presets[p.Name] = p
	return nil
}

func plainPreset() Preset {
	return Preset{
		Name:        "plain",
		Description: "Unstyled content on the theme surface.",
	}
}

func chipPreset() Preset {
	spacing := theme.DefaultSpacing()
	radii := theme.DefaultRadii()
	return Preset{
		Name:        "chip",
		Description: "Compact pill for tags and filters.",
		Style: Style{
			Radius:  radii.Full,
			Padding: geometry.EdgeInsetsSymmetric(spacing.SM, spacing.XS),
		},
	}
}

func cardPreset() Preset {
	spacing := theme.DefaultSpacing()
	radii := theme.DefaultRadii()
	return Preset{
		Name:        "card",
		Description: "Bordered surface for grouped content.",
		Style: Style{
			BorderWidth: 1,
			Radius:      radii.Medium,
			Padding:     geometry.EdgeInsetsAll(spacing.MD),
		},
	}
}

func bannerPreset() Preset {
	spacing := theme.DefaultSpacing()
	radii := theme.DefaultRadii()
	return Preset{
		Name:        "banner",
		Description: "Full-width strip for messages.",
		Style: Style{
			Radius:  radii.Small,
			Padding: geometry.EdgeInsetsSymmetric(spacing.MD, spacing.SM),
		},
	}
}
