package theme

import "github.com/go-drift/loom/pkg/paint"

// ColorScheme defines the semantic color slots a theme provides. Styles and
// containers pull from these slots rather than naming raw colors, so a whole
// tree restyles by swapping the scheme.
type ColorScheme struct {
	// Primary is the main accent color.
	Primary paint.Color
	// OnPrimary is the content color used on top of Primary.
	OnPrimary paint.Color
	// Secondary is the supporting accent color.
	Secondary paint.Color
	// OnSecondary is the content color used on top of Secondary.
	OnSecondary paint.Color
	// Background is the color behind all content.
	Background paint.Color
	// OnBackground is the default content color on Background.
	OnBackground paint.Color
	// Surface is the color of raised regions such as cards and sheets.
	Surface paint.Color
	// OnSurface is the default content color on Surface.
	OnSurface paint.Color
	// SurfaceVariant is a muted surface color for chips and wells.
	SurfaceVariant paint.Color
	// OnSurfaceVariant is the content color used on SurfaceVariant.
	OnSurfaceVariant paint.Color
	// Error is the color for error states.
	Error paint.Color
	// OnError is the content color used on top of Error.
	OnError paint.Color
	// Outline is the color for borders and dividers.
	Outline paint.Color
}

// LightColorScheme returns the default light color scheme.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          0xFF6750A4,
		OnPrimary:        0xFFFFFFFF,
		Secondary:        0xFF625B71,
		OnSecondary:      0xFFFFFFFF,
		Background:       0xFFFFFBFE,
		OnBackground:     0xFF1C1B1F,
		Surface:          0xFFFFFBFE,
		OnSurface:        0xFF1C1B1F,
		SurfaceVariant:   0xFFE7E0EC,
		OnSurfaceVariant: 0xFF49454F,
		Error:            0xFFB3261E,
		OnError:          0xFFFFFFFF,
		Outline:          0xFF79747E,
	}
}

// DarkColorScheme returns the default dark color scheme.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          0xFFD0BCFF,
		OnPrimary:        0xFF381E72,
		Secondary:        0xFFCCC2DC,
		OnSecondary:      0xFF332D41,
		Background:       0xFF1C1B1F,
		OnBackground:     0xFFE6E1E5,
		Surface:          0xFF1C1B1F,
		OnSurface:        0xFFE6E1E5,
		SurfaceVariant:   0xFF49454F,
		OnSurfaceVariant: 0xFFCAC4D0,
		Error:            0xFFF2B8B5,
		OnError:          0xFF601410,
		Outline:          0xFF938F99,
	}
}
