package theme

import "github.com/go-drift/loom/pkg/paint"

// TextTheme defines the named text styles of a theme, from large display
// text down to small labels.
type TextTheme struct {
	// DisplayLarge is the largest display style.
	DisplayLarge paint.TextStyle
	// HeadlineLarge is for large section headlines.
	HeadlineLarge paint.TextStyle
	// HeadlineMedium is for medium section headlines.
	HeadlineMedium paint.TextStyle
	// HeadlineSmall is for small section headlines.
	HeadlineSmall paint.TextStyle
	// TitleMedium is for emphasized titles within content.
	TitleMedium paint.TextStyle
	// BodyLarge is for long-form reading text.
	BodyLarge paint.TextStyle
	// BodyMedium is the default body style.
	BodyMedium paint.TextStyle
	// BodySmall is for supporting body text.
	BodySmall paint.TextStyle
	// LabelLarge is for prominent control labels.
	LabelLarge paint.TextStyle
	// LabelMedium is for medium control labels.
	LabelMedium paint.TextStyle
	// LabelSmall is the smallest label style.
	LabelSmall paint.TextStyle
}

// DefaultTextTheme returns the standard type scale with every style colored
// onColor.
func DefaultTextTheme(onColor paint.Color) TextTheme {
	return TextTheme{
		DisplayLarge: paint.TextStyle{
			Color:    onColor,
			FontSize: 57,
		},
		HeadlineLarge: paint.TextStyle{
			Color:    onColor,
			FontSize: 32,
		},
		HeadlineMedium: paint.TextStyle{
			Color:    onColor,
			FontSize: 28,
		},
		HeadlineSmall: paint.TextStyle{
			Color:    onColor,
			FontSize: 24,
		},
		TitleMedium: paint.TextStyle{
			Color:         onColor,
			FontSize:      16,
			FontWeight:    paint.FontWeightMedium,
			LetterSpacing: 0.15,
		},
		BodyLarge: paint.TextStyle{
			Color:         onColor,
			FontSize:      16,
			LetterSpacing: 0.5,
		},
		BodyMedium: paint.TextStyle{
			Color:         onColor,
			FontSize:      14,
			LetterSpacing: 0.25,
		},
		BodySmall: paint.TextStyle{
			Color:         onColor,
			FontSize:      12,
			LetterSpacing: 0.4,
		},
		LabelLarge: paint.TextStyle{
			Color:         onColor,
			FontSize:      14,
			FontWeight:    paint.FontWeightMedium,
			LetterSpacing: 0.1,
		},
		LabelMedium: paint.TextStyle{
			Color:         onColor,
			FontSize:      12,
			FontWeight:    paint.FontWeightMedium,
			LetterSpacing: 0.5,
		},
		LabelSmall: paint.TextStyle{
			Color:         onColor,
			FontSize:      11,
			FontWeight:    paint.FontWeightMedium,
			LetterSpacing: 0.5,
		},
	}
}
