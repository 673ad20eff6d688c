package theme

// SpacingScale is the spacing token table, in logical pixels. Styles and
// containers reference tokens instead of hard-coding gaps so spacing stays
// consistent across a tree.
type SpacingScale struct {
	None float64
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
	XXL  float64
}

// DefaultSpacing returns the standard spacing scale.
func DefaultSpacing() SpacingScale {
	return SpacingScale{
		None: 0,
		XS:   4,
		SM:   8,
		MD:   16,
		LG:   24,
		XL:   32,
		XXL:  48,
	}
}

// RadiusScale is the corner radius token table, in logical pixels.
type RadiusScale struct {
	None   float64
	Small  float64
	Medium float64
	Large  float64
	// Full produces fully rounded (pill) corners at any practical size.
	Full float64
}

// DefaultRadii returns the standard radius scale.
func DefaultRadii() RadiusScale {
	return RadiusScale{
		None:   0,
		Small:  4,
		Medium: 8,
		Large:  16,
		Full:   9999,
	}
}
