package layout

import (
	"math"

	"github.com/go-drift/loom/pkg/geometry"
)

// Unconstrained marks an axis with no upper bound. Any value at or above it
// (including +Inf) is treated as unbounded.
const Unconstrained = math.MaxFloat64

// Constraints describe the size range a parent allows a child: a box must
// pick a size with each dimension in [min, max]. Min bounds of 0 with max
// bounds of [Unconstrained] impose nothing.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that admit exactly the given size.
func Tight(size geometry.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints bounded above by the given size with zero
// minimums, letting the child size itself up to the bound.
func Loose(size geometry.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints that impose nothing on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: Unconstrained, MaxHeight: Unconstrained}
}

// Constrain clamps a size into the allowed range.
func (c Constraints) Constrain(size geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  clampDim(size.Width, c.MinWidth, c.MaxWidth),
		Height: clampDim(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Deflate returns the constraints that remain for a child after reserving
// the given insets, with minimums reduced and maximums shrunk but never
// below zero.
func (c Constraints) Deflate(insets geometry.EdgeInsets) Constraints {
	h := insets.Horizontal()
	v := insets.Vertical()
	return Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MaxWidth:  deflateMax(c.MaxWidth, h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxHeight: deflateMax(c.MaxHeight, v),
	}
}

// IsTight reports whether only one size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width has a finite upper bound.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unconstrained
}

// HasBoundedHeight reports whether the height has a finite upper bound.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unconstrained
}

// IsSatisfiedBy reports whether the size lies within the allowed range.
func (c Constraints) IsSatisfiedBy(size geometry.Size) bool {
	return size.Width >= c.MinWidth && size.Width <= c.MaxWidth &&
		size.Height >= c.MinHeight && size.Height <= c.MaxHeight
}

func clampDim(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// deflateMax shrinks an upper bound by the reserved amount, keeping
// unbounded axes unbounded.
func deflateMax(max, by float64) float64 {
	if max >= Unconstrained {
		return max
	}
	return math.Max(0, max-by)
}
