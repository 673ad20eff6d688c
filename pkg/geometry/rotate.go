package geometry

import "math"

// RotatedBounds computes the smallest axis-aligned bounding box that contains
// content of the given size after rotating it by radians about its center,
// then scales the box uniformly by scale.
//
// The rotation is visual only: callers that place rotated content should
// center it within the returned bounds. The angle may be any real value; the
// bounds of a rectangle rotated by -θ equal those for θ. Negative dimensions
// and a negative scale clamp to zero, so the result is always non-negative.
//
// With θ=0 and scale=1 the content size is returned unchanged. A 90° rotation
// swaps width and height.
func RotatedBounds(content Size, radians, scale float64) Size {
	w := math.Max(0, content.Width)
	h := math.Max(0, content.Height)
	s := math.Max(0, scale)

	sin, cos := math.Sincos(math.Abs(radians))
	sin, cos = math.Abs(sin), math.Abs(cos)

	return Size{
		Width:  (w*cos + h*sin) * s,
		Height: (h*cos + w*sin) * s,
	}
}
