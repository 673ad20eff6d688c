package layout

import "github.com/go-drift/loom/pkg/geometry"

// Alignment positions a box within available space. X and Y range over
// [-1, 1]: -1 is the start edge (left or top), 0 the center, 1 the end
// edge. Values outside the range overshoot, which is occasionally useful
// for peeking effects.
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// WithinRect returns the offset that places a box of the given size inside
// rect according to the alignment.
func (a Alignment) WithinRect(rect geometry.Rect, size geometry.Size) geometry.Offset {
	return geometry.Offset{
		X: rect.Left + (rect.Width()-size.Width)*(a.X+1)/2,
		Y: rect.Top + (rect.Height()-size.Height)*(a.Y+1)/2,
	}
}
