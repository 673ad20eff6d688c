package layout

import "github.com/go-drift/loom/pkg/geometry"

// Rotated reserves space for its child rotated by Angle radians and scaled
// by Scale: the box sizes itself to the axis-aligned bounds of the
// transformed child, and the child is centered within those bounds so the
// rotation pivots around its center.
//
// The child itself is measured and positioned unrotated; applying the
// visual transform is the renderer's concern. A Scale of 0 is treated as 1
// so the zero value of the field does not collapse the box.
type Rotated struct {
	BoxBase
	Angle float64
	Scale float64
	Child Box
}

// NewRotated creates a Rotated box. Angle is in radians; a scale of 0
// means unscaled.
func NewRotated(angle, scale float64, child Box) *Rotated {
	r := &Rotated{Angle: angle, Scale: scale, Child: child}
	r.SetSelf(r)
	return r
}

func (r *Rotated) VisitChildren(visitor func(Box)) {
	if r.Child != nil {
		visitor(r.Child)
	}
}

// EffectiveScale returns the scale with the zero value mapped to 1.
func (r *Rotated) EffectiveScale() float64 {
	if r.Scale == 0 {
		return 1
	}
	return r.Scale
}

func (r *Rotated) PerformLayout() {
	constraints := r.Constraints()
	if r.Child == nil {
		r.SetSize(constraints.Constrain(geometry.Size{}))
		return
	}

	r.Child.Layout(Loose(geometry.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}))
	childSize := r.Child.Size()

	bounds := geometry.RotatedBounds(childSize, r.Angle, r.EffectiveScale())
	size := constraints.Constrain(bounds)
	r.SetSize(size)

	r.Child.SetOffset(geometry.Offset{
		X: (size.Width - childSize.Width) / 2,
		Y: (size.Height - childSize.Height) / 2,
	})
}
