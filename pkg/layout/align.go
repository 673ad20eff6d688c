package layout

import "github.com/go-drift/loom/pkg/geometry"

// Align positions its child within itself according to the given
// alignment.
//
// Align expands to fill the available space, then places the child within
// that space. The child receives loose constraints, so it sizes itself.
// When an axis is unbounded, Align shrinks to the child on that axis.
//
//	layout.NewAlign(layout.AlignmentBottomRight, child)
//
// See [NewCenter] for the common centered case.
type Align struct {
	BoxBase
	Alignment Alignment
	Child     Box
}

// NewAlign creates an Align that places child by alignment.
func NewAlign(alignment Alignment, child Box) *Align {
	a := &Align{Alignment: alignment, Child: child}
	a.SetSelf(a)
	return a
}

// NewCenter creates an Align that centers its child.
func NewCenter(child Box) *Align {
	return NewAlign(AlignmentCenter, child)
}

func (a *Align) VisitChildren(visitor func(Box)) {
	if a.Child != nil {
		visitor(a.Child)
	}
}

func (a *Align) PerformLayout() {
	constraints := a.Constraints()

	targetWidth := constraints.MaxWidth
	targetHeight := constraints.MaxHeight
	childLaidOut := false

	// With an unbounded axis there is no space to expand into; measure the
	// child first and hug it.
	if a.Child != nil && (!constraints.HasBoundedWidth() || !constraints.HasBoundedHeight()) {
		a.Child.Layout(Loose(geometry.Size{Width: targetWidth, Height: targetHeight}))
		childSize := a.Child.Size()
		if !constraints.HasBoundedWidth() {
			targetWidth = childSize.Width
		}
		if !constraints.HasBoundedHeight() {
			targetHeight = childSize.Height
		}
		childLaidOut = !constraints.HasBoundedWidth() && !constraints.HasBoundedHeight()
	}

	size := constraints.Constrain(geometry.Size{Width: targetWidth, Height: targetHeight})
	a.SetSize(size)

	if a.Child == nil {
		return
	}
	if !childLaidOut {
		a.Child.Layout(Loose(size))
	}
	a.Child.SetOffset(a.Alignment.WithinRect(
		geometry.RectFromLTWH(0, 0, size.Width, size.Height),
		a.Child.Size(),
	))
}
