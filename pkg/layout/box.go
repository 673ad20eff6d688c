// Package layout provides the box protocol and the containers that
// implement it: measurable nodes that receive [Constraints] from their
// parent, pick a size within them, and position their children by offset.
//
// Trees are built from constructors and laid out with a single call:
//
//	root := layout.NewPadding(geometry.EdgeInsetsAll(16),
//	    layout.FlowOf(8, 8,
//	        layout.NewLabel("Go", paint.TextStyle{}, nil),
//	        layout.NewLabel("Rust", paint.TextStyle{}, nil),
//	    ),
//	)
//	root.Layout(layout.Tight(geometry.Size{Width: 320, Height: 240}))
//
// After layout, every box reports its Size and its Offset within its
// parent. The package computes geometry only; rendering the result is the
// host's concern.
package layout

import "github.com/go-drift/loom/pkg/geometry"

// Box is a node in a layout tree.
//
// Layout must be called before Size or Offset are meaningful. Offsets are
// parent-assigned and relative to the parent's origin; the root's offset is
// always zero.
type Box interface {
	// Layout computes the box's size within the given constraints and
	// positions its children.
	Layout(constraints Constraints)
	// Size returns the size chosen during the last layout.
	Size() geometry.Size
	// Offset returns the position assigned by the parent during its last
	// layout.
	Offset() geometry.Offset
	// SetOffset assigns the box's position. Called by the parent.
	SetOffset(offset geometry.Offset)
	// VisitChildren calls the visitor for each child in paint order.
	VisitChildren(visitor func(Box))
}

// BoxBase provides the common state for boxes: size, parent-assigned
// offset, and the constraints last received. Concrete boxes embed it,
// register themselves with SetSelf, and implement PerformLayout.
type BoxBase struct {
	size        geometry.Size
	offset      geometry.Offset
	constraints Constraints
	self        Box
}

// SetSelf registers the concrete box so Layout can dispatch to its
// PerformLayout. Constructors call this; it must happen before Layout.
func (b *BoxBase) SetSelf(self Box) {
	b.self = self
}

// Layout stores the constraints and delegates to the concrete box's
// PerformLayout.
func (b *BoxBase) Layout(constraints Constraints) {
	b.constraints = constraints
	if performer, ok := b.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// Size returns the current size of the box.
func (b *BoxBase) Size() geometry.Size {
	return b.size
}

// SetSize records the size chosen by PerformLayout.
func (b *BoxBase) SetSize(size geometry.Size) {
	b.size = size
}

// Offset returns the parent-assigned position of this box.
func (b *BoxBase) Offset() geometry.Offset {
	return b.offset
}

// SetOffset assigns the position of this box within its parent.
func (b *BoxBase) SetOffset(offset geometry.Offset) {
	b.offset = offset
}

// Constraints returns the constraints received by the last Layout call.
func (b *BoxBase) Constraints() Constraints {
	return b.constraints
}

// VisitChildren is the leaf default; container boxes override it.
func (b *BoxBase) VisitChildren(visitor func(Box)) {}

// Bounds returns the box's rectangle in its parent's coordinates.
func Bounds(b Box) geometry.Rect {
	o, s := b.Offset(), b.Size()
	return geometry.RectFromLTWH(o.X, o.Y, s.Width, s.Height)
}

// Walk visits b and every descendant depth-first, passing each box's
// accumulated offset from the root. Visiting stops when visit returns
// false.
func Walk(b Box, visit func(box Box, origin geometry.Offset) bool) {
	walk(b, geometry.Offset{}, visit)
}

func walk(b Box, origin geometry.Offset, visit func(Box, geometry.Offset) bool) bool {
	at := origin.Add(b.Offset())
	if !visit(b, at) {
		return false
	}
	ok := true
	b.VisitChildren(func(child Box) {
		if ok {
			ok = walk(child, at, visit)
		}
	})
	return ok
}
