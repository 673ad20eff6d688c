package layout

import "github.com/go-drift/loom/pkg/geometry"

// SizedBox constrains its child to a specific width and/or height.
//
// When both Width and Height are set, SizedBox forces those exact
// dimensions (constrained by the parent). When only one dimension is set,
// the other follows the child's own size. A zero dimension means unset.
//
// Common uses:
//
//	// Fixed-size box
//	layout.NewSizedBox(100, 50, child)
//
//	// Horizontal gap in a row
//	layout.HSpace(16)
//
//	// Force child to a specific width only
//	layout.NewSizedBox(200, 0, child)
type SizedBox struct {
	BoxBase
	Width  float64
	Height float64
	Child  Box
}

// NewSizedBox creates a SizedBox. A zero width or height leaves that
// dimension to the child.
func NewSizedBox(width, height float64, child Box) *SizedBox {
	s := &SizedBox{Width: width, Height: height, Child: child}
	s.SetSelf(s)
	return s
}

// HSpace creates a fixed-width, zero-height gap.
func HSpace(width float64) *SizedBox {
	return NewSizedBox(width, 0, nil)
}

// VSpace creates a fixed-height, zero-width gap.
func VSpace(height float64) *SizedBox {
	return NewSizedBox(0, height, nil)
}

func (s *SizedBox) VisitChildren(visitor func(Box)) {
	if s.Child != nil {
		visitor(s.Child)
	}
}

func (s *SizedBox) PerformLayout() {
	constraints := s.Constraints()
	desired := geometry.Size{Width: s.Width, Height: s.Height}

	if s.Child == nil {
		s.SetSize(constraints.Constrain(desired))
		return
	}

	constrained := constraints.Constrain(desired)

	// Tighten only the explicit dimensions; the child keeps its freedom on
	// the rest.
	childConstraints := constraints
	if s.Width > 0 {
		childConstraints.MinWidth = constrained.Width
		childConstraints.MaxWidth = constrained.Width
	}
	if s.Height > 0 {
		childConstraints.MinHeight = constrained.Height
		childConstraints.MaxHeight = constrained.Height
	}

	s.Child.Layout(childConstraints)
	s.Child.SetOffset(geometry.Offset{})

	finalSize := s.Child.Size()
	if s.Width > 0 {
		finalSize.Width = constrained.Width
	}
	if s.Height > 0 {
		finalSize.Height = constrained.Height
	}
	s.SetSize(constraints.Constrain(finalSize))
}
