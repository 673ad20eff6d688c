package layout

import "github.com/go-drift/loom/pkg/geometry"

// Padding adds empty space around its child.
//
// The child is constrained to the remaining space after the insets are
// reserved. Without a child, Padding becomes an empty box of the inset
// size.
//
// Use the [geometry.EdgeInsets] helpers to build inset values:
//
//	layout.NewPadding(geometry.EdgeInsetsAll(16), child)
//	layout.NewPadding(geometry.EdgeInsetsSymmetric(24, 12), child)
type Padding struct {
	BoxBase
	Insets geometry.EdgeInsets
	Child  Box
}

// NewPadding creates a Padding around child.
func NewPadding(insets geometry.EdgeInsets, child Box) *Padding {
	p := &Padding{Insets: insets, Child: child}
	p.SetSelf(p)
	return p
}

func (p *Padding) VisitChildren(visitor func(Box)) {
	if p.Child != nil {
		visitor(p.Child)
	}
}

func (p *Padding) PerformLayout() {
	constraints := p.Constraints()
	if p.Child == nil {
		p.SetSize(constraints.Constrain(geometry.Size{
			Width:  p.Insets.Horizontal(),
			Height: p.Insets.Vertical(),
		}))
		return
	}

	p.Child.Layout(constraints.Deflate(p.Insets))
	childSize := p.Child.Size()
	p.SetSize(constraints.Constrain(geometry.Size{
		Width:  childSize.Width + p.Insets.Horizontal(),
		Height: childSize.Height + p.Insets.Vertical(),
	}))
	p.Child.SetOffset(geometry.Offset{X: p.Insets.Left, Y: p.Insets.Top})
}
