package layout

import (
	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/style"
)

// Decorated applies a visual style to its child. Padding and border width
// participate in layout; colors, corner radius, and opacity are carried on
// the box for the host to draw.
//
// Resolve the style against a theme before layout when theme defaults
// should apply:
//
//	s := style.Get("card").Style.Resolve(th)
//	layout.NewDecorated(s, child)
type Decorated struct {
	BoxBase
	Style style.Style
	Child Box
}

// NewDecorated creates a Decorated box around child.
func NewDecorated(s style.Style, child Box) *Decorated {
	d := &Decorated{Style: s, Child: child}
	d.SetSelf(d)
	return d
}

func (d *Decorated) VisitChildren(visitor func(Box)) {
	if d.Child != nil {
		visitor(d.Child)
	}
}

// ContentInsets returns the layout space the decoration consumes on each
// side: the style's padding plus the border width all around.
func (d *Decorated) ContentInsets() geometry.EdgeInsets {
	insets := d.Style.Padding
	if d.Style.BorderWidth > 0 {
		insets = insets.Add(geometry.EdgeInsetsAll(d.Style.BorderWidth))
	}
	return insets
}

func (d *Decorated) PerformLayout() {
	constraints := d.Constraints()
	insets := d.ContentInsets()

	if d.Child == nil {
		d.SetSize(constraints.Constrain(geometry.Size{
			Width:  insets.Horizontal(),
			Height: insets.Vertical(),
		}))
		return
	}

	d.Child.Layout(constraints.Deflate(insets))
	childSize := d.Child.Size()
	d.SetSize(constraints.Constrain(geometry.Size{
		Width:  childSize.Width + insets.Horizontal(),
		Height: childSize.Height + insets.Vertical(),
	}))
	d.Child.SetOffset(geometry.Offset{X: insets.Left, Y: insets.Top})
}
