package layout

import (
	"fmt"

	"github.com/go-drift/loom/pkg/flow"
	"github.com/go-drift/loom/pkg/geometry"
)

// Flow lays out children in runs, wrapping to the next run when the main
// axis runs out of space.
//
// Children are measured with loose constraints in order, packed greedily
// into runs, and positioned by the [flow] engine. Flow fills its main axis
// and sizes to its runs on the cross axis (raised to the cross minimum when
// the parent imposes one, with RunAlignment distributing the slack).
//
// Flow requires a bounded main axis (width for horizontal, height for
// vertical); it panics with guidance otherwise. The cross axis may be
// unbounded.
type Flow struct {
	BoxBase
	Children       []Box
	Axis           flow.Axis
	Alignment      flow.Alignment
	CrossAlignment flow.CrossAlignment
	RunAlignment   flow.RunAlignment
	Spacing        float64
	RunSpacing     float64
}

// FlowOptions configures a Flow container.
type FlowOptions struct {
	Axis           flow.Axis
	Alignment      flow.Alignment
	CrossAlignment flow.CrossAlignment
	RunAlignment   flow.RunAlignment
	Spacing        float64
	RunSpacing     float64
}

// NewFlow creates a Flow with the given options and children.
func NewFlow(opts FlowOptions, children ...Box) *Flow {
	f := &Flow{
		Children:       children,
		Axis:           opts.Axis,
		Alignment:      opts.Alignment,
		CrossAlignment: opts.CrossAlignment,
		RunAlignment:   opts.RunAlignment,
		Spacing:        opts.Spacing,
		RunSpacing:     opts.RunSpacing,
	}
	f.SetSelf(f)
	return f
}

// FlowOf creates a horizontal Flow with the given gaps between items and
// between runs, centering items within their run. This matches the common
// wrapped-row case and the behavior of [flow.Wrap].
func FlowOf(spacing, runSpacing float64, children ...Box) *Flow {
	return NewFlow(FlowOptions{
		Spacing:        spacing,
		RunSpacing:     runSpacing,
		CrossAlignment: flow.CrossCenter,
	}, children...)
}

func (f *Flow) VisitChildren(visitor func(Box)) {
	for _, child := range f.Children {
		if child != nil {
			visitor(child)
		}
	}
}

func (f *Flow) PerformLayout() {
	constraints := f.Constraints()

	bounded := constraints.HasBoundedWidth()
	if f.Axis == flow.Vertical {
		bounded = constraints.HasBoundedHeight()
	}
	if !bounded {
		axisName := "width"
		direction := "horizontal"
		if f.Axis == flow.Vertical {
			axisName = "height"
			direction = "vertical"
		}
		panic(fmt.Sprintf(
			"Flow (%s) used with unbounded %s.\n\n"+
				"Flow needs a finite main axis to decide when to wrap into a new run.\n\n"+
				"Solutions:\n"+
				"- Ensure the parent provides bounded %s constraints\n"+
				"- Wrap the Flow in a SizedBox with a fixed %s",
			direction, axisName,
			axisName,
			axisName,
		))
	}

	if len(f.Children) == 0 {
		f.SetSize(constraints.Constrain(geometry.Size{}))
		return
	}

	maxSize := geometry.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	childConstraints := Loose(maxSize)
	items := make([]flow.Item, len(f.Children))
	for i, child := range f.Children {
		child.Layout(childConstraints)
		items[i] = flow.Item{Key: i, Size: child.Size()}
	}

	result := flow.Compute(items, flow.Options{
		MaxMain:        f.mainMax(constraints),
		Spacing:        f.Spacing,
		RunSpacing:     f.RunSpacing,
		Axis:           f.Axis,
		Alignment:      f.Alignment,
		CrossAlignment: f.CrossAlignment,
		RunAlignment:   f.RunAlignment,
		MaxCross:       f.crossMin(constraints),
	})

	f.SetSize(constraints.Constrain(result.Size))
	for i, p := range result.Placements {
		f.Children[i].SetOffset(p.Offset)
	}
}

func (f *Flow) mainMax(c Constraints) float64 {
	if f.Axis == flow.Vertical {
		return c.MaxHeight
	}
	return c.MaxWidth
}

func (f *Flow) crossMin(c Constraints) float64 {
	if f.Axis == flow.Vertical {
		return c.MinWidth
	}
	return c.MinHeight
}
