// Package flow implements greedy run-packing placement for sequences of
// pre-measured items: items are placed along a main axis in order, wrapping
// into a new run whenever the next item would exceed the available extent.
//
// The engine is pure and total. It never re-measures, reorders, clips, or
// shrinks items; it consumes sizes measured elsewhere (a text layout pass,
// [font.Registry] measurement, or any host toolkit) and produces offsets and
// the packed container size. Calling [Compute] twice with identical inputs
// yields identical results, which makes it safe inside layout passes that
// re-run on every frame or state change.
//
// Use [Wrap] for the common case of a horizontal wrapped row with uniform
// spacing:
//
//	result := flow.Wrap(items, 320, 8)
//	for _, p := range result.Placements {
//	    place(p.Key, p.Offset)
//	}
//	containerHeight := result.Size.Height
//
// For vertical wrapping, per-run alignment, or distinct run spacing, fill an
// [Options] struct and call [Compute]. The container counterpart that also
// measures children lives in [github.com/go-drift/loom/pkg/layout.Flow].
package flow

import (
	"fmt"

	"github.com/go-drift/loom/pkg/geometry"
)

// Axis selects the main layout direction.
//
// Horizontal is the zero value: items flow left-to-right and runs stack
// top-to-bottom. Vertical flows items top-to-bottom and stacks runs
// left-to-right.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Alignment controls how items are positioned along the main axis within
// each run when the run does not fill the available extent.
type Alignment int

const (
	// AlignStart places items at the start of each run.
	AlignStart Alignment = iota
	// AlignEnd places items at the end of each run.
	AlignEnd
	// AlignCenter centers the items of each run.
	AlignCenter
	// AlignSpaceBetween distributes free space evenly between items.
	// No space before the first or after the last item in a run.
	AlignSpaceBetween
	// AlignSpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end of each run.
	AlignSpaceAround
	// AlignSpaceEvenly distributes free space evenly, including equal
	// space before the first and after the last item in each run.
	AlignSpaceEvenly
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignSpaceBetween:
		return "space_between"
	case AlignSpaceAround:
		return "space_around"
	case AlignSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// CrossAlignment controls how an item is positioned across the run when it is
// shorter than the run's tallest item.
type CrossAlignment int

const (
	// CrossStart aligns items to the start edge of their run.
	CrossStart CrossAlignment = iota
	// CrossEnd aligns items to the end edge of their run.
	CrossEnd
	// CrossCenter centers items within their run.
	CrossCenter
)

// String returns a human-readable representation of the cross alignment.
func (a CrossAlignment) String() string {
	switch a {
	case CrossStart:
		return "start"
	case CrossEnd:
		return "end"
	case CrossCenter:
		return "center"
	default:
		return fmt.Sprintf("CrossAlignment(%d)", int(a))
	}
}

// RunAlignment controls how whole runs are distributed across the container
// when Options.MaxCross leaves free space beyond the packed extent.
type RunAlignment int

const (
	// RunStart packs runs at the start of the cross axis.
	RunStart RunAlignment = iota
	// RunEnd packs runs at the end of the cross axis.
	RunEnd
	// RunCenter centers the block of runs.
	RunCenter
	// RunSpaceBetween distributes free space evenly between runs.
	RunSpaceBetween
	// RunSpaceAround distributes free space evenly, with half-sized spaces
	// at the start and end.
	RunSpaceAround
	// RunSpaceEvenly distributes free space evenly, including equal space
	// before the first and after the last run.
	RunSpaceEvenly
)

// String returns a human-readable representation of the run alignment.
func (a RunAlignment) String() string {
	switch a {
	case RunStart:
		return "start"
	case RunEnd:
		return "end"
	case RunCenter:
		return "center"
	case RunSpaceBetween:
		return "space_between"
	case RunSpaceAround:
		return "space_around"
	case RunSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("RunAlignment(%d)", int(a))
	}
}

// Item is one pre-measured entry in a placement pass.
//
// Key is opaque to the engine and carried through to the matching
// [Placement] unchanged, so callers can route offsets back to whatever the
// item represents. Keys are typically stable comparable identifiers (indices,
// IDs); the engine itself never compares them.
type Item struct {
	Key  any
	Size geometry.Size
}

// Options configures a placement pass.
//
// The zero value wraps horizontally with no spacing and an unbounded main
// axis (everything ends up in a single run); real callers set MaxMain.
type Options struct {
	// MaxMain is the available extent along the main axis (the available
	// width for horizontal flows). Items wrap when they would exceed it.
	// Zero or negative means no room: every item overflows into its own
	// run. +Inf disables wrapping.
	MaxMain float64

	// Spacing is the gap between adjacent items within a run. Applied only
	// between items, never before the first or after the last.
	Spacing float64

	// RunSpacing is the gap between adjacent runs. Applied only between
	// runs.
	RunSpacing float64

	// Axis selects the main direction. Horizontal is the zero value.
	Axis Axis

	// Alignment positions items along the main axis within their run.
	Alignment Alignment

	// CrossAlignment positions each item across its run.
	CrossAlignment CrossAlignment

	// RunAlignment distributes runs when MaxCross exceeds the packed
	// cross extent. Ignored when MaxCross is zero (the container hugs its
	// content).
	RunAlignment RunAlignment

	// MaxCross optionally fixes the container's cross extent. Zero means
	// size-to-content; values below the packed extent are ignored.
	MaxCross float64
}

// Uniform returns Options for a horizontal flow with the same gap between
// items and between runs, matching the classic wrapped-row container: items
// read left-to-right, wrap when out of width, and center vertically within
// their row.
func Uniform(maxWidth, spacing float64) Options {
	return Options{
		MaxMain:        maxWidth,
		Spacing:        spacing,
		RunSpacing:     spacing,
		CrossAlignment: CrossCenter,
	}
}

// Run describes one packed run: the half-open item index range [Start,
// Start+Count) and the extents the run occupies.
type Run struct {
	Start       int
	Count       int
	MainExtent  float64
	CrossExtent float64
}

// Placement is the computed position of a single item. Offset is the
// top-left corner of the item's box relative to the container origin.
type Placement struct {
	Key    any
	Offset geometry.Offset
	Size   geometry.Size
	Run    int
}

// Result is the outcome of a placement pass. Placements is index-aligned
// with the input items and ordered identically.
type Result struct {
	Placements []Placement
	Runs       []Run
	Size       geometry.Size
}
