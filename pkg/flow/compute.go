package flow

import (
	"math"

	"github.com/go-drift/loom/pkg/geometry"
)

// Wrap places items as a horizontal wrapped row: left-to-right in input
// order, wrapping to a new row whenever the next item would not fit in
// maxWidth, with the given gap both between items and between rows. Items
// taller than their row neighbors define the row height; shorter items are
// centered vertically within the row.
//
// An item wider than maxWidth is placed alone on its own row at the start
// edge and overflows; it is never shrunk or clipped. Negative inputs are
// treated as zero. The returned size spans maxWidth (when finite) by the
// packed height of all rows.
func Wrap(items []Item, maxWidth, spacing float64) Result {
	return Compute(items, Uniform(maxWidth, spacing))
}

// Compute runs the placement pass described by opts over items.
//
// The pass has two phases. The first walks items in order and groups them
// into runs: a run closes when adding the next item (plus spacing) would
// exceed MaxMain. A run always accepts at least one item, so an oversized
// item occupies a run alone rather than being dropped. The second phase
// walks the runs and assigns each item an offset from the container origin,
// applying the configured alignments.
//
// Compute never mutates items. NaN extents are treated as zero.
func Compute(items []Item, opts Options) Result {
	maxMain := sanitizeExtent(opts.MaxMain)
	spacing := sanitizeGap(opts.Spacing)
	runSpacing := sanitizeGap(opts.RunSpacing)

	sizes := make([]geometry.Size, len(items))
	for i, item := range items {
		sizes[i] = geometry.Size{
			Width:  sanitizeGap(item.Size.Width),
			Height: sanitizeGap(item.Size.Height),
		}
	}

	runs := packRuns(sizes, opts.Axis, maxMain, spacing)

	totalCross := 0.0
	longestRun := 0.0
	for i, run := range runs {
		totalCross += run.CrossExtent
		if i > 0 {
			totalCross += runSpacing
		}
		longestRun = math.Max(longestRun, run.MainExtent)
	}

	mainSize := maxMain
	if math.IsInf(mainSize, 1) {
		mainSize = longestRun
	}
	crossSize := totalCross
	if opts.MaxCross > crossSize {
		crossSize = opts.MaxCross
	}

	placements := make([]Placement, len(items))
	freeCross := math.Max(0, crossSize-totalCross)
	runGap, crossCursor := distribute(opts.RunAlignment, freeCross, len(runs))

	for ri, run := range runs {
		freeMain := math.Max(0, mainSize-run.MainExtent)
		itemGap, mainCursor := distribute(mainAlignment(opts.Alignment), freeMain, run.Count)

		for i := run.Start; i < run.Start+run.Count; i++ {
			size := sizes[i]
			main, cross := axisExtents(opts.Axis, size)
			crossOffset := alignCross(opts.CrossAlignment, run.CrossExtent, cross)

			placements[i] = Placement{
				Key:    items[i].Key,
				Offset: axisOffset(opts.Axis, mainCursor, crossCursor+crossOffset),
				Size:   size,
				Run:    ri,
			}
			mainCursor += main + itemGap
			if i < run.Start+run.Count-1 {
				mainCursor += spacing
			}
		}
		crossCursor += run.CrossExtent + runGap
		if ri < len(runs)-1 {
			crossCursor += runSpacing
		}
	}

	return Result{
		Placements: placements,
		Runs:       runs,
		Size:       axisSize(opts.Axis, mainSize, crossSize),
	}
}

// packRuns is the grouping phase: it decides run boundaries and extents
// without assigning positions.
func packRuns(sizes []geometry.Size, axis Axis, maxMain, spacing float64) []Run {
	var runs []Run
	var current Run
	open := false

	for i, size := range sizes {
		main, cross := axisExtents(axis, size)
		if open && current.MainExtent+spacing+main > maxMain {
			runs = append(runs, current)
			open = false
		}
		if !open {
			current = Run{Start: i, Count: 1, MainExtent: main, CrossExtent: cross}
			open = true
			continue
		}
		current.Count++
		current.MainExtent += spacing + main
		current.CrossExtent = math.Max(current.CrossExtent, cross)
	}
	if open {
		runs = append(runs, current)
	}
	return runs
}

// distribute converts free space into a (gap, leading offset) pair for the
// given number of entries, per the space-distribution alignments. Alignments
// are passed as RunAlignment; mainAlignment converts the item-axis enum.
func distribute(alignment RunAlignment, freeSpace float64, count int) (gap, leading float64) {
	if count <= 0 {
		return 0, 0
	}
	switch alignment {
	case RunEnd:
		return 0, freeSpace
	case RunCenter:
		return 0, freeSpace / 2
	case RunSpaceBetween:
		if count > 1 {
			return freeSpace / float64(count-1), 0
		}
		return 0, 0
	case RunSpaceAround:
		gap = freeSpace / float64(count)
		return gap, gap / 2
	case RunSpaceEvenly:
		gap = freeSpace / float64(count+1)
		return gap, gap
	default:
		return 0, 0
	}
}

// mainAlignment maps the item-axis Alignment onto the shared distribution
// enum. The two enums deliberately mirror each other.
func mainAlignment(a Alignment) RunAlignment {
	switch a {
	case AlignEnd:
		return RunEnd
	case AlignCenter:
		return RunCenter
	case AlignSpaceBetween:
		return RunSpaceBetween
	case AlignSpaceAround:
		return RunSpaceAround
	case AlignSpaceEvenly:
		return RunSpaceEvenly
	default:
		return RunStart
	}
}

// alignCross positions a single item across its run.
func alignCross(alignment CrossAlignment, runCross, itemCross float64) float64 {
	free := math.Max(0, runCross-itemCross)
	switch alignment {
	case CrossEnd:
		return free
	case CrossCenter:
		return free / 2
	default:
		return 0
	}
}

func axisExtents(axis Axis, size geometry.Size) (main, cross float64) {
	if axis == Vertical {
		return size.Height, size.Width
	}
	return size.Width, size.Height
}

func axisOffset(axis Axis, main, cross float64) geometry.Offset {
	if axis == Vertical {
		return geometry.Offset{X: cross, Y: main}
	}
	return geometry.Offset{X: main, Y: cross}
}

func axisSize(axis Axis, main, cross float64) geometry.Size {
	if axis == Vertical {
		return geometry.Size{Width: cross, Height: main}
	}
	return geometry.Size{Width: main, Height: cross}
}

// sanitizeExtent clamps an available extent: negatives and NaN become zero,
// +Inf is preserved (wrapping disabled).
func sanitizeExtent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// sanitizeGap clamps a size or gap to a finite non-negative value.
func sanitizeGap(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return 0
	}
	return v
}
