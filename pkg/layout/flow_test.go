package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-drift/loom/pkg/flow"
	"github.com/go-drift/loom/pkg/geometry"
)

func fixedRow(widths []float64, height float64) []Box {
	boxes := make([]Box, len(widths))
	for i, w := range widths {
		boxes[i] = newFixedBox(w, height)
	}
	return boxes
}

func TestFlowWrapsChildren(t *testing.T) {
	children := fixedRow([]float64{50, 60, 40, 90, 30}, 20)
	f := FlowOf(10, 10, children...)
	f.Layout(Loose(geometry.Size{Width: 150, Height: 500}))

	if f.Size() != (geometry.Size{Width: 150, Height: 80}) {
		t.Fatalf("Size = %v, want {150 80}", f.Size())
	}

	wantOffsets := []geometry.Offset{
		{X: 0, Y: 0},
		{X: 60, Y: 0},
		{X: 0, Y: 30},
		{X: 50, Y: 30},
		{X: 0, Y: 60},
	}
	for i, child := range children {
		if child.Offset() != wantOffsets[i] {
			t.Errorf("child %d offset = %v, want %v", i, child.Offset(), wantOffsets[i])
		}
	}
}

func TestFlowChildrenMeasuredLoose(t *testing.T) {
	child := newFixedBox(50, 20)
	f := FlowOf(0, 0, child)
	f.Layout(Tight(geometry.Size{Width: 100, Height: 50}))

	cc := child.Constraints()
	if cc.MinWidth != 0 || cc.MinHeight != 0 {
		t.Errorf("child minimums = %v x %v, want loose (zero)", cc.MinWidth, cc.MinHeight)
	}
	if cc.MaxWidth != 100 || cc.MaxHeight != 50 {
		t.Errorf("child maximums = %v x %v, want 100x50", cc.MaxWidth, cc.MaxHeight)
	}
}

func TestFlowEmpty(t *testing.T) {
	f := FlowOf(8, 8)
	f.Layout(Loose(geometry.Size{Width: 100, Height: 100}))
	if f.Size() != (geometry.Size{}) {
		t.Errorf("Size = %v, want zero", f.Size())
	}

	f = FlowOf(8, 8)
	f.Layout(Tight(geometry.Size{Width: 40, Height: 40}))
	if f.Size() != (geometry.Size{Width: 40, Height: 40}) {
		t.Errorf("Size under tight constraints = %v, want {40 40}", f.Size())
	}
}

func TestFlowPanicsWhenMainAxisUnbounded(t *testing.T) {
	tests := []struct {
		name        string
		axis        flow.Axis
		constraints Constraints
		wantPhrase  string
	}{
		{
			name:        "horizontal without width bound",
			axis:        flow.Horizontal,
			constraints: Unbounded(),
			wantPhrase:  "unbounded width",
		},
		{
			name:        "vertical without height bound",
			axis:        flow.Vertical,
			constraints: Constraints{MaxWidth: 100, MaxHeight: Unconstrained},
			wantPhrase:  "unbounded height",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected a panic for an unbounded main axis")
				}
				msg := fmt.Sprint(r)
				if !strings.Contains(msg, tt.wantPhrase) {
					t.Errorf("panic message %q does not mention %q", msg, tt.wantPhrase)
				}
				if !strings.Contains(msg, "Solutions:") {
					t.Errorf("panic message %q does not offer solutions", msg)
				}
			}()

			f := NewFlow(FlowOptions{Axis: tt.axis}, newFixedBox(10, 10))
			f.Layout(tt.constraints)
		})
	}
}

func TestFlowUnboundedCrossAxisAllowed(t *testing.T) {
	children := fixedRow([]float64{50, 60, 40}, 20)
	f := FlowOf(10, 10, children...)
	f.Layout(Constraints{MaxWidth: 150, MaxHeight: Unconstrained})

	if f.Size() != (geometry.Size{Width: 150, Height: 50}) {
		t.Errorf("Size = %v, want {150 50}", f.Size())
	}
}

func TestFlowVertical(t *testing.T) {
	children := []Box{
		newFixedBox(20, 50),
		newFixedBox(20, 60),
		newFixedBox(20, 40),
	}
	f := NewFlow(FlowOptions{
		Axis:       flow.Vertical,
		Spacing:    10,
		RunSpacing: 5,
	}, children...)
	f.Layout(Loose(geometry.Size{Width: 500, Height: 120}))

	// Runs fill downward and stack to the right: the first two children
	// fit the 120 height exactly, the third starts a new column.
	if f.Size() != (geometry.Size{Width: 45, Height: 120}) {
		t.Fatalf("Size = %v, want {45 120}", f.Size())
	}
	wantOffsets := []geometry.Offset{
		{X: 0, Y: 0},
		{X: 0, Y: 60},
		{X: 25, Y: 0},
	}
	for i, child := range children {
		if child.Offset() != wantOffsets[i] {
			t.Errorf("child %d offset = %v, want %v", i, child.Offset(), wantOffsets[i])
		}
	}
}

func TestFlowCrossMinDistributesRuns(t *testing.T) {
	children := fixedRow([]float64{50, 60, 40, 90, 30}, 20)
	f := NewFlow(FlowOptions{
		Spacing:      10,
		RunSpacing:   10,
		RunAlignment: flow.RunCenter,
	}, children...)
	f.Layout(Tight(geometry.Size{Width: 150, Height: 120}))

	if f.Size() != (geometry.Size{Width: 150, Height: 120}) {
		t.Fatalf("Size = %v, want {150 120}", f.Size())
	}
	// The packed 80 of runs centers in the 120 minimum, shifting every
	// run down by 20.
	wantY := []float64{20, 20, 50, 50, 80}
	for i, child := range children {
		if got := child.Offset().Y; got != wantY[i] {
			t.Errorf("child %d Y = %v, want %v", i, got, wantY[i])
		}
	}
}

func TestFlowOfCentersWithinRun(t *testing.T) {
	short := newFixedBox(50, 20)
	tall := newFixedBox(40, 40)
	f := FlowOf(10, 10, short, tall)
	f.Layout(Loose(geometry.Size{Width: 150, Height: 200}))

	if f.Size() != (geometry.Size{Width: 150, Height: 40}) {
		t.Fatalf("Size = %v, want {150 40}", f.Size())
	}
	if short.Offset() != (geometry.Offset{X: 0, Y: 10}) {
		t.Errorf("short child offset = %v, want {0 10} (centered in the run)", short.Offset())
	}
	if tall.Offset() != (geometry.Offset{X: 60, Y: 0}) {
		t.Errorf("tall child offset = %v, want {60 0}", tall.Offset())
	}
}

func TestFlowMainAlignment(t *testing.T) {
	a := newFixedBox(50, 20)
	b := newFixedBox(40, 20)
	f := NewFlow(FlowOptions{Spacing: 10, Alignment: flow.AlignEnd}, a, b)
	f.Layout(Loose(geometry.Size{Width: 150, Height: 100}))

	if a.Offset() != (geometry.Offset{X: 50, Y: 0}) {
		t.Errorf("first child offset = %v, want {50 0}", a.Offset())
	}
	if b.Offset() != (geometry.Offset{X: 110, Y: 0}) {
		t.Errorf("second child offset = %v, want {110 0}", b.Offset())
	}
}
