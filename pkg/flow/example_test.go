package flow_test

import (
	"fmt"

	"github.com/go-drift/loom/pkg/flow"
	"github.com/go-drift/loom/pkg/geometry"
)

// This example shows how items wrap into rows within a fixed width.
func ExampleWrap() {
	items := []flow.Item{
		{Key: "a", Size: geometry.Size{Width: 50, Height: 20}},
		{Key: "b", Size: geometry.Size{Width: 60, Height: 20}},
		{Key: "c", Size: geometry.Size{Width: 40, Height: 20}},
		{Key: "d", Size: geometry.Size{Width: 90, Height: 20}},
		{Key: "e", Size: geometry.Size{Width: 30, Height: 20}},
	}

	result := flow.Wrap(items, 150, 10)
	for _, p := range result.Placements {
		fmt.Printf("%s: run %d at (%g, %g)\n", p.Key, p.Run, p.Offset.X, p.Offset.Y)
	}
	fmt.Printf("container: %gx%g\n", result.Size.Width, result.Size.Height)

	// Output:
	// a: run 0 at (0, 0)
	// b: run 0 at (60, 0)
	// c: run 1 at (0, 30)
	// d: run 1 at (50, 30)
	// e: run 2 at (0, 60)
	// container: 150x80
}

// This example shows a vertical flow filling columns top to bottom.
func ExampleCompute() {
	items := []flow.Item{
		{Key: "a", Size: geometry.Size{Width: 25, Height: 40}},
		{Key: "b", Size: geometry.Size{Width: 25, Height: 40}},
		{Key: "c", Size: geometry.Size{Width: 25, Height: 40}},
	}

	result := flow.Compute(items, flow.Options{
		MaxMain:    100,
		Spacing:    10,
		RunSpacing: 10,
		Axis:       flow.Vertical,
	})
	for _, p := range result.Placements {
		fmt.Printf("%s: (%g, %g)\n", p.Key, p.Offset.X, p.Offset.Y)
	}
	fmt.Printf("container: %gx%g\n", result.Size.Width, result.Size.Height)

	// Output:
	// a: (0, 0)
	// b: (0, 50)
	// c: (35, 0)
	// container: 60x100
}
