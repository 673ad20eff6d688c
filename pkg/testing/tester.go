package testing

import (
	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height of the test surface.
	DefaultTestHeight = 600
)

// LayoutTester lays out box trees against a fixed surface and exposes the
// result to finders and snapshots. It drives the same pass a real host
// would: tight constraints at the surface size, offsets assigned by
// parents, the root pinned to the origin.
type LayoutTester struct {
	root layout.Box
	size geometry.Size
}

// NewLayoutTester creates a tester with the default surface size.
func NewLayoutTester() *LayoutTester {
	return &LayoutTester{
		size: geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// SetSize sets the logical surface size. Call before Layout.
func (lt *LayoutTester) SetSize(size geometry.Size) {
	lt.size = size
}

// Size returns the logical surface size.
func (lt *LayoutTester) Size() geometry.Size {
	return lt.size
}

// Layout mounts a box tree and lays it out at the surface size.
func (lt *LayoutTester) Layout(root layout.Box) {
	lt.root = root
	lt.Relayout()
}

// Relayout re-runs the layout pass on the current tree. Use after mutating
// boxes in place.
func (lt *LayoutTester) Relayout() {
	if lt.root == nil {
		return
	}
	lt.root.Layout(layout.Tight(lt.size))
	lt.root.SetOffset(geometry.Offset{})
}

// Root returns the current root box, or nil before the first Layout.
func (lt *LayoutTester) Root() layout.Box {
	return lt.root
}

// Find evaluates a finder against the current tree.
func (lt *LayoutTester) Find(finder Finder) FinderResult {
	if lt.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		boxes:  finder.Evaluate(lt.root),
		finder: finder,
	}
}

// OffsetOf returns the accumulated offset of box from the root. The second
// result is false when box is not in the current tree.
func (lt *LayoutTester) OffsetOf(box layout.Box) (geometry.Offset, bool) {
	if lt.root == nil {
		return geometry.Offset{}, false
	}
	var at geometry.Offset
	found := false
	layout.Walk(lt.root, func(b layout.Box, origin geometry.Offset) bool {
		if b == box {
			at = origin
			found = true
			return false
		}
		return true
	})
	return at, found
}
