package testing

import (
	"testing"

	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/layout"
)

func TestLayoutTesterLaysOutTree(t *testing.T) {
	tester := NewLayoutTester()
	tester.SetSize(geometry.Size{Width: 200, Height: 100})

	inner := layout.NewSizedBox(50, 20, nil)
	root := layout.NewCenter(inner)
	tester.Layout(root)

	if root.Size() != (geometry.Size{Width: 200, Height: 100}) {
		t.Errorf("root size = %v, want the surface size {200 100}", root.Size())
	}
	if inner.Offset() != (geometry.Offset{X: 75, Y: 40}) {
		t.Errorf("inner offset = %v, want centered {75 40}", inner.Offset())
	}
	if tester.Root() != root {
		t.Error("Root() does not return the mounted tree")
	}
}

func TestLayoutTesterDefaultSize(t *testing.T) {
	tester := NewLayoutTester()
	if tester.Size() != (geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}) {
		t.Errorf("Size = %v, want the default %dx%d", tester.Size(), DefaultTestWidth, DefaultTestHeight)
	}
}

func TestLayoutTesterRelayout(t *testing.T) {
	tester := NewLayoutTester()
	tester.SetSize(geometry.Size{Width: 200, Height: 100})

	inner := layout.NewSizedBox(50, 20, nil)
	tester.Layout(layout.NewCenter(inner))

	inner.Width = 100
	tester.Relayout()

	if inner.Size() != (geometry.Size{Width: 100, Height: 20}) {
		t.Errorf("inner size = %v, want {100 20} after relayout", inner.Size())
	}
	if inner.Offset() != (geometry.Offset{X: 50, Y: 40}) {
		t.Errorf("inner offset = %v, want {50 40} after relayout", inner.Offset())
	}
}

func TestOffsetOf(t *testing.T) {
	tester := NewLayoutTester()
	tester.SetSize(geometry.Size{Width: 200, Height: 200})

	leaf := layout.NewSizedBox(10, 10, nil)
	inner := layout.NewPadding(geometry.EdgeInsetsAll(6), leaf)
	tester.Layout(layout.NewPadding(geometry.EdgeInsetsAll(20), inner))

	got, ok := tester.OffsetOf(leaf)
	if !ok {
		t.Fatal("leaf not found in tree")
	}
	if got != (geometry.Offset{X: 26, Y: 26}) {
		t.Errorf("OffsetOf(leaf) = %v, want {26 26}", got)
	}

	outside := layout.NewSizedBox(1, 1, nil)
	if _, ok := tester.OffsetOf(outside); ok {
		t.Error("OffsetOf reported a box that is not in the tree")
	}
}

func TestFindBeforeLayout(t *testing.T) {
	tester := NewLayoutTester()
	if tester.Find(ByType[*layout.SizedBox]()).Exists() {
		t.Error("finder matched on an empty tester")
	}
}
