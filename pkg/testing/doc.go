// Package testing provides a layout testing harness for loom.
//
// # Quick Start
//
// Create a tester, lay out a box tree, and make assertions:
//
//	func TestMyLayout(t *testing.T) {
//	    tester := loomtest.NewLayoutTester()
//	    tester.Layout(layout.FlowOf(8, 8,
//	        layout.NewLabel("alpha", paint.TextStyle{}, nil),
//	        layout.NewLabel("beta", paint.TextStyle{}, nil),
//	    ))
//
//	    // Find boxes
//	    label := tester.Find(loomtest.ByText("alpha")).Box()
//
//	    // Assert placement
//	    if label.Offset() != (geometry.Offset{}) {
//	        t.Errorf("alpha moved: %v", label.Offset())
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare layout tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_layout.snapshot.json")
//
// Update snapshots with:
//
//	LOOM_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import loomtest "github.com/go-drift/loom/pkg/testing"
package testing
