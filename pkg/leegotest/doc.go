// Package leegotest provides helpers for testing brick compositions.
//
// # Quick Start
//
// Create a tester, pump a brick, and make assertions:
//
//	func TestHeader(t *testing.T) {
//	    tester := leegotest.NewTester(t)
//	    tester.Pump(header)
//
//	    title := tester.Find(leegotest.ByOutlet("titleLabel")).Native().(*widgets.Label)
//	    if title.Text != "Hello" {
//	        t.Errorf("title = %q", title.Text)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare view tree snapshots:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/header.snapshot.json")
//
// Update snapshots with:
//
//	LEEGO_UPDATE_SNAPSHOTS=1 go test ./...
package leegotest
