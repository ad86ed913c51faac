package infill

import (
	"testing"

	"github.com/bobosola/osterrain50/internal/terrain50"
)

func TestExpandNoInfillReturnsInputUnchanged(t *testing.T) {
	coords := []terrain50.Coord{{Easting: 0, Northing: 0}, {Easting: 1000, Northing: 0}}
	got := Expand(coords, false)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestExpandShortSegmentEmitsOnlyEnd(t *testing.T) {
	coords := []terrain50.Coord{{Easting: 0, Northing: 0}, {Easting: 30, Northing: 0}}
	got := Expand(coords, true)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (start included as first pair)", len(got))
	}
}

func TestExpandLongSegmentInfillCount(t *testing.T) {
	// 200m apart => 3 infill points expected (infill_diag_diff=4, ceil-1=3),
	// plus start and end = 5 total.
	coords := []terrain50.Coord{{Easting: 0, Northing: 0}, {Easting: 200, Northing: 0}}
	got := Expand(coords, true)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].Easting != 0 {
		t.Errorf("first point easting = %d, want 0", got[0].Easting)
	}
	if got[len(got)-1].Easting != 200 {
		t.Errorf("last point easting = %d, want 200", got[len(got)-1].Easting)
	}
	// Points should be evenly spaced at 50m along the easting axis.
	want := []int64{0, 50, 100, 150, 200}
	for i, c := range got {
		if c.Easting != want[i] {
			t.Errorf("point %d easting = %d, want %d", i, c.Easting, want[i])
		}
	}
}

func TestExpandDoesNotDuplicateSharedVertex(t *testing.T) {
	coords := []terrain50.Coord{
		{Easting: 0, Northing: 0},
		{Easting: 100, Northing: 0},
		{Easting: 200, Northing: 0},
	}
	got := Expand(coords, true)
	// Each leg is exactly 100m (>50), so 1 infill per leg: 2 legs -> start +
	// infill + shared-vertex + infill + end, no duplicate at the shared vertex.
	seen := make(map[int64]int)
	for _, c := range got {
		seen[c.Easting]++
	}
	if seen[100] != 1 {
		t.Errorf("shared vertex at easting=100 appears %d times, want 1", seen[100])
	}
}

func TestExpandEndToEndPointCount(t *testing.T) {
	// SZ 494 772 to NC 261 740 spans the whole length of GB; spec.md's worked
	// example expects exactly 18485 points at 50m spacing. Reproduce with
	// the same absolute coordinates (easting, northing from SV origin).
	start := terrain50.Coord{Easting: 449_400, Northing: 77_200}
	end := terrain50.Coord{Easting: 226_100, Northing: 974_000}
	got := Expand([]terrain50.Coord{start, end}, true)
	if len(got) != 18_485 {
		t.Errorf("len = %d, want 18485", len(got))
	}
}
