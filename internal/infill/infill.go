// Package infill synthesizes intermediate coordinates along a polyline so
// that every ~50 m lattice point between surveyed locations gets its own
// elevation lookup, not just the vertices the caller supplied.
//
// Grounded on original_source's get_infills cumulative-float stepping.
package infill

import (
	"math"

	"github.com/bobosola/osterrain50/internal/terrain50"
)

// ElevationDistance is the target spacing, in metres, between consecutive
// infill points.
const ElevationDistance = 50

// Expand walks coords pairwise and inserts interpolated points so that no
// two consecutive output points are more than ElevationDistance apart. If
// infill is false, coords is returned unchanged. Elevations are not set
// here: callers resolve them afterwards via a Reader.
func Expand(coords []terrain50.Coord, infill bool) []terrain50.Coord {
	if !infill || len(coords) < 2 {
		return coords
	}

	out := make([]terrain50.Coord, 0, len(coords))
	for i := 1; i < len(coords); i++ {
		includeStart := i == 1
		out = append(out, between(coords[i-1], coords[i], includeStart)...)
	}
	return out
}

// between returns the infill points from start to end, inclusive of end,
// and inclusive of start only when includeStart is true (the caller is
// responsible for not re-emitting a shared vertex between consecutive
// pairs).
func between(start, end terrain50.Coord, includeStart bool) []terrain50.Coord {
	var out []terrain50.Coord
	if includeStart {
		out = append(out, start)
	}

	eastingDiff := float64(end.Easting - start.Easting)
	northingDiff := float64(end.Northing - start.Northing)
	diagonal := math.Sqrt(eastingDiff*eastingDiff + northingDiff*northingDiff)

	if diagonal > ElevationDistance {
		steps := diagonal / ElevationDistance
		deltaEast := eastingDiff / steps
		deltaNorth := northingDiff / steps

		cumulativeEast := float64(start.Easting)
		cumulativeNorth := float64(start.Northing)

		infillsRequired := int64(math.Ceil(steps)) - 1
		for i := int64(0); i < infillsRequired; i++ {
			cumulativeEast += deltaEast
			cumulativeNorth += deltaNorth
			out = append(out, terrain50.Coord{
				Easting:  int64(math.Round(cumulativeEast)),
				Northing: int64(math.Round(cumulativeNorth)),
			})
		}
	}

	out = append(out, end)
	return out
}
