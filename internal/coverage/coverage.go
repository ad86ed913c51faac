// Package coverage indexes the 100 km² tiles a header actually has data
// for, so tools can ask "what's the nearest populated tile to this
// coordinate" and "which populated tiles lie near this point". The nearest
// query scans the populated tiles in order; the window query goes through
// an R-tree. This is diagnostic sugar only: it never participates in
// ReadElevation's return value.
//
// Grounded on beetlebugorg-s57's ChartIndex, which builds an rtreego index
// over chart bounding boxes for the same kind of spatial filtering.
package coverage

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/bobosola/osterrain50/internal/grid"
	"github.com/bobosola/osterrain50/internal/terrain50"
)

// tileEntry is one 100 km² tile with at least one populated sub-tile.
type tileEntry struct {
	id             string
	eastingM       int64
	northingM      int64
	populatedSlots int
}

// Bounds implements rtreego.Spatial over a tile's 100 km² footprint.
func (t tileEntry) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(
		rtreego.Point{float64(t.eastingM), float64(t.northingM)},
		[]float64{grid.MetresIn100Grid, grid.MetresIn100Grid},
	)
	return rect
}

// Index answers populated-tile-count, nearest-populated-tile and
// within-range queries over a parsed Header.
type Index struct {
	entries []tileEntry
	rtree   *rtreego.Rtree
}

// Build scans every tile in h and indexes the ones with at least one
// nonzero sub-tile offset.
func Build(h *terrain50.Header) *Index {
	rtree := rtreego.NewTree(2, 5, 25)
	idx := &Index{}
	for _, id := range grid.GRID100Order {
		slots := h.Offsets[id]
		populated := 0
		for _, off := range slots {
			if off != 0 {
				populated++
			}
		}
		if populated == 0 {
			continue
		}
		e, n, err := grid.OriginOf(id)
		if err != nil {
			continue
		}
		entry := tileEntry{id: id, eastingM: e, northingM: n, populatedSlots: populated}
		idx.entries = append(idx.entries, entry)
		rtree.Insert(entry)
	}
	idx.rtree = rtree
	return idx
}

// PopulatedTileCount returns the number of 100 km² tiles with any data.
func (idx *Index) PopulatedTileCount() int {
	return len(idx.entries)
}

// NearestPopulatedTile returns the id of the populated tile whose origin
// (south-west corner) is closest to (eastingM, northingM), and the distance
// in metres from the query point to that origin. Returns ok=false if the
// index has no populated tiles.
func (idx *Index) NearestPopulatedTile(eastingM, northingM int64) (id string, distanceM float64, ok bool) {
	if len(idx.entries) == 0 {
		return "", 0, false
	}
	best := idx.entries[0]
	bestDist := math.MaxFloat64
	for _, e := range idx.entries {
		de := float64(e.eastingM - eastingM)
		dn := float64(e.northingM - northingM)
		d := math.Sqrt(de*de + dn*dn)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best.id, bestDist, true
}

// WithinRange returns the populated tile ids whose footprints intersect a
// square window of the given radius in metres around (eastingM, northingM).
func (idx *Index) WithinRange(eastingM, northingM int64, radiusM float64) []string {
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(eastingM) - radiusM, float64(northingM) - radiusM},
		[]float64{2 * radiusM, 2 * radiusM},
	)
	if err != nil {
		return nil
	}
	var ids []string
	for _, sp := range idx.rtree.SearchIntersect(rect) {
		ids = append(ids, sp.(tileEntry).id)
	}
	return ids
}
