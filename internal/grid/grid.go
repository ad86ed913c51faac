// Package grid implements the British National Grid alphabet and the pure
// arithmetic that maps a 100 km² tile identifier to its south-west origin
// in metres, and back. It does no I/O: this is the shared vocabulary that
// both internal/terrain50's Writer and Reader build on, so the two can
// never silently disagree about where a tile lives in the output file.
package grid

import "github.com/pkg/errors"

const (
	// MetresIn500Grid is the side length of a 500 km² super-tile, in metres.
	MetresIn500Grid = 500_000
	// MetresIn100Grid is the side length of a 100 km² tile, in metres.
	MetresIn100Grid = 100_000
	// MetresIn10Grid is the side length of a 10 km² tile, in metres.
	MetresIn10Grid = 10_000

	// TilesPerRow100 is the number of 100 km² tiles per row of the 7×13 GB rectangle.
	TilesPerRow100 = 7
	// TilesPerCol100 is the number of 100 km² tiles per column of the 7×13 GB rectangle.
	TilesPerCol100 = 13
	// Grid100Count is the total number of 100 km² tiles covering GB (7×13).
	Grid100Count = TilesPerRow100 * TilesPerCol100

	// SubTilesPerSide is the number of 10 km² sub-tiles along one edge of a 100 km² tile.
	SubTilesPerSide = 10
)

// grid500Offsets gives the (col, row) of 500 km² super-tile letters, west
// to east then south to north, matching spec.md §3 and original_source's
// GRID_500 literal.
var grid500Offsets = map[byte][2]int{
	'S': {0, 0}, 'T': {1, 0},
	'N': {0, 1}, 'O': {1, 1},
	'H': {0, 2}, 'J': {1, 2},
}

// grid100Letters is the 25-letter alphabet (skipping 'I') used for the
// sub-tile letter within a 500 km² super-tile, indexed [col][row] by
// 5*row+col matching spec.md §3's V,W,X,Y,Z / Q,R,S,T,U / ... layout.
var grid100Letters = [25]byte{
	'V', 'W', 'X', 'Y', 'Z',
	'Q', 'R', 'S', 'T', 'U',
	'L', 'M', 'N', 'O', 'P',
	'F', 'G', 'H', 'J', 'K',
	'A', 'B', 'C', 'D', 'E',
}

// grid100Offsets is the inverse of grid100Letters: letter -> (col, row)
// within a 500 km² super-tile.
var grid100Offsets = func() map[byte][2]int {
	m := make(map[byte][2]int, 25)
	for i, l := range grid100Letters {
		m[l] = [2]int{i % 5, i / 5}
	}
	return m
}()

// GRID100Order is the fixed canonical sequence of the 91 two-letter 100 km²
// tile identifiers covering GB, in header order: row-major, south to
// north, west to east, from SV (SW corner) to JM (NE corner). Both the
// writer and the reader depend on this exact order (spec.md §4.1, §6.2).
var GRID100Order = buildGrid100Order()

func buildGrid100Order() []string {
	order := make([]string, 0, Grid100Count)
	for row := 0; row < TilesPerCol100; row++ {
		for col := 0; col < TilesPerRow100; col++ {
			order = append(order, tileIDAt(col, row))
		}
	}
	return order
}

// tileIDAt returns the two-letter tile identifier at 100 km² grid column
// col, row row of the 7×13 GB rectangle (col 0 = westernmost, row 0 =
// southernmost).
func tileIDAt(col, row int) string {
	superCol, superRow := col/5, row/5
	subCol, subRow := col%5, row%5

	var super byte
	for letter, off := range grid500Offsets {
		if off[0] == superCol && off[1] == superRow {
			super = letter
			break
		}
	}
	sub := grid100Letters[subRow*5+subCol]
	return string([]byte{super, sub})
}

// OriginOf returns the south-west corner, in metres from the SV origin, of
// the named 100 km² tile.
func OriginOf(tileID string) (eastingM, northingM int64, err error) {
	if len(tileID) != 2 {
		return 0, 0, errors.Errorf("tile id %q must be 2 letters", tileID)
	}
	superOff, ok := grid500Offsets[tileID[0]]
	if !ok {
		return 0, 0, errors.Errorf("tile id %q: unknown super-tile letter %q", tileID, tileID[0])
	}
	subOff, ok := grid100Offsets[tileID[1]]
	if !ok {
		return 0, 0, errors.Errorf("tile id %q: unknown sub-tile letter %q", tileID, tileID[1])
	}
	col := superOff[0]*5 + subOff[0]
	row := superOff[1]*5 + subOff[1]
	return int64(col) * MetresIn100Grid, int64(row) * MetresIn100Grid, nil
}

// TileIDContaining returns the 100 km² tile identifier containing the
// given absolute (easting, northing) in metres from the SV origin. It is a
// total function over any non-negative coordinate; callers must validate
// GB coverage themselves (spec.md §7).
func TileIDContaining(eastingM, northingM int64) string {
	col := int(eastingM / MetresIn100Grid)
	row := int(northingM / MetresIn100Grid)
	return tileIDAt(col, row)
}

// HeaderSlot returns the index (0-based) of the 100 km² tile containing
// (eastingM, northingM) within GRID100Order / the header's tile-slot array.
// This is the addressing law of spec.md §8: header_slot = 7*row + col.
func HeaderSlot(eastingM, northingM int64) int {
	col := int(eastingM / MetresIn100Grid)
	row := int(northingM / MetresIn100Grid)
	return TilesPerRow100*row + col
}

// SubTileIndex returns the (subEast, subNorth) indices in {0..10} of the
// 10 km² sub-tile containing (eastingM, northingM) within its parent 100
// km² tile.
func SubTileIndex(eastingM, northingM int64) (subEast, subNorth int) {
	subEast = int((eastingM % MetresIn100Grid) / MetresIn10Grid)
	subNorth = int((northingM % MetresIn100Grid) / MetresIn10Grid)
	return
}
