// Package terrain50 implements the OSTerrain50 binary format: the fixed
// header that maps each 100 km² tile to its 100 child 10 km² offsets, the
// Writer that streams an output file in a single two-pass walk, and the
// Reader that resolves a BNG coordinate to an elevation through pure
// arithmetic and at most two seeks.
package terrain50

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/bobosola/osterrain50/internal/grid"
)

// Format constants, fixed by the on-disk layout.
const (
	// Signature is the 11-byte ASCII literal that opens every output file.
	Signature = "OSTerrain50"

	// SubTilesPerTile is the number of 10 km² sub-tiles per 100 km² tile (10x10).
	SubTilesPerTile = grid.SubTilesPerSide * grid.SubTilesPerSide
	// AddressLength is the byte width of one sub-tile offset entry.
	AddressLength = 4
	// TileIDLength is the byte width of the ASCII tile identifier prefix of a tile block.
	TileIDLength = 2
	// TileBlockSize is the size in bytes of one 100 km² tile's header block.
	TileBlockSize = TileIDLength + SubTilesPerTile*AddressLength

	// HeaderSize is the total header size: signature plus one block per tile.
	HeaderSize = len(Signature) + grid.Grid100Count*TileBlockSize

	// SamplesPerSide is the number of 50 m samples along one edge of a 10 km² tile.
	SamplesPerSide = 200
	// SamplesPerTile is the total sample count of one 10 km² tile.
	SamplesPerTile = SamplesPerSide * SamplesPerSide
	// SampleSize is the width in bytes of one i16 sample.
	SampleSize = 2
	// TileBodySize is the byte length of one 10 km² tile's sample body.
	TileBodySize = SamplesPerTile * SampleSize

	// MetresPerSample is the horizontal resolution of the elevation lattice.
	MetresPerSample = 50
)

// Header is the in-memory mirror of the file's fixed 36 593-byte preamble:
// a signature followed by one 402-byte block per 100 km² tile, each
// block holding 100 sub-tile offsets (0 meaning "no data").
type Header struct {
	// Offsets maps each GRID_100_ORDER tile id to its 100 sub-tile offsets,
	// indexed by sub_north*10 + sub_east. A zero entry means absent.
	Offsets map[string][SubTilesPerTile]uint32
}

// NewHeader returns a header skeleton with every slot zeroed, one entry per
// tile in grid.GRID100Order.
func NewHeader() *Header {
	h := &Header{Offsets: make(map[string][SubTilesPerTile]uint32, grid.Grid100Count)}
	for _, id := range grid.GRID100Order {
		h.Offsets[id] = [SubTilesPerTile]uint32{}
	}
	return h
}

// Serialize renders the full HeaderSize-byte header, signature included, in
// grid.GRID100Order.
func (h *Header) Serialize() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:len(Signature)], Signature)

	pos := len(Signature)
	for _, id := range grid.GRID100Order {
		copy(buf[pos:pos+TileIDLength], id)
		slots := h.Offsets[id]
		for i, off := range slots {
			start := pos + TileIDLength + i*AddressLength
			binary.LittleEndian.PutUint32(buf[start:start+AddressLength], off)
		}
		pos += TileBlockSize
	}
	return buf
}

// DeserializeHeader parses a HeaderSize-byte buffer back into a Header,
// validating the signature and every tile id's position against
// grid.GRID100Order.
func DeserializeHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderSize {
		return nil, errors.Errorf("header too short: %d bytes (need %d)", len(buf), HeaderSize)
	}
	if string(buf[0:len(Signature)]) != Signature {
		return nil, errors.Errorf("bad signature: %q", buf[0:len(Signature)])
	}

	h := NewHeader()
	pos := len(Signature)
	for _, id := range grid.GRID100Order {
		got := string(buf[pos : pos+TileIDLength])
		if got != id {
			return nil, errors.Errorf("tile block at offset %d has id %q, want %q", pos, got, id)
		}
		var slots [SubTilesPerTile]uint32
		for i := range slots {
			start := pos + TileIDLength + i*AddressLength
			slots[i] = binary.LittleEndian.Uint32(buf[start : start+AddressLength])
		}
		h.Offsets[id] = slots
		pos += TileBlockSize
	}
	return h, nil
}

// SlotOffset returns the absolute byte offset of the tile block holding the
// 100 km² tile at (eastingM, northingM), i.e. 11 + header_slot*402.
func SlotOffset(eastingM, northingM int64) int64 {
	return int64(len(Signature)) + int64(grid.HeaderSlot(eastingM, northingM))*int64(TileBlockSize)
}

// AddressOffset returns the absolute byte offset of the 4-byte sub-tile
// offset entry for (eastingM, northingM) within its tile block.
func AddressOffset(eastingM, northingM int64) int64 {
	subEast, subNorth := grid.SubTileIndex(eastingM, northingM)
	return SlotOffset(eastingM, northingM) + TileIDLength + int64(subNorth*grid.SubTilesPerSide+subEast)*AddressLength
}
