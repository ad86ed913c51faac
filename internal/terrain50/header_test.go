package terrain50

import (
	"testing"

	"github.com/bobosola/osterrain50/internal/grid"
)

func TestHeaderSerializeSize(t *testing.T) {
	h := NewHeader()
	buf := h.Serialize()
	if len(buf) != HeaderSize {
		t.Fatalf("len(Serialize()) = %d, want %d", len(buf), HeaderSize)
	}
	if HeaderSize != 36_593 {
		t.Fatalf("HeaderSize = %d, want 36593", HeaderSize)
	}
}

func TestHeaderSerializeSignatureAndTileIDs(t *testing.T) {
	h := NewHeader()
	buf := h.Serialize()

	if string(buf[0:11]) != "OSTerrain50" {
		t.Errorf("signature = %q, want OSTerrain50", buf[0:11])
	}
	for i, id := range grid.GRID100Order {
		pos := 11 + i*TileBlockSize
		if got := string(buf[pos : pos+2]); got != id {
			t.Errorf("tile block %d id = %q, want %q", i, got, id)
		}
	}
}

func TestHeaderRoundTripOffsets(t *testing.T) {
	h := NewHeader()
	slots := h.Offsets["SV"]
	slots[0] = 36_593
	slots[99] = 116_593
	h.Offsets["SV"] = slots

	buf := h.Serialize()
	got, err := DeserializeHeader(buf)
	if err != nil {
		t.Fatalf("DeserializeHeader: %v", err)
	}
	if got.Offsets["SV"][0] != 36_593 {
		t.Errorf("Offsets[SV][0] = %d, want 36593", got.Offsets["SV"][0])
	}
	if got.Offsets["SV"][99] != 116_593 {
		t.Errorf("Offsets[SV][99] = %d, want 116593", got.Offsets["SV"][99])
	}
	if got.Offsets["TW"][0] != 0 {
		t.Errorf("Offsets[TW][0] = %d, want 0 (untouched tile)", got.Offsets["TW"][0])
	}
}

func TestDeserializeHeaderRejectsBadSignature(t *testing.T) {
	buf := NewHeader().Serialize()
	buf[0] = 'X'
	if _, err := DeserializeHeader(buf); err == nil {
		t.Error("DeserializeHeader should reject a corrupted signature")
	}
}

func TestDeserializeHeaderRejectsShortBuffer(t *testing.T) {
	if _, err := DeserializeHeader(make([]byte, 100)); err == nil {
		t.Error("DeserializeHeader should reject a buffer shorter than HeaderSize")
	}
}

func TestSlotOffsetAndAddressOffset(t *testing.T) {
	// SV origin: slot 0, sub (0,0).
	if got := SlotOffset(0, 0); got != 11 {
		t.Errorf("SlotOffset(0,0) = %d, want 11", got)
	}
	if got := AddressOffset(0, 0); got != 13 {
		t.Errorf("AddressOffset(0,0) = %d, want 13", got)
	}

	// Second row (northing 100_000) starts at slot 7.
	wantSlot := int64(11 + 7*TileBlockSize)
	if got := SlotOffset(0, 100_000); got != wantSlot {
		t.Errorf("SlotOffset(0,100000) = %d, want %d", got, wantSlot)
	}

	// Mid-tile sub-index (sub_east=3, sub_north=3) at easting 430000/northing 730000.
	wantAddr := SlotOffset(430_000, 730_000) + 2 + int64(3*10+3)*4
	if got := AddressOffset(430_000, 730_000); got != wantAddr {
		t.Errorf("AddressOffset(430000,730000) = %d, want %d", got, wantAddr)
	}
}
