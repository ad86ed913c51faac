package terrain50

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bobosola/osterrain50/internal/grid"
)

// writeAscFixture writes a minimal CRLF .asc tile whose every sample equals
// value (in whole metres), at dataDir/data/<tileLower>/<TILE><EN>.asc.
func writeAscFixture(t *testing.T, dataDir, tileID string, east, north, value int) {
	t.Helper()
	writeAscFixtureVaried(t, dataDir, tileID, east, north, func(southRow, col int) int {
		return value
	})
}

// writeAscFixtureVaried writes a minimal CRLF .asc tile whose sample at
// south-from-origin row southRow and column col (the coordinates
// ReadElevation addresses) is valueAt(southRow, col), at
// dataDir/data/<tileLower>/<TILE><EN>.asc. Unlike writeAscFixture's uniform
// tile, this lets a test prove row and column aren't transposed anywhere
// between the .asc file, the sub-tile body written by writeTileBody, and
// ReadElevation's addressing.
func writeAscFixtureVaried(t *testing.T, dataDir, tileID string, east, north int, valueAt func(southRow, col int) int) {
	t.Helper()
	dir := filepath.Join(dataDir, "data", strings.ToLower(tileID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	var b strings.Builder
	b.WriteString("ncols 200\r\n")
	// The file is written north to south; row fileRow's south-counted index
	// is 199-fileRow, matching Parse's own reversal.
	for fileRow := 0; fileRow < 200; fileRow++ {
		southRow := 199 - fileRow
		tokens := make([]string, 200)
		for col := 0; col < 200; col++ {
			tokens[col] = strconv.Itoa(valueAt(southRow, col))
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteString("\r\n")
	}
	name := tileID + strconv.Itoa(east) + strconv.Itoa(north) + ".asc"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestBuildOutputFileHeaderSkeleton(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data-source")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	writeAscFixture(t, dataDir, "SV", 0, 0, 5)

	outPath, stats, err := BuildOutputFile(dataDir)
	if err != nil {
		t.Fatalf("BuildOutputFile: %v", err)
	}
	if stats.TilesWritten != 1 {
		t.Errorf("TilesWritten = %d, want 1", stats.TilesWritten)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data[0:11]) != "OSTerrain50" {
		t.Errorf("signature = %q", data[0:11])
	}
	if int64(len(data)) < int64(HeaderSize)+TileBodySize {
		t.Fatalf("output too small: %d bytes", len(data))
	}

	for i, id := range grid.GRID100Order {
		pos := 11 + i*TileBlockSize
		if got := string(data[pos : pos+2]); got != id {
			t.Fatalf("tile block %d id = %q, want %q", i, got, id)
		}
	}
}

func TestBuildOutputFileOffsetsPointPastHeader(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data-source")
	writeAscFixture(t, dataDir, "SV", 0, 0, 1)
	writeAscFixture(t, dataDir, "SV", 1, 0, 2)

	outPath, _, err := BuildOutputFile(dataDir)
	if err != nil {
		t.Fatalf("BuildOutputFile: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	svSlot := 11 // SV is GRID100Order[0]
	entry00 := binary.LittleEndian.Uint32(data[svSlot+2 : svSlot+6])
	entry10 := binary.LittleEndian.Uint32(data[svSlot+6 : svSlot+10])

	if entry00 != HeaderSize {
		t.Errorf("offset for SV00 = %d, want %d", entry00, HeaderSize)
	}
	if entry10 != HeaderSize+TileBodySize {
		t.Errorf("offset for SV10 = %d, want %d", entry10, HeaderSize+TileBodySize)
	}
	if int64(len(data)) != HeaderSize+2*TileBodySize {
		t.Errorf("file length = %d, want %d", len(data), HeaderSize+2*TileBodySize)
	}
}

func TestBuildOutputFileSkipsMissingTiles(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data-source")
	writeAscFixture(t, dataDir, "HP", 3, 4, 9)

	outPath, stats, err := BuildOutputFile(dataDir)
	if err != nil {
		t.Fatalf("BuildOutputFile: %v", err)
	}
	if stats.TilesWritten != 1 {
		t.Errorf("TilesWritten = %d, want 1", stats.TilesWritten)
	}
	if stats.SkippedTiles == 0 {
		t.Error("SkippedTiles should count the other 99 sub-tiles of HP")
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	// Some other tile, e.g. SV, should have every offset still zero.
	svSlot := 11
	for i := 0; i < SubTilesPerTile; i++ {
		start := svSlot + 2 + i*4
		if off := binary.LittleEndian.Uint32(data[start : start+4]); off != 0 {
			t.Fatalf("SV sub-tile %d offset = %d, want 0", i, off)
		}
	}
}
