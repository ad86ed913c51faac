package terrain50

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bobosola/osterrain50/internal/asciigrid"
	"github.com/bobosola/osterrain50/internal/grid"
	"github.com/bobosola/osterrain50/internal/oserrors"
)

// Stats summarizes one BuildOutputFile run.
type Stats struct {
	TilesWritten int
	BytesWritten int64
	SkippedTiles int
}

// BuildOutputFile streams an OSTerrain50.bin next to dataDir: it emits the
// header skeleton, walks every 10 km² tile in canonical order writing
// whichever ones exist, then seeks back and patches the header with the
// recorded offsets. Any I/O or parse failure aborts the build; the partial
// output file is left on disk for the caller to delete and retry.
func BuildOutputFile(dataDir string) (string, Stats, error) {
	outputPath := filepath.Join(filepath.Dir(dataDir), "OSTerrain50.bin")

	out, err := os.Create(outputPath)
	if err != nil {
		return "", Stats{}, oserrors.NewIoError("creating "+outputPath, err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)

	if _, err := bw.WriteString(Signature); err != nil {
		return "", Stats{}, oserrors.NewIoError("writing signature", err)
	}

	// Step 3: header skeleton. Two id bytes per tile, then 400 zeroed bytes.
	zeros := make([]byte, SubTilesPerTile*AddressLength)
	for _, id := range grid.GRID100Order {
		if _, err := bw.WriteString(id); err != nil {
			return "", Stats{}, oserrors.NewIoError("writing tile id "+id, err)
		}
		if _, err := bw.Write(zeros); err != nil {
			return "", Stats{}, oserrors.NewIoError("writing placeholder offsets for "+id, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return "", Stats{}, oserrors.NewIoError("flushing header skeleton", err)
	}

	pos := int64(HeaderSize)
	offsets := make(map[string]uint32, 5_500)
	var stats Stats

	// Step 5: walk tiles in canonical order, streaming sample bodies.
	for _, tileID := range grid.GRID100Order {
		tileDir := filepath.Join(dataDir, "data", strings.ToLower(tileID))
		if _, err := os.Stat(tileDir); err != nil {
			continue
		}
		for subNorth := 0; subNorth < grid.SubTilesPerSide; subNorth++ {
			for subEast := 0; subEast < grid.SubTilesPerSide; subEast++ {
				subID := tileID + digit(subEast) + digit(subNorth)
				ascPath := filepath.Join(tileDir, subID+".asc")
				if _, err := os.Stat(ascPath); err != nil {
					stats.SkippedTiles++
					continue
				}

				tile, err := asciigrid.Parse(ascPath)
				if err != nil {
					return "", stats, err
				}

				offsets[subID] = uint32(pos)
				n, err := writeTileBody(bw, tile)
				if err != nil {
					return "", stats, oserrors.NewIoError("writing body of "+subID, err)
				}
				pos += n
				stats.TilesWritten++
				stats.BytesWritten += n
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return "", stats, oserrors.NewIoError("flushing tile data", err)
	}

	// Step 6: back-patch the header with the recorded offsets.
	if err := patchHeader(out, offsets); err != nil {
		return "", stats, err
	}

	return outputPath, stats, nil
}

// digit renders 0-9 as the single decimal digit used in sub-tile file
// names and header keys (easting index first, per the OS HP01 convention).
func digit(n int) string {
	return string([]byte{'0' + byte(n)})
}

// writeTileBody writes a tile's 40 000 samples as consecutive little-endian
// i16 values, south to north, west to east, and returns the byte count
// written.
func writeTileBody(w io.Writer, tile *asciigrid.Tile) (int64, error) {
	buf := make([]byte, TileBodySize)
	pos := 0
	for row := 0; row < asciigrid.Rows; row++ {
		for col := 0; col < asciigrid.Cols; col++ {
			v := uint16(tile.Samples[row][col])
			buf[pos] = byte(v)
			buf[pos+1] = byte(v >> 8)
			pos += 2
		}
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// patchHeader seeks back to byte 11 and rewrites every sub-tile offset
// entry recorded in offsets, leaving zeroed placeholders for any tile id
// with no entry.
func patchHeader(out *os.File, offsets map[string]uint32) error {
	pos := int64(len(Signature))
	for _, tileID := range grid.GRID100Order {
		if _, err := out.Seek(pos+TileIDLength, io.SeekStart); err != nil {
			return oserrors.NewIoError("seeking to header block for "+tileID, err)
		}
		entry := make([]byte, SubTilesPerTile*AddressLength)
		wrote := false
		for subNorth := 0; subNorth < grid.SubTilesPerSide; subNorth++ {
			for subEast := 0; subEast < grid.SubTilesPerSide; subEast++ {
				off, ok := offsets[tileID+digit(subEast)+digit(subNorth)]
				if !ok {
					continue
				}
				i := (subNorth*grid.SubTilesPerSide + subEast) * AddressLength
				entry[i] = byte(off)
				entry[i+1] = byte(off >> 8)
				entry[i+2] = byte(off >> 16)
				entry[i+3] = byte(off >> 24)
				wrote = true
			}
		}
		if wrote {
			if _, err := out.Write(entry); err != nil {
				return oserrors.NewIoError("patching header block for "+tileID, err)
			}
		}
		pos += TileBlockSize
	}
	return nil
}
