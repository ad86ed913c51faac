package terrain50

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/bobosola/osterrain50/internal/grid"
	"github.com/bobosola/osterrain50/internal/oserrors"
)

// Coord is an absolute BNG coordinate in metres from the SV origin, with an
// elevation filled in by ReadElevation (or left at zero until then).
type Coord struct {
	Easting   int64
	Northing  int64
	Elevation float64
}

// Reader provides read-only, seek-based access to an OSTerrain50.bin file.
// Multiple Readers may safely share one file concurrently: each opens its
// own handle and never mutates it.
type Reader struct {
	file *os.File
}

// Open opens path and validates its signature. The full header is not read
// eagerly; ReadElevation seeks directly to the slot it needs.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oserrors.NewIoError("opening "+path, err)
	}
	sig := make([]byte, len(Signature))
	if _, err := io.ReadFull(f, sig); err != nil {
		f.Close()
		return nil, oserrors.NewIoError("reading signature of "+path, err)
	}
	if string(sig) != Signature {
		f.Close()
		return nil, oserrors.NewParseError(path, "bad signature", nil)
	}
	return &Reader{file: f}, nil
}

// Close closes the underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

// ReadElevation resolves (eastingM, northingM) to an elevation in metres
// using at most two seeks: one for the 4-byte sub-tile offset, one for the
// 2-byte sample. A sub-tile offset of zero means "no data" and yields 0.0
// with no error, per the format's absent-tile convention. Inputs must be
// non-negative; out-of-GB coordinates are not validated here.
func (r *Reader) ReadElevation(eastingM, northingM int64) (float64, error) {
	tileBase, err := r.readTileBase(eastingM, northingM)
	if err != nil {
		return 0, err
	}
	if tileBase == 0 {
		return 0, nil
	}

	intraEastM := eastingM % grid.MetresIn100Grid % grid.MetresIn10Grid
	intraNorthM := northingM % grid.MetresIn100Grid % grid.MetresIn10Grid
	sampleCol := intraEastM / MetresPerSample
	sampleRow := intraNorthM / MetresPerSample

	sampleOffset := int64(tileBase) + (sampleRow*SamplesPerSide+sampleCol)*SampleSize
	sampleBuf := make([]byte, SampleSize)
	if _, err := r.file.ReadAt(sampleBuf, sampleOffset); err != nil {
		return 0, oserrors.NewIoError("reading sample", err)
	}
	sample := int16(binary.LittleEndian.Uint16(sampleBuf))
	return float64(sample) / 10.0, nil
}

// ReadElevations resolves a list of coordinates in order, filling in each
// Elevation field in place.
func (r *Reader) ReadElevations(coords []Coord) ([]Coord, error) {
	for i := range coords {
		e, err := r.ReadElevation(coords[i].Easting, coords[i].Northing)
		if err != nil {
			return nil, err
		}
		coords[i].Elevation = e
	}
	return coords, nil
}

// readTileBase performs steps 1-6 of the addressing law: compute the
// header slot and sub-tile address, seek there, and read the 4-byte
// little-endian tile base offset (0 if absent).
func (r *Reader) readTileBase(eastingM, northingM int64) (uint32, error) {
	addr := AddressOffset(eastingM, northingM)
	buf := make([]byte, AddressLength)
	if _, err := r.file.ReadAt(buf, addr); err != nil {
		return 0, oserrors.NewIoError("reading tile offset", err)
	}
	return binary.LittleEndian.Uint32(buf), nil
}
