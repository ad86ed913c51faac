// Package asciigrid reads a single OS Terrain 50 ".asc" tile file: up to 5
// metadata lines followed by 200 CRLF-terminated data rows of 200
// space-separated elevation tokens, north to south. It yields the 200×200
// samples reversed into south-to-north order as decimetre-encoded i16
// values, ready for internal/terrain50's Writer to stream out.
//
// Grounded on internal/cog.Open's open/stat/parse error-wrapping shape and
// on other_examples/aurel42-phileasgo's i16-sample conventions.
package asciigrid

import (
	"os"
	"strconv"
	"strings"

	"github.com/bobosola/osterrain50/internal/oserrors"
)

const (
	// Rows is the number of data rows (and columns) in a 10 km² tile.
	Rows = 200
	// Cols is the number of elevation values per data row.
	Cols = 200

	rowSeparator = "\r\n"
	colSeparator = " "
)

// Tile holds the 200×200 decimetre-encoded elevation samples of one 10 km²
// .asc file, indexed [rowFromSouth][colFromWest].
type Tile struct {
	Samples [Rows][Cols]int16
}

// Parse reads the .asc file at path and returns its samples in
// south-to-north, west-to-east order.
//
// Row separator is CRLF and column separator is a single space, exactly;
// this strictness is intentional (spec.md §9): a source file with
// LF-only line endings or trailing whitespace silently produces rows of
// the wrong token count, which this parser treats as metadata and skips,
// ultimately surfacing as a ShortTile error rather than a row-count
// mismatch deep inside the writer.
func Parse(path string) (*Tile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, oserrors.NewIoError("reading "+path, err)
	}

	lines := strings.Split(string(raw), rowSeparator)

	// Keep only lines that tokenize into exactly Cols values; this drops
	// the metadata header (ncols, nrows, xllcorner, ...) regardless of how
	// many lines it occupies, up to the spec's 5-line allowance.
	dataLines := make([]string, 0, Rows)
	for _, line := range lines {
		if line == "" {
			continue
		}
		if len(strings.Split(line, colSeparator)) == Cols {
			dataLines = append(dataLines, line)
		}
	}

	if len(dataLines) < Rows {
		return nil, oserrors.ShortTile(path, len(dataLines))
	}
	// Only the first Rows data lines are meaningful; a tile file should
	// have exactly 200, but tolerate trailing blank-ish noise.
	dataLines = dataLines[:Rows]

	var tile Tile
	// Source rows are north to south; reverse so row 0 is southernmost.
	for fileRow, line := range dataLines {
		southRow := Rows - 1 - fileRow
		tokens := strings.Split(line, colSeparator)
		for col, tok := range tokens {
			sample, err := decodeDecimetre(tok)
			if err != nil {
				return nil, oserrors.NewParseError(path, "malformed sample "+strconv.Quote(tok), err)
			}
			tile.Samples[southRow][col] = sample
		}
	}
	return &tile, nil
}

// decodeDecimetre converts a token ("D" or "D.d") to its integer-decimetre
// i16 encoding, per spec.md §4.2: a token with a decimal point has the
// point stripped and is parsed directly (it already carries one decimal
// place worth of magnitude); otherwise a trailing zero is appended.
func decodeDecimetre(tok string) (int16, error) {
	var digits string
	if strings.Contains(tok, ".") {
		digits = strings.Replace(tok, ".", "", 1)
	} else {
		digits = tok + "0"
	}
	v, err := strconv.ParseInt(digits, 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}
