// Package coordparse converts the coordinate strings a user would type —
// numeric easting/northing pairs or alphanumeric BNG references — into
// absolute (easting, northing) metres from the SV origin.
//
// Grounded on original_source's parse_coords/get_full_coord_pair and on
// other_examples/paulcager-osgridref's regex-dispatch shape.
package coordparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bobosola/osterrain50/internal/grid"
	"github.com/bobosola/osterrain50/internal/oserrors"
	"github.com/bobosola/osterrain50/internal/terrain50"
)

const digitPadWidth = 5

var (
	alphaFormat   = regexp.MustCompile(`^[A-Z]{2}[0-9]*$`)
	numericSpace  = regexp.MustCompile(`^\s*\d+\s+\d+\s*$`)
	numericComma  = regexp.MustCompile(`^\s*\d+\s*,\s*\d+\s*$`)
)

// Parse converts a single coordinate string into absolute BNG metres.
// Accepted forms: "485669, 92167", "485669 92167", "SZ 8554 9214",
// "SZ85549214", and the zero-digit form "SZ" (the tile's SW corner).
func Parse(input string) (terrain50.Coord, error) {
	trimmed := strings.TrimSpace(input)
	upper := strings.ToUpper(trimmed)
	noSpaces := strings.ReplaceAll(upper, " ", "")

	if alphaFormat.MatchString(noSpaces) {
		return parseAlphanumeric(noSpaces)
	}
	if numericSpace.MatchString(trimmed) {
		parts := strings.Fields(trimmed)
		return fullCoordPair(parts[0], parts[1])
	}
	if numericComma.MatchString(trimmed) {
		parts := strings.SplitN(trimmed, ",", 2)
		return fullCoordPair(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	return terrain50.Coord{}, oserrors.NewInvalidCoord(input, "unrecognized coordinate format")
}

// ParseAll parses each input string in order, returning the first error
// encountered.
func ParseAll(inputs []string) ([]terrain50.Coord, error) {
	coords := make([]terrain50.Coord, 0, len(inputs))
	for _, in := range inputs {
		c, err := Parse(in)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// parseAlphanumeric handles "SZ", "SZ85", "SZ85549214", etc: two grid
// letters followed by zero or more digits, already uppercased and stripped
// of whitespace.
func parseAlphanumeric(s string) (terrain50.Coord, error) {
	superOff, ok := superOffset(s[0])
	if !ok {
		return terrain50.Coord{}, oserrors.NewInvalidCoord(s, "unknown super-tile letter "+string(s[0]))
	}
	subOff, ok := subOffset(s[1])
	if !ok {
		return terrain50.Coord{}, oserrors.NewInvalidCoord(s, "unknown sub-tile letter "+string(s[1]))
	}

	easting := grid.MetresIn500Grid*int64(superOff[0]) + grid.MetresIn100Grid*int64(subOff[0])
	northing := grid.MetresIn500Grid*int64(superOff[1]) + grid.MetresIn100Grid*int64(subOff[1])

	remainder := s[2:]
	if remainder == "" {
		// Zero-digit form: SW corner of the 100 km² tile.
		return terrain50.Coord{Easting: easting, Northing: northing}, nil
	}
	if len(remainder)%2 != 0 {
		return terrain50.Coord{}, oserrors.NewInvalidCoord(s, "digit pair must split evenly between easting and northing")
	}

	half := len(remainder) / 2
	pair, err := fullCoordPair(remainder[:half], remainder[half:])
	if err != nil {
		return terrain50.Coord{}, err
	}
	pair.Easting += easting
	pair.Northing += northing
	return pair, nil
}

// fullCoordPair right-pads each digit string to digitPadWidth with
// trailing zeros (a string already that long or longer, e.g. a 7-digit
// Shetland northing, passes through unchanged) and parses both as i64.
func fullCoordPair(eastingStr, northingStr string) (terrain50.Coord, error) {
	e, err := padAndParse(eastingStr)
	if err != nil {
		return terrain50.Coord{}, oserrors.NewInvalidCoord(eastingStr, "not a number")
	}
	n, err := padAndParse(northingStr)
	if err != nil {
		return terrain50.Coord{}, oserrors.NewInvalidCoord(northingStr, "not a number")
	}
	return terrain50.Coord{Easting: e, Northing: n}, nil
}

func padAndParse(digits string) (int64, error) {
	for len(digits) < digitPadWidth {
		digits += "0"
	}
	return strconv.ParseInt(digits, 10, 64)
}

// superOffset and subOffset are small local lookups rather than imports
// from internal/grid, since that package keys by 2-letter tile id, not by
// the individual letters a coordinate string arrives with.
func superOffset(letter byte) ([2]int, bool) {
	switch letter {
	case 'S':
		return [2]int{0, 0}, true
	case 'T':
		return [2]int{1, 0}, true
	case 'N':
		return [2]int{0, 1}, true
	case 'O':
		return [2]int{1, 1}, true
	case 'H':
		return [2]int{0, 2}, true
	case 'J':
		return [2]int{1, 2}, true
	default:
		return [2]int{}, false
	}
}

var subLetters = "VWXYZQRSTULMNOPFGHJKABCDE"

func subOffset(letter byte) ([2]int, bool) {
	i := strings.IndexByte(subLetters, letter)
	if i < 0 {
		return [2]int{}, false
	}
	return [2]int{i % 5, i / 5}, true
}
