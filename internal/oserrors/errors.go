// Package oserrors defines the error taxonomy shared across the OSTerrain50
// packages: IoError, ParseError, InvalidCoord and InvalidArgs. Each is a
// distinct type so callers can distinguish them with errors.As, while the
// underlying cause (a wrapped os/io error, a bad token, ...) is preserved
// via github.com/pkg/errors.
package oserrors

import "github.com/pkg/errors"

// IoError wraps any failure opening, reading, writing, seeking or closing a file.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *IoError) Unwrap() error { return e.Err }

// NewIoError wraps err as an IoError with context op, using pkg/errors.Wrap
// to keep a cause chain for later inspection or re-formatting.
func NewIoError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Err: errors.Wrap(err, op)}
}

// ParseError reports a malformed numeric sample or a tile file with the
// wrong number of usable rows (spec: ShortTile is a ParseError variant).
type ParseError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Path + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Path + ": " + e.Msg
}
func (e *ParseError) Unwrap() error { return e.Err }

func NewParseError(path, msg string, cause error) error {
	return &ParseError{Path: path, Msg: msg, Err: cause}
}

// ShortTile is the specific ParseError variant for a tile with fewer than
// 200 usable data rows.
func ShortTile(path string, gotRows int) error {
	return NewParseError(path, "short tile", errors.Errorf("got %d usable rows, want 200", gotRows))
}

// InvalidCoord reports a coordinate string that cannot be decoded: an
// unknown grid letter, unequal-length easting/northing halves, or a
// non-numeric token.
type InvalidCoord struct {
	Input string
	Msg   string
}

func (e *InvalidCoord) Error() string { return "invalid coordinate " + quote(e.Input) + ": " + e.Msg }

func NewInvalidCoord(input, msg string) error {
	return &InvalidCoord{Input: input, Msg: msg}
}

// InvalidArgs reports a malformed CLI argument shape.
type InvalidArgs struct {
	Msg string
}

func (e *InvalidArgs) Error() string { return "invalid arguments: " + e.Msg }

func NewInvalidArgs(msg string) error {
	return &InvalidArgs{Msg: msg}
}

func quote(s string) string {
	return "\"" + s + "\""
}
