package nds

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLength is returned when the source is not exactly Size bytes
	ErrInvalidLength = errors.New("nds: invalid header length")
	// ErrTruncated is returned when the source cannot supply a field
	ErrTruncated = errors.New("nds: truncated header")
	// ErrEncoding is returned in strict mode when a text field contains
	// bytes that are not printable ASCII or NUL padding
	ErrEncoding = errors.New("nds: invalid text")
)

// LengthError records the size of a source that was rejected
type LengthError struct {
	Size int64
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("nds: invalid header length %d, expected %d", e.Size, Size)
}

// Unwrap returns ErrInvalidLength
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// ReadError records the field that could not be read along with the
// underlying I/O error
type ReadError struct {
	Field  string
	Offset int64
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("nds: reading %s at 0x%03x: %v", e.Field, e.Offset, e.Err)
}

// Is reports whether target is ErrTruncated
func (e *ReadError) Is(target error) bool {
	return target == ErrTruncated
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// EncodingError records the first offending byte in a text field
type EncodingError struct {
	Field  string
	Offset int64
	Value  byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("nds: invalid byte 0x%02x in %s at 0x%03x", e.Value, e.Field, e.Offset)
}

// Unwrap returns ErrEncoding
func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}
