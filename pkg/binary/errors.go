package binary

import "github.com/pkg/errors"

var (
	// ErrUnrecognizedType means the input matches none of the four
	// representations (bytes, prefixed hex, raw hex, unsigned integer).
	ErrUnrecognizedType = errors.New("could not detect binary format")

	// ErrOddLength means a hex string has an odd number of digits where a
	// whole number of bytes is required.
	ErrOddLength = errors.New("hex data must have an even number of digits")

	// ErrLengthMismatch means the data does not have the expected byte
	// length.
	ErrLengthMismatch = errors.New("data does not have expected byte length")

	// ErrNegativeValue means a negative integer was given where an
	// unsigned value is required.
	ErrNegativeValue = errors.New("only unsigned integer values allowed")

	// ErrPadTooSmall means the requested padded size is shorter than the
	// data itself.
	ErrPadTooSmall = errors.New("pad size too small for data")
)
