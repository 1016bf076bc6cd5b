package binary

import (
	"strings"

	"github.com/pkg/errors"
)

type padOptions struct {
	right      bool
	paddedSize int
}

// PadOption adjusts how Pad zero-extends its input.
type PadOption func(*padOptions)

// WithPadRight pads on the right side instead of the default left.
func WithPadRight() PadOption {
	return func(o *padOptions) {
		o.right = true
	}
}

// WithPaddedSize sets the target byte length, default 32.
func WithPaddedSize(n int) PadOption {
	return func(o *padOptions) {
		o.paddedSize = n
	}
}

// Pad zero-extends data to the target byte length, preserving the input's
// format. Integer-format values carry no byte width and cannot be padded;
// convert them to a sized format first.
func Pad(v any, opts ...PadOption) (Value, error) {
	options := padOptions{paddedSize: 32}
	for _, opt := range opts {
		opt(&options)
	}

	val, err := Detect(v)
	if err != nil {
		return Value{}, err
	}
	if val.format == FormatInteger {
		return Value{}, errors.Errorf("cannot pad integer values, convert to a sized format first")
	}
	length, err := ByteLength(val)
	if err != nil {
		return Value{}, err
	}
	if options.paddedSize < length {
		return Value{}, errors.Wrapf(ErrPadTooSmall,
			"data is %d bytes, pad target is %d", length, options.paddedSize)
	}
	padBytes := options.paddedSize - length

	switch val.format {
	case FormatBinary:
		padded := make([]byte, options.paddedSize)
		if options.right {
			copy(padded, val.raw)
		} else {
			copy(padded[padBytes:], val.raw)
		}
		return Value{format: FormatBinary, raw: padded}, nil
	case FormatPrefixHex, FormatRawHex:
		zeros := strings.Repeat("0", 2*padBytes)
		digits := zeros + val.digits
		if options.right {
			digits = val.digits + zeros
		}
		return Value{format: val.format, digits: digits}, nil
	default:
		return Value{}, errors.Wrapf(ErrUnrecognizedType, "format %v", val.format)
	}
}

type matchOptions struct {
	matchPadding bool
}

// MatchOption adjusts how MatchFormat shapes its output.
type MatchOption func(*matchOptions)

// WithMatchPadding additionally left-pads the source to the reference's
// byte length. Only left padding is possible here, the original length of
// a padded reference cannot be recovered from its bytes.
func WithMatchPadding() MatchOption {
	return func(o *matchOptions) {
		o.matchPadding = true
	}
}

// MatchFormat converts source into the reference's detected format.
func MatchFormat(source, reference any, opts ...MatchOption) (Value, error) {
	options := matchOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	format, err := DetectFormat(reference)
	if err != nil {
		return Value{}, err
	}
	out, err := Convert(source, format)
	if err != nil {
		return Value{}, err
	}
	if options.matchPadding {
		paddedSize, err := ByteLength(reference)
		if err != nil {
			return Value{}, err
		}
		return Pad(out, WithPaddedSize(paddedSize))
	}
	return out, nil
}
