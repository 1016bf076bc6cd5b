package binary

import "github.com/pkg/errors"

// DetectFormat classifies dynamically-typed data without converting it.
func DetectFormat(v any) (Format, error) {
	val, err := Detect(v)
	if err != nil {
		return 0, err
	}
	return val.format, nil
}

// ByteLength reports how many bytes the data occupies: the length for raw
// bytes, half the digit count for hex strings (after stripping an optional
// "0x" prefix), and the minimum big-endian width for integers, with zero
// occupying zero bytes.
func ByteLength(v any) (int, error) {
	val, err := Detect(v)
	if err != nil {
		return 0, err
	}
	switch val.format {
	case FormatBinary:
		return len(val.raw), nil
	case FormatPrefixHex, FormatRawHex:
		if len(val.digits)%2 != 0 {
			return 0, errors.Wrapf(ErrOddLength, "%d hex digits", len(val.digits))
		}
		return len(val.digits) / 2, nil
	case FormatInteger:
		if val.num.Sign() < 0 {
			return 0, errors.Wrapf(ErrNegativeValue, "value %s", val.num)
		}
		return (val.num.BitLen() + 7) / 8, nil
	default:
		return 0, errors.Wrapf(ErrUnrecognizedType, "format %v", val.format)
	}
}
