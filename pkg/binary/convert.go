package binary

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

type convertOptions struct {
	byteLength      int
	hasByteLength   bool
	keepLeadingZero bool
}

// ConvertOption adjusts how Convert materializes its output.
type ConvertOption func(*convertOptions)

// WithByteLength asserts the source's byte length (for bytes and hex
// sources) or sets the materialized width (for integer sources).
func WithByteLength(n int) ConvertOption {
	return func(o *convertOptions) {
		o.byteLength = n
		o.hasByteLength = true
	}
}

// WithoutLeadingZero renders integer-to-hex conversions with minimal
// digits instead of zero-padded bytes; the value zero renders as "0".
func WithoutLeadingZero() ConvertOption {
	return func(o *convertOptions) {
		o.keepLeadingZero = false
	}
}

// Convert translates data into the target format. Hex-to-binary
// conversion tolerates a single missing leading zero digit, the only
// place an odd-length hex string is accepted.
func Convert(v any, target Format, opts ...ConvertOption) (Value, error) {
	options := convertOptions{keepLeadingZero: true}
	for _, opt := range opts {
		opt(&options)
	}

	val, err := Detect(v)
	if err != nil {
		return Value{}, err
	}

	switch val.format {
	case FormatPrefixHex, FormatRawHex:
		return convertHex(val.digits, target, options)
	case FormatBinary:
		return convertBytes(val.raw, target, options)
	case FormatInteger:
		return convertInteger(val.num, target, options)
	default:
		return Value{}, errors.Wrapf(ErrUnrecognizedType, "format %v", val.format)
	}
}

func convertHex(digits string, target Format, options convertOptions) (Value, error) {
	if options.hasByteLength && len(digits) != 2*options.byteLength {
		return Value{}, errors.Wrapf(ErrLengthMismatch,
			"%d hex digits, expected %d bytes", len(digits), options.byteLength)
	}

	switch target {
	case FormatPrefixHex:
		return Value{format: FormatPrefixHex, digits: digits}, nil
	case FormatRawHex:
		return Value{format: FormatRawHex, digits: digits}, nil
	case FormatBinary:
		if len(digits)%2 == 1 {
			digits = "0" + digits
		}
		raw, err := hex.DecodeString(digits)
		if err != nil {
			return Value{}, errors.Wrapf(err, "decode hex %q", digits)
		}
		return Value{format: FormatBinary, raw: raw}, nil
	case FormatInteger:
		num, ok := new(big.Int).SetString(digits, 16)
		if !ok {
			return Value{}, errors.Errorf("invalid hex integer %q", digits)
		}
		return Value{format: FormatInteger, num: num}, nil
	default:
		return Value{}, errors.Wrapf(ErrUnrecognizedType, "target format %v", target)
	}
}

func convertBytes(raw []byte, target Format, options convertOptions) (Value, error) {
	if options.hasByteLength && len(raw) != options.byteLength {
		return Value{}, errors.Wrapf(ErrLengthMismatch,
			"%d bytes, expected %d", len(raw), options.byteLength)
	}

	switch target {
	case FormatBinary:
		return Value{format: FormatBinary, raw: raw}, nil
	case FormatPrefixHex:
		return Value{format: FormatPrefixHex, digits: hex.EncodeToString(raw)}, nil
	case FormatRawHex:
		return Value{format: FormatRawHex, digits: hex.EncodeToString(raw)}, nil
	case FormatInteger:
		return Value{format: FormatInteger, num: new(big.Int).SetBytes(raw)}, nil
	default:
		return Value{}, errors.Wrapf(ErrUnrecognizedType, "target format %v", target)
	}
}

func convertInteger(num *big.Int, target Format, options convertOptions) (Value, error) {
	if num.Sign() < 0 {
		return Value{}, errors.Wrapf(ErrNegativeValue, "value %s", num)
	}

	if target == FormatInteger {
		return Value{format: FormatInteger, num: num}, nil
	}

	minLength := (num.BitLen() + 7) / 8
	byteLength := minLength
	if options.hasByteLength {
		if options.byteLength < minLength {
			return Value{}, errors.Wrapf(ErrLengthMismatch,
				"value %s needs %d bytes, expected %d", num, minLength, options.byteLength)
		}
		byteLength = options.byteLength
	}
	raw := make([]byte, byteLength)
	num.FillBytes(raw)

	switch target {
	case FormatBinary:
		return Value{format: FormatBinary, raw: raw}, nil
	case FormatPrefixHex, FormatRawHex:
		digits := hex.EncodeToString(raw)
		if !options.keepLeadingZero {
			digits = strings.TrimLeft(digits, "0")
			if num.Sign() == 0 {
				digits = "0"
			}
		}
		return Value{format: target, digits: digits}, nil
	default:
		return Value{}, errors.Wrapf(ErrUnrecognizedType, "target format %v", target)
	}
}
