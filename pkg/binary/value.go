// Package binary converts between the four representations of EVM binary
// data: raw bytes, "0x"-prefixed hex, unprefixed hex, and unsigned
// arbitrary-precision integers. It is the substrate the safe package
// builds on; conversions are lossless up to leading-zero padding.
package binary

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// Format identifies one of the four binary data representations.
type Format int

const (
	FormatBinary Format = iota + 1
	FormatPrefixHex
	FormatRawHex
	FormatInteger
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatPrefixHex:
		return "prefix_hex"
	case FormatRawHex:
		return "raw_hex"
	case FormatInteger:
		return "integer"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "binary":
		return FormatBinary, nil
	case "prefix_hex":
		return FormatPrefixHex, nil
	case "raw_hex":
		return FormatRawHex, nil
	case "integer":
		return FormatInteger, nil
	default:
		return 0, errors.Wrapf(ErrUnrecognizedType, "format name %q", name)
	}
}

// Value is a closed tagged union over the four representations. Values are
// immutable; constructors copy their inputs and accessors return copies.
type Value struct {
	format Format
	raw    []byte   // FormatBinary
	digits string   // FormatPrefixHex / FormatRawHex, prefix stripped
	num    *big.Int // FormatInteger
}

// FromBytes wraps raw bytes as a binary-format value.
func FromBytes(b []byte) Value {
	raw := make([]byte, len(b))
	copy(raw, b)
	return Value{format: FormatBinary, raw: raw}
}

// FromHex wraps a hex string, classifying it as prefix_hex when it starts
// with "0x" and raw_hex otherwise. The digits are not validated here;
// conversion to binary or integer form validates them.
func FromHex(s string) Value {
	if strings.HasPrefix(s, "0x") {
		return Value{format: FormatPrefixHex, digits: s[2:]}
	}
	return Value{format: FormatRawHex, digits: s}
}

// FromInt wraps an arbitrary-precision integer.
func FromInt(n *big.Int) Value {
	return Value{format: FormatInteger, num: new(big.Int).Set(n)}
}

// FromUint64 wraps a machine integer.
func FromUint64(n uint64) Value {
	return Value{format: FormatInteger, num: new(big.Int).SetUint64(n)}
}

// Detect classifies dynamically-typed data into a Value. Byte slices are
// binary, strings are hex (prefixed or raw), Go integer kinds and big.Int
// are integer. Anything else fails with ErrUnrecognizedType.
func Detect(v any) (Value, error) {
	switch data := v.(type) {
	case Value:
		return data, nil
	case []byte:
		return FromBytes(data), nil
	case string:
		return FromHex(data), nil
	case int:
		return Value{format: FormatInteger, num: big.NewInt(int64(data))}, nil
	case int64:
		return Value{format: FormatInteger, num: big.NewInt(data)}, nil
	case uint:
		return FromUint64(uint64(data)), nil
	case uint64:
		return FromUint64(data), nil
	case *big.Int:
		return FromInt(data), nil
	case big.Int:
		return FromInt(&data), nil
	default:
		return Value{}, errors.Wrapf(ErrUnrecognizedType, "type %T", v)
	}
}

// Format reports which representation the value holds.
func (v Value) Format() Format {
	return v.format
}

// Bytes materializes the value as raw bytes.
func (v Value) Bytes() ([]byte, error) {
	converted, err := Convert(v, FormatBinary)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(converted.raw))
	copy(out, converted.raw)
	return out, nil
}

// Int materializes the value as an unsigned integer.
func (v Value) Int() (*big.Int, error) {
	converted, err := Convert(v, FormatInteger)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(converted.num), nil
}

// Hex materializes the value as a "0x"-prefixed hex string.
func (v Value) Hex() (string, error) {
	converted, err := Convert(v, FormatPrefixHex)
	if err != nil {
		return "", err
	}
	return converted.String(), nil
}

// String renders the value in its own format: binary as prefixed hex,
// hex forms verbatim, integers in decimal.
func (v Value) String() string {
	switch v.format {
	case FormatBinary:
		return "0x" + hex.EncodeToString(v.raw)
	case FormatPrefixHex:
		return "0x" + v.digits
	case FormatRawHex:
		return v.digits
	case FormatInteger:
		return v.num.String()
	default:
		return "<invalid>"
	}
}
