package binary

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  Format
	}{
		{"bytes", []byte{0x01, 0x02}, FormatBinary},
		{"prefixed hex", "0x1234", FormatPrefixHex},
		{"raw hex", "1234", FormatRawHex},
		{"int", 7, FormatInteger},
		{"uint64", uint64(7), FormatInteger},
		{"big int", big.NewInt(7), FormatInteger},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			format, err := DetectFormat(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, format)
		})
	}
}

func TestDetectFormatRejectsUnknownTypes(t *testing.T) {
	_, err := DetectFormat(struct{}{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedType)

	_, err = DetectFormat(3.14)
	assert.ErrorIs(t, err, ErrUnrecognizedType)
}

func TestByteLength(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int
	}{
		{"bytes", []byte{1, 2, 3}, 3},
		{"empty bytes", []byte{}, 0},
		{"prefixed hex", "0x1234", 2},
		{"raw hex", "1234", 2},
		{"empty prefixed hex", "0x", 0},
		{"zero", 0, 0},
		{"one byte", 255, 1},
		{"two bytes", 256, 2},
		{"32 bytes", new(big.Int).Lsh(big.NewInt(1), 255), 32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ByteLength(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestByteLengthOddHexFails(t *testing.T) {
	_, err := ByteLength("0x123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOddLength)

	_, err = ByteLength("123")
	assert.ErrorIs(t, err, ErrOddLength)
}

func TestByteLengthNegativeIntegerFails(t *testing.T) {
	_, err := ByteLength(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeValue)

	_, err = ByteLength(big.NewInt(-255))
	assert.ErrorIs(t, err, ErrNegativeValue)
}
