package binary

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// AsciiToRawHex hex-encodes an ASCII string without a prefix.
func AsciiToRawHex(s string) (string, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return "", errors.Errorf("non-ASCII byte 0x%02x at index %d", s[i], i)
		}
	}
	return hex.EncodeToString([]byte(s)), nil
}

// AsciiToPrefixHex hex-encodes an ASCII string with a "0x" prefix.
func AsciiToPrefixHex(s string) (string, error) {
	raw, err := AsciiToRawHex(s)
	if err != nil {
		return "", err
	}
	return "0x" + raw, nil
}

// HexToASCII decodes a hex string (prefixed or raw) into the ASCII text
// it encodes.
func HexToASCII(s string) (string, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Wrapf(err, "decode hex %q", s)
	}
	for i, b := range raw {
		if b > unicode.MaxASCII {
			return "", errors.Errorf("non-ASCII byte 0x%02x at index %d", b, i)
		}
	}
	return string(raw), nil
}
