package safe

import "github.com/pkg/errors"

var (
	// ErrTruncatedSignature means fewer than 65 bytes remained where a
	// full in-line signature record was expected.
	ErrTruncatedSignature = errors.New("truncated signature record")

	// ErrUnknownSignatureType means a record's trailing type byte falls
	// outside the defined ranges.
	ErrUnknownSignatureType = errors.New("unknown signature type")

	// ErrInvalidSignature means cryptographic recovery rejected a record.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrMissingInputs means neither a transaction hash nor the full
	// ingredient set to build one was supplied.
	ErrMissingInputs = errors.New("must supply transaction hash or {call data, nonce, chain id, safe address}")
)
