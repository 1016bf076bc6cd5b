package safe

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// SignatureLength is the fixed size of one in-line signature record.
const SignatureLength = 65

// SignatureKind classifies a parsed signature record.
type SignatureKind int

const (
	// KindECDSA is a plain ECDSA signature over the transaction hash
	// (type byte 27-30).
	KindECDSA SignatureKind = iota + 1
	// KindEthSign is an ECDSA signature whose type byte was shifted by 4
	// to mark an eth_sign flow (type byte >= 31).
	KindEthSign
	// KindEIP1271 points at an out-of-line payload verified by a contract
	// (type byte 0).
	KindEIP1271
	// KindPrevalidated marks an owner approval recorded on-chain
	// (type byte 1).
	KindPrevalidated
)

func (k SignatureKind) String() string {
	switch k {
	case KindECDSA:
		return "ecdsa"
	case KindEthSign:
		return "eth_sign"
	case KindEIP1271:
		return "eip1271"
	case KindPrevalidated:
		return "prevalidated"
	default:
		return fmt.Sprintf("SignatureKind(%d)", int(k))
	}
}

// SignatureRecord is one parsed entry of a packed signature blob. Raw
// always holds the 65 in-line bytes; the remaining fields are populated
// per Kind: R/S/V for ecdsa and eth_sign (V normalized to 27/28 for
// eth_sign), Verifier/Position for eip1271, Validator for prevalidated.
type SignatureRecord struct {
	Kind SignatureKind
	Raw  []byte

	R *big.Int
	S *big.Int
	V byte

	// Verifier is the contract an eip1271 record names as its own
	// signature validator. Resolution trusts this address without calling
	// the contract; Position is the byte offset into the full blob where
	// the contract's verification payload begins, for callers that verify
	// on-chain themselves.
	Verifier common.Address
	Position *big.Int

	Validator common.Address
}

// Hex renders the in-line record bytes as prefixed hex.
func (r SignatureRecord) Hex() string {
	return "0x" + hex.EncodeToString(r.Raw)
}

// ParseSignatures splits a packed signature blob into typed records.
//
// Records are fixed 65-byte frames consumed front to back. EIP-1271
// records point into shared dynamic space at the end of the blob, so the
// in-line region's true length is only known once such a record has been
// seen: consumption stops when the blob is exhausted or when the consumed
// byte count reaches the smallest EIP-1271 position discovered so far.
func ParseSignatures(blob []byte) ([]SignatureRecord, error) {
	var (
		records    []SignatureRecord
		minDynamic *big.Int
		consumed   int
	)
	rest := blob
	for {
		if len(rest) < SignatureLength {
			return nil, errors.Wrapf(ErrTruncatedSignature,
				"%d bytes remain at offset %d", len(rest), consumed)
		}
		record, err := classifySignature(rest[:SignatureLength], len(records))
		if err != nil {
			return nil, err
		}
		rest = rest[SignatureLength:]
		consumed += SignatureLength
		records = append(records, record)

		if record.Kind == KindEIP1271 {
			if minDynamic == nil || record.Position.Cmp(minDynamic) < 0 {
				minDynamic = record.Position
			}
		}

		if len(rest) == 0 {
			break
		}
		if minDynamic != nil && big.NewInt(int64(consumed)).Cmp(minDynamic) >= 0 {
			break
		}
	}
	return records, nil
}

// classifySignature reads the trailing type byte of one 65-byte record and
// extracts its typed fields. The 30/31 boundary between ecdsa and eth_sign
// is exact: 30 is the top of the ecdsa range, 31 is eth_sign with v=27.
func classifySignature(sig []byte, index int) (SignatureRecord, error) {
	raw := make([]byte, SignatureLength)
	copy(raw, sig)

	typeByte := raw[SignatureLength-1]
	switch {
	case typeByte >= 27 && typeByte <= 30:
		return SignatureRecord{
			Kind: KindECDSA,
			Raw:  raw,
			R:    new(big.Int).SetBytes(raw[:32]),
			S:    new(big.Int).SetBytes(raw[32:64]),
			V:    typeByte,
		}, nil
	case typeByte >= 31:
		return SignatureRecord{
			Kind: KindEthSign,
			Raw:  raw,
			R:    new(big.Int).SetBytes(raw[:32]),
			S:    new(big.Int).SetBytes(raw[32:64]),
			V:    typeByte - 4,
		}, nil
	case typeByte == 0:
		return SignatureRecord{
			Kind:     KindEIP1271,
			Raw:      raw,
			Verifier: common.BytesToAddress(raw[:32]),
			Position: new(big.Int).SetBytes(raw[32:64]),
		}, nil
	case typeByte == 1:
		return SignatureRecord{
			Kind:      KindPrevalidated,
			Raw:       raw,
			Validator: common.BytesToAddress(raw[:32]),
		}, nil
	default:
		return SignatureRecord{}, errors.Wrapf(ErrUnknownSignatureType,
			"type byte %d in record %d", typeByte, index)
	}
}
