package safe

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// RecoverSignerAddress recovers the address that produced an ECDSA
// signature over hash. v is accepted in the canonical 27/28 range or as a
// raw 0/1 recovery id.
func RecoverSignerAddress(hash common.Hash, v byte, r, s *big.Int) (common.Address, error) {
	if r == nil || s == nil {
		return common.Address{}, errors.Wrap(ErrInvalidSignature, "nil r or s")
	}
	if r.Sign() < 0 || s.Sign() < 0 || r.BitLen() > 256 || s.BitLen() > 256 {
		return common.Address{}, errors.Wrap(ErrInvalidSignature, "r and s must be 256-bit unsigned")
	}

	sig := make([]byte, SignatureLength)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:64])
	recoveryID := v
	if recoveryID >= 27 {
		recoveryID -= 27
	}
	sig[SignatureLength-1] = recoveryID

	pubkey, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return common.Address{}, errors.Wrapf(ErrInvalidSignature, "recover: %v", err)
	}
	return crypto.PubkeyToAddress(*pubkey), nil
}

// TransactionSigners resolves classified signature records to signer
// addresses, in input order. ECDSA and eth_sign records go through
// cryptographic recovery against hash; eip1271 and prevalidated records
// resolve to their embedded addresses directly, without calling the
// verifying contract (a trust assumption carried from the protocol, see
// SignatureRecord.Verifier).
func TransactionSigners(hash common.Hash, records []SignatureRecord) ([]common.Address, error) {
	signers := make([]common.Address, 0, len(records))
	for i, record := range records {
		switch record.Kind {
		case KindECDSA, KindEthSign:
			signer, err := RecoverSignerAddress(hash, record.V, record.R, record.S)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d", i)
			}
			signers = append(signers, signer)
		case KindEIP1271:
			signers = append(signers, record.Verifier)
		case KindPrevalidated:
			signers = append(signers, record.Validator)
		default:
			return nil, errors.Wrapf(ErrUnknownSignatureType, "record %d kind %v", i, record.Kind)
		}
	}
	return signers, nil
}

// TransactionSignersFromBlob parses a packed signature blob and resolves
// every record to a signer address.
func TransactionSignersFromBlob(hash common.Hash, blob []byte) ([]common.Address, error) {
	records, err := ParseSignatures(blob)
	if err != nil {
		return nil, err
	}
	return TransactionSigners(hash, records)
}
