package safe

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
)

// SafeTransaction holds the fields a Safe hashes and requires threshold
// signatures over before execution. Nonce is the wallet's on-chain nonce;
// it is never part of execTransaction call data and must be tracked by
// the caller.
type SafeTransaction struct {
	To             common.Address
	Value          *big.Int
	Data           []byte
	Operation      uint8
	SafeTxGas      *big.Int
	BaseGas        *big.Int
	GasPrice       *big.Int
	GasToken       common.Address
	RefundReceiver common.Address
	Nonce          *big.Int
}

// TransactionHash computes the EIP-712 digest Safe owners sign:
// keccak256("\x19\x01" || domainSeparator || structHash) with the domain
// bound to the chain id and the Safe's own address. Nil big.Int fields
// are treated as zero.
func TransactionHash(tx SafeTransaction, chainID *big.Int, safeAddress common.Address) (common.Hash, error) {
	if chainID == nil {
		return common.Hash{}, errors.New("chain id is required")
	}

	data := tx.Data
	if data == nil {
		data = []byte{}
	}
	typedData := apitypes.TypedData{
		Types:       safeTxTypes,
		PrimaryType: "SafeTx",
		Domain: apitypes.TypedDataDomain{
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).Set(chainID)),
			VerifyingContract: safeAddress.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"to":             tx.To.Hex(),
			"value":          bigOrZero(tx.Value),
			"data":           data,
			"operation":      new(big.Int).SetUint64(uint64(tx.Operation)),
			"safeTxGas":      bigOrZero(tx.SafeTxGas),
			"baseGas":        bigOrZero(tx.BaseGas),
			"gasPrice":       bigOrZero(tx.GasPrice),
			"gasToken":       tx.GasToken.Hex(),
			"refundReceiver": tx.RefundReceiver.Hex(),
			"nonce":          bigOrZero(tx.Nonce),
		},
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "hash safe transaction")
	}
	return common.BytesToHash(digest), nil
}

func bigOrZero(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return n
}
