package safe

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// decodeExecTransaction unpacks execTransaction call data into its named
// parameters. ABI decoding itself is delegated to go-ethereum.
func decodeExecTransaction(callData []byte) (map[string]interface{}, error) {
	if len(callData) < 4 {
		return nil, errors.Errorf("call data too short: %d bytes", len(callData))
	}
	if !bytes.Equal(callData[:4], ExecTransactionSelector) {
		return nil, errors.Errorf("call data selector 0x%x is not execTransaction (0x%x)",
			callData[:4], ExecTransactionSelector)
	}
	params := map[string]interface{}{}
	method := execTransactionABI.Methods["execTransaction"]
	if err := method.Inputs.UnpackIntoMap(params, callData[4:]); err != nil {
		return nil, errors.Wrap(err, "decode execTransaction call data")
	}
	return params, nil
}

// TransactionFromCallData rebuilds a SafeTransaction from execTransaction
// call data. The wallet's nonce is not embedded in call data, the caller
// supplies it separately.
func TransactionFromCallData(callData []byte, nonce *big.Int) (SafeTransaction, error) {
	params, err := decodeExecTransaction(callData)
	if err != nil {
		return SafeTransaction{}, err
	}
	return SafeTransaction{
		To:             params["to"].(common.Address),
		Value:          params["value"].(*big.Int),
		Data:           params["data"].([]byte),
		Operation:      params["operation"].(uint8),
		SafeTxGas:      params["safeTxGas"].(*big.Int),
		BaseGas:        params["baseGas"].(*big.Int),
		GasPrice:       params["gasPrice"].(*big.Int),
		GasToken:       params["gasToken"].(common.Address),
		RefundReceiver: params["refundReceiver"].(common.Address),
		Nonce:          bigOrZero(nonce),
	}, nil
}

// SignaturesFromCallData extracts the packed signature blob from
// execTransaction call data and parses it into typed records.
func SignaturesFromCallData(callData []byte) ([]SignatureRecord, error) {
	params, err := decodeExecTransaction(callData)
	if err != nil {
		return nil, err
	}
	return ParseSignatures(params["signatures"].([]byte))
}

// SignerQuery bundles the alternative inputs for resolving the signers of
// a Safe transaction. Signatures may arrive pre-parsed, as a packed blob,
// or embedded in call data; the transaction hash may arrive precomputed
// or be derived from {CallData, Nonce, ChainID, SafeAddress}.
type SignerQuery struct {
	TransactionHash *common.Hash
	Signatures      []SignatureRecord
	SignatureBlob   []byte
	CallData        []byte
	Nonce           *big.Int
	ChainID         *big.Int
	SafeAddress     common.Address
}

// QuerySigners resolves the ordered signer addresses of a Safe
// transaction from whichever inputs the query carries, failing with
// ErrMissingInputs when neither a hash nor the full ingredient set to
// build one is present.
func QuerySigners(q SignerQuery) ([]common.Address, error) {
	records := q.Signatures
	if records == nil {
		switch {
		case q.SignatureBlob != nil:
			parsed, err := ParseSignatures(q.SignatureBlob)
			if err != nil {
				return nil, err
			}
			records = parsed
		case q.CallData != nil:
			parsed, err := SignaturesFromCallData(q.CallData)
			if err != nil {
				return nil, err
			}
			records = parsed
		default:
			return nil, errors.Wrap(ErrMissingInputs, "no signatures, signature blob, or call data")
		}
	}

	if q.TransactionHash != nil {
		return TransactionSigners(*q.TransactionHash, records)
	}
	if q.CallData == nil || q.Nonce == nil || q.ChainID == nil || q.SafeAddress == (common.Address{}) {
		return nil, errors.WithStack(ErrMissingInputs)
	}
	tx, err := TransactionFromCallData(q.CallData, q.Nonce)
	if err != nil {
		return nil, err
	}
	hash, err := TransactionHash(tx, q.ChainID, q.SafeAddress)
	if err != nil {
		return nil, err
	}
	return TransactionSigners(hash, records)
}
