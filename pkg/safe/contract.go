// Package safe implements the Safe multisig wallet signature protocol:
// splitting a packed signature blob into typed records, resolving each
// record to a signer address, and computing the EIP-712 transaction hash
// owners sign over.
//
// Signature encoding reference: https://docs.safe.global/advanced/smart-account-signatures
package safe

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// execTransactionJSON is the ABI fragment for GnosisSafe.execTransaction,
// the function whose call data carries a transaction and its signatures.
const execTransactionJSON = `[{
	"inputs": [
		{"internalType": "address", "name": "to", "type": "address"},
		{"internalType": "uint256", "name": "value", "type": "uint256"},
		{"internalType": "bytes", "name": "data", "type": "bytes"},
		{"internalType": "uint8", "name": "operation", "type": "uint8"},
		{"internalType": "uint256", "name": "safeTxGas", "type": "uint256"},
		{"internalType": "uint256", "name": "baseGas", "type": "uint256"},
		{"internalType": "uint256", "name": "gasPrice", "type": "uint256"},
		{"internalType": "address", "name": "gasToken", "type": "address"},
		{"internalType": "address payable", "name": "refundReceiver", "type": "address"},
		{"internalType": "bytes", "name": "signatures", "type": "bytes"}
	],
	"name": "execTransaction",
	"outputs": [{"internalType": "bool", "name": "success", "type": "bool"}],
	"stateMutability": "payable",
	"type": "function"
}]`

var execTransactionABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(execTransactionJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// ExecTransactionSelector is the 4-byte selector of execTransaction
// (0x6a761202).
var ExecTransactionSelector = execTransactionABI.Methods["execTransaction"].ID

// EIP1271MagicValue is the bytes4 value isValidSignature(bytes32,bytes)
// returns when a contract accepts a signature. This package never performs
// that call; it is exported for callers that verify contract signatures
// on-chain themselves.
var EIP1271MagicValue = [4]byte{0x16, 0x26, 0xba, 0x7e}

// safeTxTypes is the EIP-712 type descriptor set of the Safe contract.
// The domain binds hashes to a chain id and the Safe's own address.
var safeTxTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"SafeTx": {
		{Name: "to", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "data", Type: "bytes"},
		{Name: "operation", Type: "uint8"},
		{Name: "safeTxGas", Type: "uint256"},
		{Name: "baseGas", Type: "uint256"},
		{Name: "gasPrice", Type: "uint256"},
		{Name: "gasToken", Type: "address"},
		{Name: "refundReceiver", Type: "address"},
		{Name: "nonce", Type: "uint256"},
	},
}
