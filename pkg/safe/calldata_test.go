package safe

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packExecTransaction builds execTransaction call data with the same ABI
// the decoder uses.
func packExecTransaction(t *testing.T, tx SafeTransaction, signatures []byte) []byte {
	t.Helper()
	callData, err := execTransactionABI.Pack("execTransaction",
		tx.To,
		bigOrZero(tx.Value),
		tx.Data,
		tx.Operation,
		bigOrZero(tx.SafeTxGas),
		bigOrZero(tx.BaseGas),
		bigOrZero(tx.GasPrice),
		tx.GasToken,
		tx.RefundReceiver,
		signatures,
	)
	require.NoError(t, err)
	return callData
}

func TestExecTransactionSelector(t *testing.T) {
	// execTransaction(address,uint256,bytes,uint8,uint256,uint256,uint256,address,address,bytes)
	assert.Equal(t, []byte{0x6a, 0x76, 0x12, 0x02}, ExecTransactionSelector)
}

func TestTransactionFromCallData(t *testing.T) {
	tx := testTransaction()
	callData := packExecTransaction(t, tx, []byte{})

	// The nonce is not part of call data; the caller supplies it.
	decoded, err := TransactionFromCallData(callData, big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, tx.To, decoded.To)
	assert.Zero(t, tx.Value.Cmp(decoded.Value))
	assert.Equal(t, tx.Data, decoded.Data)
	assert.Equal(t, tx.Operation, decoded.Operation)
	assert.Zero(t, tx.SafeTxGas.Cmp(decoded.SafeTxGas))
	assert.Zero(t, tx.BaseGas.Cmp(decoded.BaseGas))
	assert.Zero(t, tx.GasPrice.Cmp(decoded.GasPrice))
	assert.Equal(t, tx.GasToken, decoded.GasToken)
	assert.Equal(t, tx.RefundReceiver, decoded.RefundReceiver)
	assert.Equal(t, int64(42), decoded.Nonce.Int64())
}

func TestTransactionFromCallDataRejectsWrongSelector(t *testing.T) {
	_, err := TransactionFromCallData([]byte{0xde, 0xad, 0xbe, 0xef, 0x00}, big.NewInt(0))
	require.Error(t, err)

	_, err = TransactionFromCallData([]byte{0x6a}, big.NewInt(0))
	require.Error(t, err)
}

func TestSignaturesFromCallData(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	hash := crypto.Keccak256Hash([]byte("payload"))
	sig, err := crypto.Sign(hash.Bytes(), key)
	require.NoError(t, err)

	record := make([]byte, SignatureLength)
	copy(record, sig[:64])
	record[64] = sig[64] + 27

	callData := packExecTransaction(t, testTransaction(), record)
	records, err := SignaturesFromCallData(callData)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, KindECDSA, records[0].Kind)
	assert.Equal(t, record, records[0].Raw)
}

func TestQuerySignersEndToEnd(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	chainID := big.NewInt(1)
	safeAddress := common.HexToAddress("0x5555555555555555555555555555555555555555")
	nonce := big.NewInt(13)

	tx := testTransaction()
	tx.Nonce = nonce

	hash, err := TransactionHash(tx, chainID, safeAddress)
	require.NoError(t, err)
	sig, err := crypto.Sign(hash.Bytes(), key)
	require.NoError(t, err)

	record := make([]byte, SignatureLength)
	copy(record, sig[:64])
	record[64] = sig[64] + 27

	callData := packExecTransaction(t, tx, record)

	// Derive both the signatures and the hash from call data alone.
	signers, err := QuerySigners(SignerQuery{
		CallData:    callData,
		Nonce:       nonce,
		ChainID:     chainID,
		SafeAddress: safeAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, []common.Address{owner}, signers)

	// A precomputed hash takes precedence over derivation.
	signers, err = QuerySigners(SignerQuery{
		TransactionHash: &hash,
		SignatureBlob:   record,
	})
	require.NoError(t, err)
	assert.Equal(t, []common.Address{owner}, signers)
}

func TestQuerySignersMissingInputs(t *testing.T) {
	record := make([]byte, SignatureLength)
	record[64] = 1

	// Signatures present but no hash and no hash ingredients.
	_, err := QuerySigners(SignerQuery{SignatureBlob: record})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingInputs)

	// Ingredients incomplete: nonce missing.
	_, err = QuerySigners(SignerQuery{
		SignatureBlob: record,
		CallData:      []byte{0x01},
		ChainID:       big.NewInt(1),
		SafeAddress:   common.HexToAddress("0x5555555555555555555555555555555555555555"),
	})
	assert.ErrorIs(t, err, ErrMissingInputs)

	// Nothing at all.
	_, err = QuerySigners(SignerQuery{})
	assert.ErrorIs(t, err, ErrMissingInputs)
}
