package safe

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransaction() SafeTransaction {
	return SafeTransaction{
		To:             common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Value:          big.NewInt(1000000000000000000),
		Data:           []byte{0xca, 0xfe, 0xba, 0xbe},
		Operation:      0,
		SafeTxGas:      big.NewInt(60000),
		BaseGas:        big.NewInt(21000),
		GasPrice:       big.NewInt(0),
		GasToken:       common.Address{},
		RefundReceiver: common.Address{},
		Nonce:          big.NewInt(7),
	}
}

// manualTransactionHash re-derives the digest with hand-rolled EIP-712
// encoding, independent of the apitypes implementation.
func manualTransactionHash(tx SafeTransaction, chainID *big.Int, safeAddress common.Address) common.Hash {
	pad := func(b []byte) []byte {
		out := make([]byte, 32)
		copy(out[32-len(b):], b)
		return out
	}

	domainTypeHash := crypto.Keccak256([]byte(
		"EIP712Domain(uint256 chainId,address verifyingContract)",
	))
	safeTxTypeHash := crypto.Keccak256([]byte(
		"SafeTx(address to,uint256 value,bytes data,uint8 operation," +
			"uint256 safeTxGas,uint256 baseGas,uint256 gasPrice," +
			"address gasToken,address refundReceiver,uint256 nonce)",
	))

	domainSeparator := crypto.Keccak256(
		domainTypeHash,
		pad(chainID.Bytes()),
		pad(safeAddress.Bytes()),
	)
	structHash := crypto.Keccak256(
		safeTxTypeHash,
		pad(tx.To.Bytes()),
		pad(tx.Value.Bytes()),
		crypto.Keccak256(tx.Data),
		pad([]byte{tx.Operation}),
		pad(tx.SafeTxGas.Bytes()),
		pad(tx.BaseGas.Bytes()),
		pad(tx.GasPrice.Bytes()),
		pad(tx.GasToken.Bytes()),
		pad(tx.RefundReceiver.Bytes()),
		pad(tx.Nonce.Bytes()),
	)
	return common.BytesToHash(crypto.Keccak256(
		[]byte{0x19, 0x01},
		domainSeparator,
		structHash,
	))
}

func TestTransactionHashMatchesManualEncoding(t *testing.T) {
	tx := testTransaction()
	chainID := big.NewInt(1)
	safeAddress := common.HexToAddress("0x2222222222222222222222222222222222222222")

	hash, err := TransactionHash(tx, chainID, safeAddress)
	require.NoError(t, err)
	assert.Equal(t, manualTransactionHash(tx, chainID, safeAddress), hash)
}

func TestTransactionHashSensitivity(t *testing.T) {
	tx := testTransaction()
	chainID := big.NewInt(1)
	safeAddress := common.HexToAddress("0x2222222222222222222222222222222222222222")

	base, err := TransactionHash(tx, chainID, safeAddress)
	require.NoError(t, err)

	again, err := TransactionHash(tx, chainID, safeAddress)
	require.NoError(t, err)
	assert.Equal(t, base, again, "hashing must be deterministic")

	bumped := tx
	bumped.Nonce = big.NewInt(8)
	withNonce, err := TransactionHash(bumped, chainID, safeAddress)
	require.NoError(t, err)
	assert.NotEqual(t, base, withNonce)

	otherChain, err := TransactionHash(tx, big.NewInt(5), safeAddress)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherChain)

	otherSafe, err := TransactionHash(tx, chainID, common.HexToAddress("0x3333333333333333333333333333333333333333"))
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSafe)
}

func TestTransactionHashNilFieldsAreZero(t *testing.T) {
	chainID := big.NewInt(100)
	safeAddress := common.HexToAddress("0x4444444444444444444444444444444444444444")

	sparse := SafeTransaction{To: common.HexToAddress("0x1111111111111111111111111111111111111111")}
	explicit := SafeTransaction{
		To:        sparse.To,
		Value:     new(big.Int),
		Data:      []byte{},
		SafeTxGas: new(big.Int),
		BaseGas:   new(big.Int),
		GasPrice:  new(big.Int),
		Nonce:     new(big.Int),
	}

	a, err := TransactionHash(sparse, chainID, safeAddress)
	require.NoError(t, err)
	b, err := TransactionHash(explicit, chainID, safeAddress)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTransactionHashRequiresChainID(t *testing.T) {
	_, err := TransactionHash(testTransaction(), nil, common.Address{})
	require.Error(t, err)
}
