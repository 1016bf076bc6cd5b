// Package safetx exposes the Safe signature protocol on the command line:
// parsing packed signature blobs, resolving signer addresses, and
// computing transaction hashes.
package safetx

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mattsse/checkthechain/pkg/binary"
	"github.com/mattsse/checkthechain/pkg/safe"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safetx",
		Short: "Inspect Safe multisig transactions and signatures",
	}

	cmd.AddCommand(newParseCmd(), newSignersCmd(), newHashCmd())
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <signatures-hex>",
		Short: "Split a packed signature blob into typed records",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			blob, err := decodeHexArg(args[0])
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to decode signature blob")
			}
			records, err := safe.ParseSignatures(blob)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to parse signatures")
			}
			for i, record := range records {
				event := log.Info().
					Int("record", i).
					Str("kind", record.Kind.String()).
					Str("signature", record.Hex())
				switch record.Kind {
				case safe.KindECDSA, safe.KindEthSign:
					event = event.
						Str("r", record.R.Text(16)).
						Str("s", record.S.Text(16)).
						Uint8("v", record.V)
				case safe.KindEIP1271:
					event = event.
						Str("verifier", record.Verifier.Hex()).
						Str("position", record.Position.String())
				case safe.KindPrevalidated:
					event = event.Str("validator", record.Validator.Hex())
				}
				event.Msg("Signature record")
			}
		},
	}
}

func newSignersCmd() *cobra.Command {
	var (
		hashHex     string
		sigsHex     string
		callDataHex string
		nonceStr    string
		chainIDStr  string
		safeAddr    string
	)

	cmd := &cobra.Command{
		Use:   "signers",
		Short: "Resolve the signer addresses of a Safe transaction",
		Run: func(cmd *cobra.Command, args []string) {
			query := safe.SignerQuery{}

			if hashHex != "" {
				raw, err := decodeHexArg(hashHex)
				if err != nil || len(raw) != common.HashLength {
					log.Fatal().Str("hash", hashHex).Msg("Transaction hash must be 32 bytes of hex")
				}
				hash := common.BytesToHash(raw)
				query.TransactionHash = &hash
			}
			if sigsHex != "" {
				blob, err := decodeHexArg(sigsHex)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to decode signature blob")
				}
				query.SignatureBlob = blob
			}
			if callDataHex != "" {
				callData, err := decodeHexArg(callDataHex)
				if err != nil {
					log.Fatal().Err(err).Msg("Failed to decode call data")
				}
				query.CallData = callData
			}
			if nonceStr != "" {
				query.Nonce = parseBigFlag("nonce", nonceStr)
			}
			if chainIDStr != "" {
				query.ChainID = parseBigFlag("chain-id", chainIDStr)
			}
			if safeAddr != "" {
				query.SafeAddress = common.HexToAddress(safeAddr)
			}

			signers, err := safe.QuerySigners(query)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to resolve signers")
			}
			for i, signer := range signers {
				fmt.Printf("%d\t%s\n", i, signer.Hex())
			}
		},
	}

	cmd.Flags().StringVar(&hashHex, "hash", "", "Precomputed safe transaction hash (32 bytes hex)")
	cmd.Flags().StringVar(&sigsHex, "signatures", "", "Packed signature blob (hex), defaults to the call data's signatures")
	cmd.Flags().StringVar(&callDataHex, "calldata", "", "execTransaction call data (hex)")
	cmd.Flags().StringVar(&nonceStr, "nonce", "", "Safe nonce at signing time (decimal)")
	cmd.Flags().StringVar(&chainIDStr, "chain-id", "", "Chain id (decimal)")
	cmd.Flags().StringVar(&safeAddr, "safe", "", "Safe contract address")

	return cmd
}

func newHashCmd() *cobra.Command {
	var (
		to             string
		valueStr       string
		dataHex        string
		operation      uint8
		safeTxGasStr   string
		baseGasStr     string
		gasPriceStr    string
		gasToken       string
		refundReceiver string
		nonceStr       string
		chainIDStr     string
		safeAddr       string
	)

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute the EIP-712 hash Safe owners sign",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := decodeHexArg(dataHex)
			if dataHex != "" && err != nil {
				log.Fatal().Err(err).Msg("Failed to decode transaction data")
			}
			tx := safe.SafeTransaction{
				To:             common.HexToAddress(to),
				Value:          parseBigFlag("value", valueStr),
				Data:           data,
				Operation:      operation,
				SafeTxGas:      parseBigFlag("safe-tx-gas", safeTxGasStr),
				BaseGas:        parseBigFlag("base-gas", baseGasStr),
				GasPrice:       parseBigFlag("gas-price", gasPriceStr),
				GasToken:       common.HexToAddress(gasToken),
				RefundReceiver: common.HexToAddress(refundReceiver),
				Nonce:          parseBigFlag("nonce", nonceStr),
			}
			hash, err := safe.TransactionHash(tx, parseBigFlag("chain-id", chainIDStr), common.HexToAddress(safeAddr))
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to hash safe transaction")
			}
			fmt.Println(hash.Hex())
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination address")
	cmd.Flags().StringVar(&valueStr, "value", "0", "Wei value (decimal)")
	cmd.Flags().StringVar(&dataHex, "data", "", "Call data (hex)")
	cmd.Flags().Uint8Var(&operation, "operation", 0, "0 for call, 1 for delegatecall")
	cmd.Flags().StringVar(&safeTxGasStr, "safe-tx-gas", "0", "Gas for the inner safe transaction (decimal)")
	cmd.Flags().StringVar(&baseGasStr, "base-gas", "0", "Base gas (decimal)")
	cmd.Flags().StringVar(&gasPriceStr, "gas-price", "0", "Gas price for refund accounting (decimal)")
	cmd.Flags().StringVar(&gasToken, "gas-token", "", "Refund token address, empty for ether")
	cmd.Flags().StringVar(&refundReceiver, "refund-receiver", "", "Refund receiver address")
	cmd.Flags().StringVar(&nonceStr, "nonce", "0", "Safe nonce at signing time (decimal)")
	cmd.Flags().StringVar(&chainIDStr, "chain-id", "1", "Chain id (decimal)")
	cmd.Flags().StringVar(&safeAddr, "safe", "", "Safe contract address")

	return cmd
}

// decodeHexArg accepts prefixed or raw hex via the binary codec.
func decodeHexArg(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.New("empty hex input")
	}
	val, err := binary.Convert(s, binary.FormatBinary)
	if err != nil {
		return nil, err
	}
	return val.Bytes()
}

func parseBigFlag(name, s string) *big.Int {
	if s == "" {
		return new(big.Int)
	}
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		log.Fatal().Str(name, s).Msg("Flag must be a decimal integer")
	}
	return n
}
