// Package convert exposes the binary codec on the command line.
package convert

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mattsse/checkthechain/pkg/binary"
)

func New() *cobra.Command {
	var (
		toFormat      string
		asInteger     bool
		byteLength    int
		noLeadingZero bool
		padTo         int
		padRight      bool
	)

	cmd := &cobra.Command{
		Use:   "convert <data>",
		Short: "Convert binary data between bytes, hex, and integer forms",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var input any = args[0]
			if asInteger {
				n, ok := new(big.Int).SetString(args[0], 10)
				if !ok {
					log.Fatal().Str("data", args[0]).Msg("Input is not a decimal integer")
				}
				input = n
			}

			target, err := binary.ParseFormat(toFormat)
			if err != nil {
				log.Fatal().Err(err).Msg("Unknown target format")
			}

			var opts []binary.ConvertOption
			if cmd.Flags().Changed("bytes") {
				opts = append(opts, binary.WithByteLength(byteLength))
			}
			if noLeadingZero {
				opts = append(opts, binary.WithoutLeadingZero())
			}

			out, err := binary.Convert(input, target, opts...)
			if err != nil {
				log.Fatal().Err(err).Msg("Conversion failed")
			}
			if cmd.Flags().Changed("pad-to") {
				padOpts := []binary.PadOption{binary.WithPaddedSize(padTo)}
				if padRight {
					padOpts = append(padOpts, binary.WithPadRight())
				}
				out, err = binary.Pad(out, padOpts...)
				if err != nil {
					log.Fatal().Err(err).Msg("Padding failed")
				}
			}
			fmt.Println(out.String())
		},
	}

	cmd.Flags().StringVar(&toFormat, "to", "prefix_hex", "Target format: binary, prefix_hex, raw_hex, or integer")
	cmd.Flags().BoolVar(&asInteger, "integer", false, "Treat the input as a decimal integer instead of hex")
	cmd.Flags().IntVar(&byteLength, "bytes", 0, "Expected or materialized byte length")
	cmd.Flags().BoolVar(&noLeadingZero, "no-leading-zero", false, "Render integers with minimal hex digits")
	cmd.Flags().IntVar(&padTo, "pad-to", 0, "Zero-pad the result to this many bytes")
	cmd.Flags().BoolVar(&padRight, "pad-right", false, "Pad on the right side instead of the left")

	return cmd
}
