package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mattsse/checkthechain/cmd/convert"
	"github.com/mattsse/checkthechain/cmd/safetx"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "ctc",
		Short: "Safe multisig transaction and binary data tools",
	}
	root.AddCommand(safetx.New())
	root.AddCommand(convert.New())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
