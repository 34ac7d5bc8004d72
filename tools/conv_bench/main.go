package main

import (
	"log"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eon-protocol/fieldbench"
)

func main() {
	if err := command().Execute(); err != nil {
		log.Fatalln(err)
	}
}

func command() *cobra.Command {
	return &cobra.Command{
		Use:   "conv_bench",
		Short: "Compares Goldilocks field arithmetic throughput against raw uint64 arithmetic",
		Long: "Runs a squaring chain and two convolutions over 32 parallel lanes and prints one bitrate per benchmark.\n" +
			"The convolution benchmarks hold several gigabytes of random input; the run aborts if the host has less available.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}
			logger.Set(zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger())

			_, err := fieldbench.Run(fieldbench.DefaultParams(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}
}
