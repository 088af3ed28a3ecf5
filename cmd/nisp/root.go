package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "nisp",
		Short:         "Nextpnr-fpga_Interchange Site Preprocessor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPreprocessCommand(logger))
	root.AddCommand(newRoutePairCommand(logger))
	return root
}
