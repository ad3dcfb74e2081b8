package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "powerball",
		Short:        "Clean Powerball draw exports and load them into a database",
		SilenceUsage: true,
	}
	root.AddCommand(
		newFetchCmd(logger),
		newCleanCmd(logger),
		newProcessCmd(logger),
		newLoadCmd(logger),
		newVersionCmd(),
	)
	return root
}
