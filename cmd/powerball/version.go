package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/japaniel/powerball/pkg/draws"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), draws.Version())
		},
	}
}
