package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/powerball/pkg/pipeline"
)

func newCleanCmd(logger *zap.Logger) *cobra.Command {
	var inPath, outDir string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean one raw export into wide and long CSVs plus a data dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.Clean(inPath, outDir)
			if err != nil {
				return err
			}
			logger.Info("cleaned draw file",
				zap.String("input", inPath),
				zap.Int("draws", res.WideRows))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.WidePath)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.LongPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", res.DictPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to the raw export (csv or xlsx)")
	cmd.Flags().StringVar(&outDir, "outdir", "out", "directory for the cleaned outputs")
	cmd.MarkFlagRequired("in")
	return cmd
}
