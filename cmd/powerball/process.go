package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/powerball/pkg/config"
	"github.com/japaniel/powerball/pkg/pipeline"
)

func newProcessCmd(logger *zap.Logger) *cobra.Command {
	var configPath, rawDir, processedDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Clean every raw export in a directory using concurrent workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if rawDir != "" {
				cfg.RawDir = rawDir
			}
			if processedDir != "" {
				cfg.ProcessedDir = processedDir
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			runner := pipeline.NewRunner()
			runner.Workers = cfg.Workers
			runner.Logger = logger

			results, err := runner.Process(cmd.Context(), cfg.RawDir, cfg.ProcessedDir)
			for _, res := range results {
				if res.Err != nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Processed %s -> %s\n", res.Input, res.OutDir)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&rawDir, "raw", "", "directory of raw exports (overrides config)")
	cmd.Flags().StringVar(&processedDir, "processed", "", "directory for cleaned outputs (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (overrides config)")
	return cmd
}
