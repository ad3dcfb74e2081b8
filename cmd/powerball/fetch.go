package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/japaniel/powerball/pkg/fetch"
)

func newFetchCmd(logger *zap.Logger) *cobra.Command {
	var url, out string
	var force bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the raw winning-numbers export",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if force {
				err = fetch.Download(cmd.Context(), url, out)
			} else {
				err = fetch.Ensure(cmd.Context(), out, url)
			}
			if err != nil {
				return err
			}
			logger.Info("raw export ready", zap.String("path", out), zap.String("url", url))
			fmt.Fprintf(cmd.OutOrStdout(), "Raw export ready at %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", fetch.DefaultURL, "export URL to download")
	cmd.Flags().StringVar(&out, "out", filepath.Join("data", "raw", "powerball.csv"), "destination path")
	cmd.Flags().BoolVar(&force, "force", false, "download even if the file already exists")
	return cmd
}
