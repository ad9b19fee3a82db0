package main

import (
	"context"
	"os"

	"github.com/aretw0/dendro/internal/cli"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <dendrogram> <markers>",
	Short: "Summarize an enrichment run as markdown",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := readOptions(cmd)
		opts.Dendrogram, opts.Markers = args[0], args[1]

		ctx, stop := cli.WithInterrupt(context.Background())
		defer stop()

		return cli.Interrupted(ctx, cli.RunReport(ctx, opts, os.Stdout, cli.CreateLogger(opts.Debug)))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addScopeFlags(reportCmd)
	addMarkerFlags(reportCmd)
}
