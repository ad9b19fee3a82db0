package main

import (
	"context"
	"os"

	"github.com/aretw0/dendro/internal/cli"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich <dendrogram> <markers>",
	Short: "Compute the enriched marker table",
	Long: `Propagates the marker declarations of <markers> (TSV: node id in column 0,
pipe-delimited markers in column 2) down the taxonomy of <dendrogram>
(dendrogram JSON or a parent/child edge table) and writes a two-column TSV.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := readOptions(cmd)
		opts.Dendrogram, opts.Markers = args[0], args[1]
		opts.Output, _ = cmd.Flags().GetString("output")
		opts.Workers, _ = cmd.Flags().GetInt("workers")
		opts.RedisAddr, _ = cmd.Flags().GetString("redis-addr")
		opts.RedisPassword, _ = cmd.Flags().GetString("redis-password")
		opts.RedisDB, _ = cmd.Flags().GetInt("redis-db")
		opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")

		ctx, stop := cli.WithInterrupt(context.Background())
		defer stop()

		return cli.Interrupted(ctx, cli.RunEnrich(ctx, opts, os.Stdout, cli.CreateLogger(opts.Debug)))
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)
	addScopeFlags(enrichCmd)
	addMarkerFlags(enrichCmd)

	enrichCmd.Flags().StringP("output", "o", "", "Output TSV path (default stdout)")
	enrichCmd.Flags().Int("workers", 0, "Evaluate top-level subtrees on up to N goroutines")
	enrichCmd.Flags().String("redis-addr", "", "Also store the table in Redis at host:port")
	enrichCmd.Flags().String("redis-password", "", "Redis password")
	enrichCmd.Flags().Int("redis-db", 0, "Redis database number")
	enrichCmd.Flags().String("metrics-file", "", "Write prometheus metrics to this textfile after the run")
}
