package main

import (
	"fmt"
	"os"

	"github.com/aretw0/dendro/internal/cli"
	"github.com/aretw0/dendro/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dendro",
	Short: "dendro propagates marker genes down cell-type taxonomies",
	Long: `dendro reads a taxonomy dendrogram and a table of marker declarations and
computes, for every declared node, the markers inherited from its ancestors
within the configured scope roots.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// addScopeFlags registers the flags that select the taxonomy configuration.
func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().String("taxonomy", "", "Taxonomy id (defaults to the dendrogram file name)")
	cmd.Flags().String("config", "", "Taxonomy details YAML (default dendrograms/taxonomy_details.yaml when present)")
	cmd.Flags().StringSlice("scope-root", nil, "Scope root node id; overrides the configured roots (repeatable)")
}

// addMarkerFlags registers the flags that shape how the marker table is read.
func addMarkerFlags(cmd *cobra.Command) {
	cmd.Flags().String("genes", "", "Reference gene list; markers not listed are dropped (default: the taxonomy's configured list)")
	cmd.Flags().String("gene-dir", config.DefaultGeneDir, "Directory of the reference gene lists named in the taxonomy details")
	cmd.Flags().Int("id-column", 0, "Marker table column holding the node id")
	cmd.Flags().Int("marker-column", 2, "Marker table column holding the pipe-delimited markers")
}

// readOptions collects the flags shared by every command.
func readOptions(cmd *cobra.Command) cli.Options {
	var opts cli.Options
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	opts.Taxonomy, _ = cmd.Flags().GetString("taxonomy")
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.ScopeRoots, _ = cmd.Flags().GetStringSlice("scope-root")
	if cmd.Flags().Lookup("markers") != nil {
		opts.Markers, _ = cmd.Flags().GetString("markers")
	}
	opts.Genes, _ = cmd.Flags().GetString("genes")
	opts.GeneDir, _ = cmd.Flags().GetString("gene-dir")
	opts.IDColumn, _ = cmd.Flags().GetInt("id-column")
	opts.MarkerColumn, _ = cmd.Flags().GetInt("marker-column")
	return opts
}
