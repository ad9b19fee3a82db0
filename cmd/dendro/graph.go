package main

import (
	"os"

	"github.com/aretw0/dendro/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <dendrogram>",
	Short: "Export the taxonomy visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the taxonomy with scope roots and, given --markers, declared nodes highlighted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := readOptions(cmd)
		opts.Dendrogram = args[0]
		return cli.RunGraph(opts, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addScopeFlags(graphCmd)
	addMarkerFlags(graphCmd)
	graphCmd.Flags().String("markers", "", "Marker table whose declared nodes are highlighted")
}
