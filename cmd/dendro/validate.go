package main

import (
	"os"

	"github.com/aretw0/dendro/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dendrogram>",
	Short: "Check the taxonomy and scope configuration",
	Long: `Builds the taxonomy tree, reporting multiple roots, cycles and nodes with two
parents, then resolves the scope roots. With --markers, declarations outside
the taxonomy are reported too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := readOptions(cmd)
		opts.Dendrogram = args[0]
		return cli.RunValidate(opts, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addScopeFlags(validateCmd)
	addMarkerFlags(validateCmd)
	validateCmd.Flags().String("markers", "", "Marker table to check against the taxonomy")
}
