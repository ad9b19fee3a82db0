package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dendro"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dendro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dendro version %s\n", strings.TrimSpace(dendro.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
