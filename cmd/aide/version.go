package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/aide"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aide version %s\n", aide.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
