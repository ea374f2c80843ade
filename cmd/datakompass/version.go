package main

import (
	"fmt"
	"strings"

	"github.com/fbruhn/datakompass"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of datakompass",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("datakompass version %s\n", strings.TrimSpace(datakompass.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
