package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datakompass",
	Short: "Datakompass is a guided data flow assessment tool",
	Long:  `Datakompass walks you through describing a data-processing system and produces recommendations and a data flow diagram from your answers.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", "", "Directory for stored sessions (default .datakompass/sessions)")
	rootCmd.PersistentFlags().String("lang", "de", "Interface language (de or en)")
	rootCmd.PersistentFlags().String("redis", "", "Redis address; switches session storage from files to Redis")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML catalog replacing the builtin questionnaire")
}
