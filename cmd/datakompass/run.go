package main

import (
	"fmt"
	"os"

	"github.com/fbruhn/datakompass/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <session-id>",
	Short: "Run the interactive assessment",
	Long:  `Starts the guided questionnaire on the terminal. The session persists after every step, so an interrupted run resumes where it left off.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{
			SessionID: args[0],
			Fresh:     mustBool(cmd, "fresh"),
			Debug:     mustBool(cmd, "debug"),
		}
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Language, _ = cmd.Flags().GetString("lang")
		opts.RedisURL, _ = cmd.Flags().GetString("redis")
		opts.CatalogPath, _ = cmd.Flags().GetString("catalog")

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("fresh", false, "Discard any stored state for this session before starting")
	runCmd.Flags().Bool("debug", false, "Enable debug logging to stderr")
}
