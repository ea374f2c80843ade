package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/rules"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Evaluate the recommendation rules for a session",
	Long:  `Runs the rule table against the session's answers and prints the applicable recommendations in markdown, CSV, or JSON.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		suggestions := rules.NewEngine().Evaluate(answers.Wrap(state.Answers))
		format, _ := cmd.Flags().GetString("format")
		lang, _ := cmd.Flags().GetString("lang")

		switch format {
		case "markdown":
			err = rules.WriteMarkdown(os.Stdout, i18n.Text(lang, "report_title"), suggestions)
		case "csv":
			err = rules.WriteCSV(os.Stdout, suggestions)
		case "json":
			err = rules.WriteJSON(os.Stdout, suggestions)
		default:
			fmt.Printf("Unknown format '%s' (markdown, csv, json)\n", format)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("format", "f", "markdown", "Output format: markdown, csv, or json")
}
