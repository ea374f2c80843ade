package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	d2adapter "github.com/fbruhn/datakompass/internal/adapters/d2"
	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/internal/presentation/graph"
	"github.com/fbruhn/datakompass/pkg/answers"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram <session-id>",
	Short: "Generate the data flow diagram for a session",
	Long:  `Produces a d2 description of the collected data flow. With --output and a d2 binary on PATH, the diagram is rendered to SVG or PNG; otherwise the description prints to stdout.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		lang := state.Language
		if lang == "" {
			lang, _ = cmd.Flags().GetString("lang")
		}
		script := graph.GenerateD2(answers.Wrap(state.Answers), lang)

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Print(script)
			return
		}

		renderer := d2adapter.NewRenderer()
		if err := renderer.Render(cmd.Context(), script, output); err != nil {
			// A missing or failing d2 binary degrades to the script text.
			fmt.Fprintln(os.Stderr, i18n.Text(lang, "diagram_fallback"))
			fmt.Fprintf(os.Stderr, "(%v)\n\n", err)
			fmt.Print(script)
			return
		}
		fmt.Printf("Rendered diagram to '%s'\n", output)
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	diagramCmd.Flags().StringP("output", "o", "", "Render to this file (svg or png) using the d2 binary")
}
