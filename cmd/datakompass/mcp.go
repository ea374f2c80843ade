package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	mcpadapter "github.com/fbruhn/datakompass/internal/adapters/mcp"
	"github.com/fbruhn/datakompass/internal/logging"
	"github.com/fbruhn/datakompass/pkg/rules"
	"github.com/fbruhn/datakompass/pkg/session"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the assessment engine as an MCP server over stdio.
This allows AI agents to drive a questionnaire through tools
(render_question, submit_answer, navigate, get_report, get_diagram).`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.New(slog.LevelInfo)
		slog.SetDefault(logger)
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		manager := session.NewManager(getStore(cmd), session.WithLogger(logger))
		srv := mcpadapter.NewServer(getCatalog(cmd), manager, rules.NewEngine(rules.WithLogger(logger)))

		slog.Info("Starting Datakompass MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
