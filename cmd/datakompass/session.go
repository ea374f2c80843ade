package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persistent sessions",
	Long:  `List, inspect, remove, export, and import assessment sessions.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all stored sessions",
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		sessions, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing sessions: %v\n", err)
			os.Exit(1)
		}

		if len(sessions) == 0 {
			fmt.Println("No stored sessions found.")
			return
		}

		fmt.Println("Stored Sessions:")
		for _, s := range sessions {
			fmt.Println("- " + s)
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Inspect the state of a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(cmd)
		hasError := false

		for _, sessionID := range args {
			if err := store.Delete(cmd.Context(), sessionID); err != nil {
				fmt.Printf("Error removing '%s': %v\n", sessionID, err)
				hasError = true
			} else {
				fmt.Printf("Removed session '%s'\n", sessionID)
			}
		}

		if hasError {
			os.Exit(1)
		}
	},
}

var sessionExportCmd = &cobra.Command{
	Use:   "export <session-id> [file]",
	Short: "Export a session as a portable snapshot",
	Long:  `Writes the session's answers and position as a JSON snapshot. Without a file argument the name derives from the collected system name.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID := args[0]
		store := getStore(cmd)

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", sessionID, err)
			os.Exit(1)
		}

		name := ""
		if len(args) > 1 {
			name = args[1]
		} else {
			name = session.Filename(answers.Wrap(state.Answers), state.UpdatedAt)
		}

		f, err := os.Create(name)
		if err != nil {
			fmt.Printf("Error creating '%s': %v\n", name, err)
			os.Exit(1)
		}
		defer f.Close()

		if err := session.Export(f, state); err != nil {
			fmt.Printf("Error exporting session: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported session '%s' to '%s'\n", sessionID, name)
	},
}

var sessionImportCmd = &cobra.Command{
	Use:   "import <session-id> <file>",
	Short: "Import a snapshot into a session",
	Long:  `Replaces the session's content with the snapshot. A malformed snapshot leaves the stored session untouched.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sessionID, path := args[0], args[1]
		store := getStore(cmd)
		lang, _ := cmd.Flags().GetString("lang")

		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("Error opening '%s': %v\n", path, err)
			os.Exit(1)
		}
		defer f.Close()

		state, err := store.Load(cmd.Context(), sessionID)
		if err != nil {
			state = newStateForImport(sessionID, lang)
		}

		if err := session.Import(f, state); err != nil {
			fmt.Printf("Error importing snapshot: %v\n", err)
			os.Exit(1)
		}
		if err := store.Save(cmd.Context(), sessionID, state); err != nil {
			fmt.Printf("Error saving session: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported '%s' into session '%s'\n", path, sessionID)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)
	sessionCmd.AddCommand(sessionExportCmd)
	sessionCmd.AddCommand(sessionImportCmd)
}
