package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fbruhn/datakompass/internal/adapters/file"
	redisadapter "github.com/fbruhn/datakompass/internal/adapters/redis"
	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/ports"
)

// getStore builds the snapshot store from the persistent flags.
func getStore(cmd *cobra.Command) ports.SnapshotStore {
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		return redisadapter.New(addr, "", 0)
	}
	dir, _ := cmd.Flags().GetString("dir")
	return file.New(dir)
}

// getCatalog loads the catalog from --catalog or falls back to the
// builtin questionnaire.
func getCatalog(cmd *cobra.Command) *catalog.Catalog {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Builtin()
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cat, err := catalog.LoadYAML(f)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	return cat
}

// newStateForImport starts an empty state for a snapshot import when no
// stored session exists under the given id.
func newStateForImport(sessionID, lang string) *domain.State {
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	return domain.NewState(sessionID, lang)
}
