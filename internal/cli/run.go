package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fbruhn/datakompass/internal/adapters/file"
	redisadapter "github.com/fbruhn/datakompass/internal/adapters/redis"
	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/ports"
	"github.com/fbruhn/datakompass/pkg/session"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Dir         string // Session directory for the file store
	SessionID   string
	Language    string
	CatalogPath string // Optional YAML catalog override
	RedisURL    string // Optional redis address, switches the store backend
	Fresh       bool
	Debug       bool
}

// Execute handles the run command: it assembles the catalog and the
// persistence backend, then starts the interactive session.
func Execute(opts RunOptions) error {
	if opts.SessionID == "" {
		return fmt.Errorf("a session id is required")
	}
	if opts.Language == "" {
		opts.Language = i18n.DefaultLanguage
	}

	cat, err := loadCatalog(opts.CatalogPath)
	if err != nil {
		return err
	}

	logger := createLogger(opts.Debug)
	store := newStore(opts)
	manager := session.NewManager(store, session.WithLogger(logger))

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if opts.Fresh {
		if err := manager.Delete(sigCtx, opts.SessionID); err != nil {
			logger.Warn("failed to reset session", "session_id", opts.SessionID, "err", err)
		}
	}

	return RunSession(sigCtx, cat, manager, opts, logger)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return catalog.LoadYAML(f)
}

func newStore(opts RunOptions) ports.SnapshotStore {
	if opts.RedisURL != "" {
		return redisadapter.New(opts.RedisURL, "", 0)
	}
	return file.New(opts.Dir)
}
