package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/domain"
)

// Store implements ports.SnapshotStore using the local filesystem.
// Each session is one JSON file in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".datakompass/sessions".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".datakompass", "sessions")
	}
	return &Store{BasePath: basePath}
}

// Save persists the session state to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames
// it to the destination. An interrupted save never leaves a truncated
// session file behind.
func (s *Store) Save(ctx context.Context, sessionID string, state *domain.State) error {
	if err := validateID(sessionID); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure session directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, sessionID+".json")

	payload := stored{
		SessionID:    state.SessionID,
		Answers:      state.Answers,
		CurrentIndex: state.CurrentIndex,
		Completed:    state.Completed,
		Language:     state.Language,
		UpdatedAt:    state.UpdatedAt.Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Same directory as the destination so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+sessionID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Remove if still present (not renamed)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails when the destination exists, so remove
	// it first. The delete+rename window beats a partially written file.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing session file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to session file: %w", err)
	}
	return nil
}

// Load retrieves the session state from its JSON file.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	if err := validateID(sessionID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.BasePath, sessionID+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var payload stored
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return payload.toState(sessionID)
}

// Delete removes the session file. Deleting a missing session is not an
// error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := validateID(sessionID); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.BasePath, sessionID+".json"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// List returns all stored session IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var sessions []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		sessions = append(sessions, strings.TrimSuffix(name, ".json"))
	}
	return sessions, nil
}

// stored is the on-disk shape. Answers and the traversal cursor use the
// same field names as the export snapshot so files stay hand-readable.
type stored struct {
	SessionID    string         `json:"session_id"`
	Answers      map[string]any `json:"answers"`
	CurrentIndex int            `json:"current_question_index"`
	Completed    bool           `json:"completed"`
	Language     string         `json:"language"`
	UpdatedAt    string         `json:"updated_at"`
}

func (p stored) toState(sessionID string) (*domain.State, error) {
	// JSON decoding widens lists to []any; restore the permitted shapes.
	clean, err := answers.Sanitize(p.Answers)
	if err != nil {
		return nil, fmt.Errorf("corrupt session data: %w", err)
	}
	state := &domain.State{
		SessionID:    sessionID,
		Answers:      clean,
		CurrentIndex: p.CurrentIndex,
		Completed:    p.Completed,
		Language:     p.Language,
	}
	if t, err := time.Parse(time.RFC3339, p.UpdatedAt); err == nil {
		state.UpdatedAt = t
	}
	return state, nil
}

// validateID rejects IDs that would escape the session directory.
func validateID(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}
	if strings.ContainsAny(sessionID, `/\`) || strings.Contains(sessionID, "..") {
		return fmt.Errorf("invalid sessionID %q", sessionID)
	}
	return nil
}
