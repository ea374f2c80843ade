package session

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/domain"
)

// Snapshot is the portable export format of one assessment session.
// It is deliberately independent of the store representation so exported
// files stay readable across versions.
type Snapshot struct {
	Answers      map[string]any `json:"answers"`
	CurrentIndex int            `json:"current_question_index"`
	Completed    bool           `json:"completed"`
	Language     string         `json:"language"`
	Timestamp    string         `json:"timestamp"`
}

// Export writes the session as a JSON snapshot.
func Export(w io.Writer, state *domain.State) error {
	snap := Snapshot{
		Answers:      state.Answers,
		CurrentIndex: state.CurrentIndex,
		Completed:    state.Completed,
		Language:     state.Language,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}
	return nil
}

// Import parses a JSON snapshot and applies it to the state. On any
// failure (malformed JSON, impermissible value shapes) the state is left
// untouched and domain.ErrMalformedSnapshot is returned, wrapped with
// the cause.
func Import(r io.Reader, state *domain.State) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}
	if snap.CurrentIndex < 0 {
		return fmt.Errorf("%w: negative question index %d", domain.ErrMalformedSnapshot, snap.CurrentIndex)
	}

	clean, err := answers.Sanitize(snap.Answers)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}

	// All validation passed; only now touch the session.
	state.Answers = clean
	state.CurrentIndex = snap.CurrentIndex
	state.Completed = snap.Completed
	if snap.Language != "" {
		state.Language = snap.Language
	}
	state.UpdatedAt = time.Now()
	return nil
}
