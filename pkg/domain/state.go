package domain

import "time"

// State is the snapshot of one assessment session: the answers collected
// so far plus the traversal position. It is owned by exactly one session;
// all mutation goes through the traversal engine or the session manager.
type State struct {
	// SessionID identifies the session in a store.
	SessionID string `json:"session_id,omitempty"`

	// CurrentIndex is the position in the catalog's top-level order.
	CurrentIndex int `json:"current_question_index"`

	// Completed is set once the last catalog node has been answered and
	// the user advanced past it. Post-completion edits do not clear it.
	Completed bool `json:"completed"`

	// Language is the two-letter UI locale for this session.
	Language string `json:"language,omitempty"`

	// Answers maps resolved question ids to collected values.
	// Permitted value shapes: string, float64, bool, []string.
	Answers map[string]any `json:"answers"`

	// UpdatedAt tracks the last mutation, used for snapshot timestamps.
	UpdatedAt time.Time `json:"-"`
}

// NewState creates an empty session state.
func NewState(sessionID, language string) *State {
	return &State{
		SessionID: sessionID,
		Language:  language,
		Answers:   make(map[string]any),
		UpdatedAt: time.Now(),
	}
}
