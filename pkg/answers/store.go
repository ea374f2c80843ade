package answers

import (
	"sort"
	"strings"
)

// Store is a view over the flat answer map of one session. It restricts
// values to the permitted shapes (string, float64, bool, []string) and
// offers typed accessors so callers never type-switch on raw values.
//
// Store wraps the session's map by reference: mutations through the
// store are visible in the owning state.
type Store struct {
	m map[string]any
}

// New creates an empty store backed by a fresh map.
func New() *Store {
	return &Store{m: make(map[string]any)}
}

// Wrap creates a store view over an existing answer map.
// A nil map is replaced by an empty one (the caller loses the alias then,
// so sessions should always allocate their map).
func Wrap(m map[string]any) *Store {
	if m == nil {
		m = make(map[string]any)
	}
	return &Store{m: m}
}

// Raw exposes the underlying map, for serialization only.
func (s *Store) Raw() map[string]any { return s.m }

// Get returns the raw value for a resolved question id.
func (s *Store) Get(id string) (any, bool) {
	v, ok := s.m[id]
	return v, ok
}

// Has reports whether an answer exists for the id.
func (s *Store) Has(id string) bool {
	_, ok := s.m[id]
	return ok
}

// Set stores a value. The value must already be in a permitted shape;
// use Sanitize for untrusted input.
func (s *Store) Set(id string, value any) {
	s.m[id] = value
}

// Delete removes an answer. Keys are rarely removed in practice; this
// exists for post-completion edits.
func (s *Store) Delete(id string) {
	delete(s.m, id)
}

// Len returns the number of collected answers.
func (s *Store) Len() int { return len(s.m) }

// String returns the answer as a string, or "" when absent or non-string.
func (s *Store) String(id string) string {
	v, _ := s.m[id].(string)
	return v
}

// Number returns the answer as a float64, or 0 when absent or non-numeric.
func (s *Store) Number(id string) float64 {
	v, _ := s.m[id].(float64)
	return v
}

// Bool returns the answer as a bool, or false when absent or non-boolean.
func (s *Store) Bool(id string) bool {
	v, _ := s.m[id].(bool)
	return v
}

// List returns the answer as a string list, or nil when absent or not a list.
func (s *Store) List(id string) []string {
	v, _ := s.m[id].([]string)
	return v
}

// AppendList adds an item to a list answer, creating the list if needed.
// Duplicates are kept; list semantics are the caller's concern.
func (s *Store) AppendList(id, item string) {
	s.m[id] = append(s.List(id), item)
}

// RemoveListItem removes the first occurrence of item from a list answer.
func (s *Store) RemoveListItem(id, item string) {
	list := s.List(id)
	for i, v := range list {
		if v == item {
			s.m[id] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// KeysWithPrefix returns all answer keys with the given prefix, sorted
// for deterministic iteration.
func (s *Store) KeysWithPrefix(prefix string) []string {
	var keys []string
	for k := range s.m {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
