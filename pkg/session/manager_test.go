package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbruhn/datakompass/pkg/domain"
)

// memStore is a minimal in-memory snapshot store for manager tests.
type memStore struct {
	mu     sync.Mutex
	states map[string]*domain.State
}

func newMemStore() *memStore {
	return &memStore{states: make(map[string]*domain.State)}
}

func (m *memStore) Save(ctx context.Context, sessionID string, state *domain.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[sessionID] = state
	return nil
}

func (m *memStore) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state, nil
}

func (m *memStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
	return nil
}

func (m *memStore) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("load or start persists a fresh session", func(t *testing.T) {
		store := newMemStore()
		m := NewManager(store)

		state, err := m.LoadOrStart(ctx, "new", "de")
		require.NoError(t, err)
		assert.Equal(t, "new", state.SessionID)
		assert.Equal(t, "de", state.Language)

		// The ID is reserved in the store immediately.
		_, err = store.Load(ctx, "new")
		assert.NoError(t, err)
	})

	t.Run("load or start returns the existing session", func(t *testing.T) {
		store := newMemStore()
		m := NewManager(store)

		existing := domain.NewState("s", "en")
		existing.Answers["name"] = "CRM"
		require.NoError(t, store.Save(ctx, "s", existing))

		state, err := m.LoadOrStart(ctx, "s", "de")
		require.NoError(t, err)
		assert.Equal(t, "en", state.Language)
		assert.Equal(t, "CRM", state.Answers["name"])
	})

	t.Run("load of a missing session fails", func(t *testing.T) {
		m := NewManager(newMemStore())
		_, err := m.Load(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("with lock serializes access per session", func(t *testing.T) {
		m := NewManager(newMemStore())

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = m.WithLock(ctx, "same", func(context.Context) error {
					counter++
					return nil
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})

	t.Run("lock entries are garbage collected", func(t *testing.T) {
		m := NewManager(newMemStore())
		_ = m.WithLock(ctx, "once", func(context.Context) error { return nil })

		m.mu.Lock()
		defer m.mu.Unlock()
		assert.Empty(t, m.locks)
	})

	t.Run("delete then load fails", func(t *testing.T) {
		store := newMemStore()
		m := NewManager(store)

		_, err := m.LoadOrStart(ctx, "gone", "de")
		require.NoError(t, err)
		require.NoError(t, m.Delete(ctx, "gone"))

		_, err = m.Load(ctx, "gone")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}
