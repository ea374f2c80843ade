package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/ports"
)

func testStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestStoreContract(t *testing.T) {
	store, _ := testStore(t)
	ports.RunSnapshotStoreContract(t, store)
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("list answers are restored to permitted shapes", func(t *testing.T) {
		store, _ := testStore(t)
		state := domain.NewState("s", "de")
		state.Answers["systems"] = []string{"CRM", "Mailer"}
		require.NoError(t, store.Save(ctx, "s", state))

		loaded, err := store.Load(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, []string{"CRM", "Mailer"}, loaded.Answers["systems"])
	})

	t.Run("custom prefix isolates keyspaces", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
		a := NewFromClient(client, WithPrefix("a:"))
		b := NewFromClient(client, WithPrefix("b:"))
		t.Cleanup(func() { _ = a.Close() })

		require.NoError(t, a.Save(ctx, "s", domain.NewState("s", "de")))

		_, err := b.Load(ctx, "s")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		sessions, err := b.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})

	t.Run("ttl expires sessions", func(t *testing.T) {
		store, mr := testStore(t, WithTTL(time.Minute))
		require.NoError(t, store.Save(ctx, "s", domain.NewState("s", "de")))

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, "s")

		mr.FastForward(2 * time.Minute)

		_, err = store.Load(ctx, "s")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("list prunes expired index entries", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
		store := NewFromClient(client)
		t.Cleanup(func() { _ = store.Close() })

		require.NoError(t, store.Save(ctx, "live", domain.NewState("live", "de")))

		// A stale index entry left behind by an expired session.
		expired := float64(time.Now().Add(-time.Hour).Unix())
		require.NoError(t, client.ZAdd(ctx, store.indexKey(), backend.Z{Score: expired, Member: "stale"}).Err())

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, "live")
		assert.NotContains(t, sessions, "stale")
	})

	t.Run("delete removes the index entry", func(t *testing.T) {
		store, _ := testStore(t)
		require.NoError(t, store.Save(ctx, "s", domain.NewState("s", "de")))
		require.NoError(t, store.Delete(ctx, "s"))

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, sessions, "s")
	})
}
