package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_TokenLifecycle(t *testing.T) {
	ctx := context.Background()
	sess := New(NewMemoryStore(0), "sid-1")

	tok, err := sess.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, sess.SetToken(ctx, " abc "))
	tok, err = sess.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, sess.Clear(ctx))
	tok, err = sess.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	// clearing twice is fine
	require.NoError(t, sess.Clear(ctx))
}

func TestSession_IsolatedByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	a := New(store, "a")
	b := New(store, "b")

	require.NoError(t, a.SetToken(ctx, "token-a"))

	tok, err := b.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Equal(t, "b", b.ID())
}

func TestSession_EmptyTokenClears(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	sess := New(store, "sid")
	require.NoError(t, sess.SetToken(ctx, "x"))
	require.NoError(t, sess.SetToken(ctx, "   "))

	_, err := store.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TokensExpire(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	now := time.Unix(1000, 0)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put(ctx, "old", "t1"))
	now = now.Add(30 * time.Minute)
	require.NoError(t, store.Put(ctx, "new", "t2"))

	now = now.Add(40 * time.Minute)
	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	tok, err := store.Get(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "t2", tok)
}

func TestMemoryStore_PutSweepsExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	now := time.Unix(1000, 0)
	store.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		require.NoError(t, store.Put(ctx, fmt.Sprintf("sid-%d", i), "tok"))
	}
	now = now.Add(2 * time.Hour)
	require.NoError(t, store.Put(ctx, "fresh", "tok"))

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Len(t, store.tokens, 1)
	assert.Contains(t, store.tokens, "fresh")
}
