package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainbox/internal/models"
	"rainbox/internal/storage"
)

func newInstrumentedMemoryStorage(t *testing.T) *InstrumentedStorage {
	t.Helper()

	inner, err := storage.NewMemoryStorage(storage.Config{})
	require.NoError(t, err)

	instrumented, err := NewInstrumentedStorage(inner)
	require.NoError(t, err)
	t.Cleanup(func() { instrumented.Close() })
	return instrumented
}

func TestInstrumentedStorage_PassesThrough(t *testing.T) {
	store := newInstrumentedMemoryStorage(t)

	user := models.NewUser("alice", "alice@example.com", "h")
	require.NoError(t, store.CreateUser(context.Background(), user))

	got, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = store.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	assert.NoError(t, store.Ping(context.Background()))
}

func TestInstrumentedStorage_PropagatesErrors(t *testing.T) {
	store := newInstrumentedMemoryStorage(t)

	_, err := store.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	user := models.NewUser("alice", "alice@example.com", "h")
	require.NoError(t, store.CreateUser(context.Background(), user))

	err = store.CreateUser(context.Background(), models.NewUser("alice", "other@example.com", "h"))
	assert.ErrorIs(t, err, storage.ErrDuplicateUsername)
}
