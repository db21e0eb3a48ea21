package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainbox/internal/models"
)

func TestMemoryStorage_CreateAndGetUser(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	user := models.NewUser("alice", "alice@example.com", "hashed-password")
	require.NoError(t, store.CreateUser(context.Background(), user))

	byName, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "alice@example.com", byName.Email)

	byEmail, err := store.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestMemoryStorage_LookupIsCaseInsensitive(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	user := models.NewUser("Alice", "Alice@Example.com", "hashed-password")
	require.NoError(t, store.CreateUser(context.Background(), user))

	_, err = store.GetUserByUsername(context.Background(), "alice")
	assert.NoError(t, err)

	_, err = store.GetUserByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}

func TestMemoryStorage_DuplicateUsername(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.CreateUser(context.Background(), models.NewUser("alice", "alice@example.com", "h")))

	err = store.CreateUser(context.Background(), models.NewUser("alice", "other@example.com", "h"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestMemoryStorage_DuplicateEmail(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.CreateUser(context.Background(), models.NewUser("alice", "alice@example.com", "h")))

	err = store.CreateUser(context.Background(), models.NewUser("bob", "alice@example.com", "h"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMemoryStorage_UserNotFound(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = store.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStorage_ReturnsCopies(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	user := models.NewUser("alice", "alice@example.com", "h")
	require.NoError(t, store.CreateUser(context.Background(), user))

	got, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	got.Email = "mutated@example.com"

	again, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", again.Email)
}

func TestMemoryStorage_Ping(t *testing.T) {
	store, err := NewMemoryStorage(Config{})
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Ping(context.Background()))
}
