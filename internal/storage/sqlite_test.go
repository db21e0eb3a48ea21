package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainbox/internal/models"
)

func newTestSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(Config{
		ConnectionString: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewSQLiteStorage_MissingConnectionString(t *testing.T) {
	_, err := NewSQLiteStorage(Config{})
	assert.Error(t, err)
}

func TestSQLiteStorage_CreateAndGetUser(t *testing.T) {
	store := newTestSQLiteStorage(t)

	user := models.NewUser("alice", "alice@example.com", "hashed-password")
	require.NoError(t, store.CreateUser(context.Background(), user))

	byName, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "alice", byName.Username)
	assert.Equal(t, "alice@example.com", byName.Email)
	assert.Equal(t, "hashed-password", byName.PasswordHash)

	byEmail, err := store.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestSQLiteStorage_LookupIsCaseInsensitive(t *testing.T) {
	store := newTestSQLiteStorage(t)

	user := models.NewUser("Alice", "Alice@Example.com", "h")
	require.NoError(t, store.CreateUser(context.Background(), user))

	_, err := store.GetUserByUsername(context.Background(), "alice")
	assert.NoError(t, err)

	_, err = store.GetUserByEmail(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}

func TestSQLiteStorage_DuplicateUsername(t *testing.T) {
	store := newTestSQLiteStorage(t)

	require.NoError(t, store.CreateUser(context.Background(), models.NewUser("alice", "alice@example.com", "h")))

	err := store.CreateUser(context.Background(), models.NewUser("alice", "other@example.com", "h"))
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestSQLiteStorage_DuplicateEmail(t *testing.T) {
	store := newTestSQLiteStorage(t)

	require.NoError(t, store.CreateUser(context.Background(), models.NewUser("alice", "alice@example.com", "h")))

	err := store.CreateUser(context.Background(), models.NewUser("bob", "alice@example.com", "h"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSQLiteStorage_UserNotFound(t *testing.T) {
	store := newTestSQLiteStorage(t)

	_, err := store.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = store.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteStorage_Ping(t *testing.T) {
	store := newTestSQLiteStorage(t)

	assert.NoError(t, store.Ping(context.Background()))
}
