package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rainbox/internal/models"
)

func TestFactory_CreateMemory(t *testing.T) {
	factory := NewFactory()

	store, err := factory.Create(models.StorageConfig{Type: models.StorageTypeMemory})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &MemoryStorage{}, store)
}

func TestFactory_CreateSQLite(t *testing.T) {
	factory := NewFactory()

	store, err := factory.Create(models.StorageConfig{
		Type: models.StorageTypeSQLite,
		Database: models.DatabaseConfig{
			DSN: filepath.Join(t.TempDir(), "factory.db"),
		},
	})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &SQLiteStorage{}, store)
}

func TestFactory_CreateUnsupported(t *testing.T) {
	factory := NewFactory()

	_, err := factory.Create(models.StorageConfig{Type: "cassandra"})
	assert.ErrorContains(t, err, "unsupported storage type")
}

func TestFactory_GetSupportedProviders(t *testing.T) {
	factory := NewFactory()

	providers := factory.GetSupportedProviders()
	assert.Contains(t, providers, models.StorageTypeMemory)
	assert.Contains(t, providers, models.StorageTypeSQLite)
	assert.Contains(t, providers, models.StorageTypePostgres)
}
