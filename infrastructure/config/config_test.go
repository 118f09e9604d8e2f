package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StorageDriverFile, cfg.StorageDriver)
	assert.Equal(t, "flow-cache.json", cfg.CachePath)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, ":9090", cfg.ServerAddress)
}

func TestValidate_UnknownStorageDriver(t *testing.T) {
	cfg := &Config{StorageDriver: "postgres"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ProductionRequiresJWTSecret(t *testing.T) {
	cfg := &Config{
		Environment:   "production",
		StorageDriver: StorageDriverFile,
	}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ProductionDynamoDBRequiresTable(t *testing.T) {
	cfg := &Config{
		Environment:   "production",
		StorageDriver: StorageDriverDynamoDB,
		JWTSecret:     "secret",
	}
	assert.Error(t, cfg.Validate())

	cfg.FlowTable = "menu-flows"
	assert.NoError(t, cfg.Validate())
}
