package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "portfolioData", cfg.Storage.SlotKey)
	assert.Equal(t, "portfolio.events", cfg.Kafka.Topic)
	assert.Equal(t, "time", cfg.IDs.Strategy)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("app:\n  port: \"9000\"\nstorage:\n  driver: redis\nkafka:\n  brokers:\n    - a:9092\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
