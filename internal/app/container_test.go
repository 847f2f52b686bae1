package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/claudectl/internal/infrastructure/config"
	"github.com/doeshing/claudectl/internal/pkg/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claudectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildContainerResolvesConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "claude_dir: "+dir+"\n")

	container, err := BuildContainer(context.Background(), Options{ConfigPath: path})
	require.NoError(t, err)
	defer container.Close()

	assert.Equal(t, filepath.Join(dir, "stats.db"), container.Config.StatsDB)
	assert.Equal(t, path, container.ConfigLoader.Path())

	health := container.HealthService()
	assert.Equal(t, "chroma", health.PrimaryService)
	assert.NotNil(t, health.HealthLog)
	assert.Len(t, container.VectorDBService().Collections, 4)
}

func TestBuildContainerRejectsInvalidConfiguration(t *testing.T) {
	path := writeConfig(t, "vector_db:\n  heartbeat_timeout: 30s\n")

	_, err := BuildContainer(context.Background(), Options{ConfigPath: path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "heartbeat_timeout")
}

func TestBuildContainerMalformedYAML(t *testing.T) {
	path := writeConfig(t, "claude_dir: [unterminated\n")

	_, err := BuildContainer(context.Background(), Options{ConfigPath: path})

	assert.Error(t, err)
}

func TestHealthServiceWithoutMetricsStore(t *testing.T) {
	cfg, err := config.Defaults()
	require.NoError(t, err)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg.StatsDB = filepath.Join(blocker, "stats.db")

	container := NewContainer(cfg, logger.Nop())
	defer container.Close()

	svc := container.HealthService()

	assert.Nil(t, svc.HealthLog)
	_, err = container.MetricsStore()
	assert.Error(t, err)
	_, err = container.HealthHistory()
	assert.Error(t, err)
}

func TestMetricsStoreOpensOnce(t *testing.T) {
	cfg, err := config.Defaults()
	require.NoError(t, err)
	cfg.StatsDB = filepath.Join(t.TempDir(), "stats.db")
	container := NewContainer(cfg, logger.Nop())
	defer container.Close()

	first, err := container.MetricsStore()
	require.NoError(t, err)
	second, err := container.MetricsStore()
	require.NoError(t, err)

	assert.Same(t, first, second)

	history, err := container.HealthHistory()
	require.NoError(t, err)
	assert.Same(t, first, history)
}
