package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	loader := NewFileLoader(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.VectorDB.URL)
	assert.Equal(t, 5*time.Second, cfg.VectorDB.HeartbeatTimeout)
	assert.Equal(t, "docker", cfg.Runtime.Binary)
	assert.Equal(t, 7, cfg.Backups.MaxAgeDays)
	assert.Equal(t, 20, cfg.Scoring.VectorDBPenalty)
	assert.Len(t, cfg.Collections, 4)
	assert.Len(t, cfg.Targets, 5)

	primary, ok := cfg.PrimaryService()
	require.True(t, ok)
	assert.Equal(t, "claude-chroma", primary.Container)
	assert.Equal(t, filepath.Join(home, ".claude"), cfg.ClaudeDir)
	assert.Equal(t, filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"), cfg.Files.DesktopConfigs[0])
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "claudectl.yaml")
	content := []byte(`claude_dir: ` + dir + `
vector_db:
  url: http://127.0.0.1:9000
backups:
  max_age_days: 3
services:
  - name: chroma
    container: my-chroma
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.VectorDB.URL)
	assert.Equal(t, "chroma.sqlite3", cfg.VectorDB.DatabaseFile, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Backups.MaxAgeDays)
	assert.Equal(t, ".tar.gz", cfg.Backups.Suffix)
	require.Len(t, cfg.Services, 1)
	assert.Equal(t, "my-chroma", cfg.Services[0].Container)

	assert.Equal(t, filepath.Join(dir, "stats.db"), cfg.StatsDB)
	assert.Equal(t, filepath.Join(dir, "chroma-data"), cfg.VectorDB.DataDir)
	assert.Equal(t, filepath.Join(dir, "chroma-data", "chroma.sqlite3"), cfg.VectorDB.DatabasePath())
	assert.Equal(t, filepath.Join(dir, "backups"), cfg.Backups.Dir)
	assert.Equal(t, filepath.Join(dir, "CLAUDE.md"), cfg.Files.GlobalConfig)
	assert.Equal(t, "CLAUDE.md", cfg.Files.ProjectConfig, "project config stays relative to the working directory")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claudectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services: [unterminated"), 0o600))

	_, err := NewFileLoader(path).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestPathHonoursEnvironment(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, custom)

	assert.Equal(t, custom, NewFileLoader("").Path())
	assert.Equal(t, "/explicit.yaml", NewFileLoader("/explicit.yaml").Path())
}
