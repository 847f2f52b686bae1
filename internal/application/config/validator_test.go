package config

import (
	"strings"
	"testing"
	"time"

	"github.com/doeshing/claudectl/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		ClaudeDir: "/home/dev/.claude",
		StatsDB:   "/home/dev/.claude/stats.db",
		VectorDB: domain.VectorDBSettings{
			URL:              "http://localhost:8000",
			DataDir:          "/home/dev/.claude/chroma-data",
			DatabaseFile:     "chroma.sqlite3",
			HeartbeatTimeout: 5 * time.Second,
			RequestTimeout:   10 * time.Second,
			MemoryCollection: "claude-memory",
		},
		Runtime: domain.RuntimeSettings{Binary: "docker", Timeout: 5 * time.Second},
		Services: []domain.ServiceDefinition{
			{Name: "chroma", Container: "claude-chroma"},
			{Name: "qdrant", Container: "claude-qdrant", Optional: true},
		},
		Backups: domain.BackupSettings{
			Dir:          "/home/dev/.claude/backups",
			Prefix:       "chroma_backup_",
			Suffix:       ".tar.gz",
			MaxAgeDays:   7,
			ErrorAgeDays: 30,
		},
		Files: domain.FileSettings{
			GlobalConfig: "/home/dev/.claude/CLAUDE.md",
			ComposeFile:  "/home/dev/.claude/docker-compose.yml",
		},
		Scoring: domain.ScoringSettings{VectorDBPenalty: 20, ServicePenalty: 10, BackupPenalty: 15, ConfigPenalty: 10},
		Collections: []domain.CollectionDefinition{
			{Name: "claude-memory", Description: "General conversation memory", Space: "cosine"},
			{Name: "code-context", Space: "cosine"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.Config)
		wantError bool
	}{
		{
			name:   "accepts default shaped config",
			mutate: func(*domain.Config) {},
		},
		{
			name:      "rejects heartbeat timeout above five seconds",
			mutate:    func(c *domain.Config) { c.VectorDB.HeartbeatTimeout = 10 * time.Second },
			wantError: true,
		},
		{
			name:      "rejects runtime without timeout",
			mutate:    func(c *domain.Config) { c.Runtime.Timeout = 0 },
			wantError: true,
		},
		{
			name:      "rejects malformed url",
			mutate:    func(c *domain.Config) { c.VectorDB.URL = "localhost 8000" },
			wantError: true,
		},
		{
			name: "rejects config with only optional services",
			mutate: func(c *domain.Config) {
				c.Services = []domain.ServiceDefinition{{Name: "qdrant", Container: "claude-qdrant", Optional: true}}
			},
			wantError: true,
		},
		{
			name: "rejects duplicate collections",
			mutate: func(c *domain.Config) {
				c.Collections = append(c.Collections, domain.CollectionDefinition{Name: "code-context"})
			},
			wantError: true,
		},
		{
			name:      "rejects unknown distance space",
			mutate:    func(c *domain.Config) { c.Collections[1].Space = "manhattan" },
			wantError: true,
		},
		{
			name:      "rejects memory collection missing from list",
			mutate:    func(c *domain.Config) { c.VectorDB.MemoryCollection = "scratch" },
			wantError: true,
		},
		{
			name:      "rejects penalty above one hundred",
			mutate:    func(c *domain.Config) { c.Scoring.BackupPenalty = 150 },
			wantError: true,
		},
		{
			name:      "rejects error age below warning age",
			mutate:    func(c *domain.Config) { c.Backups.ErrorAgeDays = 3 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if tt.wantError && err == nil {
				t.Fatal("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateNamesYAMLField(t *testing.T) {
	cfg := validConfig()
	cfg.VectorDB.HeartbeatTimeout = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "vector_db.heartbeat_timeout failed gt=0"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Fatalf("error %q does not mention %q", got, want)
	}
}
