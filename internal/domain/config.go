package domain

import (
	"path/filepath"
	"time"
)

// Config mirrors ~/.claude/claudectl.yaml.
// Relative paths are resolved against ClaudeDir by the loader, except
// Files.ProjectConfig which is looked up in the working directory.
type Config struct {
	ClaudeDir   string                 `yaml:"claude_dir" validate:"required"`
	StatsDB     string                 `yaml:"stats_db" validate:"required"`
	VectorDB    VectorDBSettings       `yaml:"vector_db"`
	Runtime     RuntimeSettings        `yaml:"container_runtime"`
	Services    []ServiceDefinition    `yaml:"services" validate:"required,min=1,dive"`
	Backups     BackupSettings         `yaml:"backups"`
	Files       FileSettings           `yaml:"files"`
	Scoring     ScoringSettings        `yaml:"scoring"`
	Collections []CollectionDefinition `yaml:"collections" validate:"dive"`
	Targets     []string               `yaml:"targets"`
}

// VectorDBSettings locates the vector database on disk and over HTTP.
type VectorDBSettings struct {
	URL              string        `yaml:"url" validate:"required,url"`
	DataDir          string        `yaml:"data_dir" validate:"required"`
	DatabaseFile     string        `yaml:"database_file" validate:"required"`
	HeartbeatTimeout time.Duration `yaml:"heartbeat_timeout" validate:"gt=0,lte=5s"`
	RequestTimeout   time.Duration `yaml:"request_timeout" validate:"gt=0"`
	RetryMax         int           `yaml:"retry_max" validate:"gte=0,lte=5"`
	MemoryCollection string        `yaml:"memory_collection" validate:"required"`
}

// DatabasePath is the SQLite file the vector database persists into.
func (s VectorDBSettings) DatabasePath() string {
	return filepath.Join(s.DataDir, s.DatabaseFile)
}

// RuntimeSettings configures the container runtime process listing.
type RuntimeSettings struct {
	Binary  string        `yaml:"binary" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0,lte=5s"`
}

// ServiceDefinition is an expected container.
type ServiceDefinition struct {
	Name      string `yaml:"name" validate:"required"`
	Container string `yaml:"container" validate:"required"`
	Optional  bool   `yaml:"optional"`
}

// BackupSettings describes where archives live and when they go stale.
type BackupSettings struct {
	Dir          string `yaml:"dir" validate:"required"`
	Prefix       string `yaml:"prefix"`
	Suffix       string `yaml:"suffix" validate:"required"`
	MaxAgeDays   int    `yaml:"max_age_days" validate:"gte=0"`
	ErrorAgeDays int    `yaml:"error_age_days" validate:"gte=0"`
	RecentLimit  int    `yaml:"recent_limit" validate:"gte=0"`
}

// FileSettings lists the configuration files the monitor observes.
type FileSettings struct {
	GlobalConfig       string   `yaml:"global_config" validate:"required"`
	ProjectConfig      string   `yaml:"project_config"`
	ComposeFile        string   `yaml:"compose_file" validate:"required"`
	DesktopConfigs     []string `yaml:"desktop_configs"`
	DesktopTemplate    string   `yaml:"desktop_template"`
	GlobalLineWarning  int      `yaml:"global_line_warning" validate:"gte=0"`
	ProjectLineWarning int      `yaml:"project_line_warning" validate:"gte=0"`
}

// ScoringSettings holds the points removed per failing category.
type ScoringSettings struct {
	VectorDBPenalty int `yaml:"vector_db_penalty" validate:"gte=0,lte=100"`
	ServicePenalty  int `yaml:"service_penalty" validate:"gte=0,lte=100"`
	BackupPenalty   int `yaml:"backup_penalty" validate:"gte=0,lte=100"`
	ConfigPenalty   int `yaml:"config_penalty" validate:"gte=0,lte=100"`
}

// PrimaryService returns the first non-optional service.
func (c Config) PrimaryService() (ServiceDefinition, bool) {
	for _, svc := range c.Services {
		if !svc.Optional {
			return svc, true
		}
	}
	return ServiceDefinition{}, false
}

// Collection returns the definition named name.
func (c Config) Collection(name string) (CollectionDefinition, bool) {
	for _, coll := range c.Collections {
		if coll.Name == name {
			return coll, true
		}
	}
	return CollectionDefinition{}, false
}
