package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/claudectl/assets"
	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/pkg/filesystem"
	"github.com/doeshing/claudectl/internal/ports"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "CLAUDECTL_CONFIG"

// FileLoader loads YAML configuration from ~/.claude/claudectl.yaml (overridable via CLAUDECTL_CONFIG).
// Values absent from the file keep the embedded defaults. A missing file is not an error:
// the monitor only observes the environment and never writes into it.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return domain.Config{}, err
	}

	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return resolvePaths(cfg), nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return resolvePaths(cfg), nil
}

// Path returns the configuration file the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".claude", "claudectl.yaml")
}

// Defaults parses the embedded default configuration without resolving paths.
func Defaults() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func resolvePaths(cfg domain.Config) domain.Config {
	cfg.ClaudeDir = filepath.Clean(filesystem.ExpandHome(cfg.ClaudeDir))
	base := cfg.ClaudeDir

	cfg.StatsDB = filesystem.ResolveUnder(base, cfg.StatsDB)
	cfg.VectorDB.DataDir = filesystem.ResolveUnder(base, cfg.VectorDB.DataDir)
	cfg.Backups.Dir = filesystem.ResolveUnder(base, cfg.Backups.Dir)
	cfg.Files.GlobalConfig = filesystem.ResolveUnder(base, cfg.Files.GlobalConfig)
	cfg.Files.ComposeFile = filesystem.ResolveUnder(base, cfg.Files.ComposeFile)
	cfg.Files.DesktopTemplate = filesystem.ResolveUnder(base, cfg.Files.DesktopTemplate)
	cfg.Files.ProjectConfig = filesystem.ExpandHome(cfg.Files.ProjectConfig)

	desktop := make([]string, 0, len(cfg.Files.DesktopConfigs))
	for _, path := range cfg.Files.DesktopConfigs {
		desktop = append(desktop, filesystem.ResolveUnder(base, path))
	}
	cfg.Files.DesktopConfigs = desktop
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
