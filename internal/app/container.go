package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/doeshing/claudectl/internal/application/config"
	"github.com/doeshing/claudectl/internal/application/health"
	"github.com/doeshing/claudectl/internal/application/status"
	"github.com/doeshing/claudectl/internal/application/vectordb"
	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/infrastructure/chroma"
	configinfra "github.com/doeshing/claudectl/internal/infrastructure/config"
	"github.com/doeshing/claudectl/internal/infrastructure/docker"
	"github.com/doeshing/claudectl/internal/infrastructure/fsprobe"
	"github.com/doeshing/claudectl/internal/infrastructure/metrics"
	"github.com/doeshing/claudectl/internal/pkg/logger"
	"github.com/doeshing/claudectl/internal/ports"
)

// Options controls how the container is built.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
// Every component receives the same configuration value.
type Container struct {
	Config       domain.Config
	ConfigLoader *configinfra.FileLoader
	Logger       ports.Logger

	VectorStore *fsprobe.VectorStore
	Backups     *fsprobe.BackupScanner
	ConfigFiles *fsprobe.ConfigInspector
	Containers  *docker.Probe
	VectorAPI   *chroma.Client

	Now func() time.Time

	metricsOnce sync.Once
	metrics     *metrics.Store
	metricsErr  error
}

// BuildContainer loads and validates configuration and constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	loader := configinfra.NewFileLoader(opts.ConfigPath)
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", loader.Path(), err)
	}

	container := NewContainer(cfg, logger.NewStd(opts.Verbose))
	container.ConfigLoader = loader
	return container, nil
}

// NewContainer builds every adapter from cfg. The metrics database is opened on first use.
func NewContainer(cfg domain.Config, log ports.Logger) *Container {
	return &Container{
		Config:      cfg,
		Logger:      log,
		VectorStore: fsprobe.NewVectorStore(cfg.VectorDB),
		Backups:     fsprobe.NewBackupScanner(cfg.Backups),
		ConfigFiles: fsprobe.NewConfigInspector(cfg.Files),
		Containers:  docker.NewProbe(cfg.Runtime, cfg.Services),
		VectorAPI:   chroma.NewClient(cfg.VectorDB),
		Now:         time.Now,
	}
}

// MetricsStore opens the stats database once.
func (c *Container) MetricsStore() (*metrics.Store, error) {
	c.metricsOnce.Do(func() {
		c.metrics, c.metricsErr = metrics.Open(c.Config.StatsDB)
	})
	return c.metrics, c.metricsErr
}

// HealthHistory returns the reader for recorded health checks.
func (c *Container) HealthHistory() (ports.HealthHistory, error) {
	store, err := c.MetricsStore()
	if err != nil {
		return nil, err
	}
	return store, nil
}

// HealthService returns the aggregator. When the stats database cannot be
// opened the report is still produced, only without persistence.
func (c *Container) HealthService() *health.Service {
	svc := &health.Service{
		VectorStore: c.VectorStore,
		Containers:  c.Containers,
		VectorAPI:   c.VectorAPI,
		Backups:     c.Backups,
		ConfigFiles: c.ConfigFiles,
		Logger:      c.Logger,
		Scoring:     c.Config.Scoring,
		Now:         c.Now,
	}
	if primary, ok := c.Config.PrimaryService(); ok {
		svc.PrimaryService = primary.Name
	}

	store, err := c.MetricsStore()
	if err != nil {
		c.Logger.Warn("metrics store unavailable, health check will not be recorded", map[string]interface{}{
			"path":  c.Config.StatsDB,
			"error": err.Error(),
		})
		return svc
	}
	svc.HealthLog = store
	return svc
}

// StatusService returns the status board builder.
func (c *Container) StatusService() *status.Service {
	return &status.Service{
		VectorStore: c.VectorStore,
		Backups:     c.Backups,
		ConfigFiles: c.ConfigFiles,
		Settings:    c.Config.Backups,
		Now:         c.Now,
	}
}

// VectorDBService returns the collection initializer.
func (c *Container) VectorDBService() *vectordb.Service {
	return &vectordb.Service{
		Client:           c.VectorAPI,
		Collections:      c.Config.Collections,
		MemoryCollection: c.Config.VectorDB.MemoryCollection,
		Logger:           c.Logger,
		Now:              c.Now,
	}
}

// Close releases resources opened lazily.
func (c *Container) Close() error {
	if c.metrics != nil {
		return c.metrics.Close()
	}
	return nil
}
