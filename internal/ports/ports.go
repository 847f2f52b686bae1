// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application services in internal/application only see these contracts.
// Concrete adapters (filesystem probes, the container runtime, the vector
// database HTTP client and the SQLite metrics store) live in internal/infrastructure
// and are wired together by internal/app.
//
// Probe ports never return errors: every failure is folded into the status
// value they report. Only the collection admin and persistence ports return errors.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/claudectl/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.claude/claudectl.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// VectorStoreInspector reads the vector database file on disk.
type VectorStoreInspector interface {
	Snapshot(ctx context.Context) domain.DatabaseSnapshot
	Detail(ctx context.Context) domain.VectorDBDetail
}

// BackupScanner enumerates backup archives relative to now.
type BackupScanner interface {
	Scan(now time.Time) domain.BackupSetSummary
}

// ConfigInspector observes the configuration files of the environment.
type ConfigInspector interface {
	Check() []domain.ConfigCheck
	GlobalConfig() domain.ConfigFileInfo
	ProjectConfig() domain.ConfigFileInfo
	MCPConfig() domain.MCPConfigInfo
}

// ContainerProbe lists expected containers through the container runtime.
type ContainerProbe interface {
	Services(ctx context.Context) []domain.ServiceStatus
}

// Heartbeater checks liveness of the vector database HTTP API.
type Heartbeater interface {
	Heartbeat(ctx context.Context) domain.HeartbeatResult
}

// CollectionAdmin manages collections through the vector database HTTP API.
type CollectionAdmin interface {
	Heartbeater
	CreateCollection(ctx context.Context, def domain.CollectionDefinition) (domain.CreateOutcome, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	GetCollection(ctx context.Context, name string) (domain.Collection, error)
	AddDocuments(ctx context.Context, collection string, batch domain.DocumentBatch) error
}

// HealthLog appends health check rows.
type HealthLog interface {
	RecordHealthCheck(ctx context.Context, component, status, details string) error
}

// HealthHistory reads back health check rows, newest first.
type HealthHistory interface {
	RecentHealthChecks(ctx context.Context, limit int) ([]domain.HealthCheckRow, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
