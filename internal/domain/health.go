package domain

import "time"

// HealthStatus is the probe-level outcome callers branch on.
// It never carries display text; renderers pick glyphs from the typed states below.
type HealthStatus string

const (
	HealthOK       HealthStatus = "ok"
	HealthDegraded HealthStatus = "degraded"
	HealthError    HealthStatus = "error"
)

// ServiceState classifies a container discovered (or not) by the runtime probe.
type ServiceState string

const (
	ServiceRunning  ServiceState = "running"
	ServiceStopped  ServiceState = "stopped"
	ServiceOptional ServiceState = "optional"
	ServiceUnknown  ServiceState = "unknown"
	ServiceError    ServiceState = "error"
)

// Health maps the state onto the probe vocabulary.
func (s ServiceState) Health() HealthStatus {
	switch s {
	case ServiceRunning, ServiceOptional:
		return HealthOK
	case ServiceStopped, ServiceUnknown:
		return HealthDegraded
	default:
		return HealthError
	}
}

// ServiceStatus is a fresh, never persisted, observation of one service.
type ServiceStatus struct {
	Name    string       `json:"name"`
	State   ServiceState `json:"state"`
	Message string       `json:"message,omitempty"`
}

// HeartbeatResult is the outcome of the vector database liveness request.
type HeartbeatResult struct {
	URL       string        `json:"url"`
	Reachable bool          `json:"reachable"`
	Message   string        `json:"message,omitempty"`
	Latency   time.Duration `json:"latency"`
}

// DatabaseState describes the on-disk vector database file.
type DatabaseState string

const (
	DatabaseHealthy        DatabaseState = "healthy"
	DatabaseEmpty          DatabaseState = "empty"
	DatabaseNotInitialized DatabaseState = "not_initialized"
	DatabaseError          DatabaseState = "error"
)

// Health maps the state onto the probe vocabulary.
func (s DatabaseState) Health() HealthStatus {
	switch s {
	case DatabaseHealthy:
		return HealthOK
	case DatabaseEmpty:
		return HealthDegraded
	default:
		return HealthError
	}
}

// DatabaseSnapshot is a read-only view of the vector database file.
// CollectionCount is nil when the count could not be determined.
type DatabaseSnapshot struct {
	Path            string        `json:"path"`
	State           DatabaseState `json:"status"`
	Exists          bool          `json:"exists"`
	SizeBytes       int64         `json:"size"`
	CollectionCount *int          `json:"collections"`
	LastModified    *time.Time    `json:"last_modified"`
	Message         string        `json:"message,omitempty"`
}

// BackupStatus classifies the newest backup archive.
type BackupStatus string

const (
	BackupsNone     BackupStatus = "none"
	BackupsCurrent  BackupStatus = "current"
	BackupsOutdated BackupStatus = "outdated"
)

// Health maps the status onto the probe vocabulary.
func (s BackupStatus) Health() HealthStatus {
	if s == BackupsCurrent {
		return HealthOK
	}
	return HealthDegraded
}

// BackupEntry is one archive found in the backup directory.
type BackupEntry struct {
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size"`
	ModTime   time.Time `json:"mod_time"`
	AgeDays   int       `json:"age_days"`
}

// BackupSetSummary aggregates every archive matching the backup naming pattern.
type BackupSetSummary struct {
	Dir            string        `json:"dir"`
	DirExists      bool          `json:"dir_exists"`
	Status         BackupStatus  `json:"status"`
	Count          int           `json:"count"`
	LatestName     string        `json:"latest,omitempty"`
	LatestAge      time.Duration `json:"latest_age"`
	LatestAgeDays  int           `json:"latest_age_days"`
	TotalSizeBytes int64         `json:"total_size"`
	Recent         []BackupEntry `json:"recent,omitempty"`
}

// ConfigState classifies an observed configuration file.
type ConfigState string

const (
	ConfigPresent   ConfigState = "present"
	ConfigMissing   ConfigState = "missing"
	ConfigInvalid   ConfigState = "invalid"
	ConfigNotNeeded ConfigState = "not_needed"
)

// Health maps the state onto the probe vocabulary.
func (s ConfigState) Health() HealthStatus {
	switch s {
	case ConfigPresent, ConfigNotNeeded:
		return HealthOK
	case ConfigMissing:
		return HealthDegraded
	default:
		return HealthError
	}
}

// Keys of the configuration checks, in report order.
const (
	ConfigKeyGlobalClaudeMD = "global_claude_md"
	ConfigKeyMCPConfig      = "mcp_config"
	ConfigKeyDockerCompose  = "docker_compose"
)

// ConfigCheck is the observation of a single configuration file.
type ConfigCheck struct {
	Key     string      `json:"key"`
	State   ConfigState `json:"state"`
	Path    string      `json:"path"`
	Detail  string      `json:"detail,omitempty"`
	Warning string      `json:"warning,omitempty"`

	// Template is set when Path names a template rather than the file itself.
	Template bool `json:"template,omitempty"`
	// Unreadable is set when the file exists but could not be read.
	Unreadable bool `json:"unreadable,omitempty"`
}

// DeductionCategory names a scoring category; each is penalised at most once.
type DeductionCategory string

const (
	DeductVectorDB DeductionCategory = "vector_db"
	DeductServices DeductionCategory = "services"
	DeductBackups  DeductionCategory = "backups"
	DeductConfig   DeductionCategory = "config"
)

// Deduction records points subtracted from the health score.
type Deduction struct {
	Category DeductionCategory `json:"category"`
	Points   int               `json:"points"`
}

// ScoreBand is the presentational grouping of a health score.
type ScoreBand string

const (
	BandGood    ScoreBand = "good"
	BandCaution ScoreBand = "caution"
	BandPoor    ScoreBand = "poor"
)

// BandFor returns the display band of score.
func BandFor(score int) ScoreBand {
	switch {
	case score >= 80:
		return BandGood
	case score >= 60:
		return BandCaution
	default:
		return BandPoor
	}
}

// HealthReport aggregates one monitoring run. It is not modified after construction.
type HealthReport struct {
	Score       int              `json:"score"`
	GeneratedAt time.Time        `json:"generated_at"`
	DB          DatabaseSnapshot `json:"vector_db"`
	Heartbeat   HeartbeatResult  `json:"heartbeat"`
	Services    []ServiceStatus  `json:"services"`
	Backups     BackupSetSummary `json:"backups"`
	Config      []ConfigCheck    `json:"config"`
	Deductions  []Deduction      `json:"deductions,omitempty"`
}

// Band returns the display band of the report score.
func (r HealthReport) Band() ScoreBand {
	return BandFor(r.Score)
}

// Service returns the status recorded for name.
func (r HealthReport) Service(name string) (ServiceStatus, bool) {
	for _, svc := range r.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ServiceStatus{}, false
}

// ConfigCheck returns the check recorded for key.
func (r HealthReport) ConfigCheck(key string) (ConfigCheck, bool) {
	for _, check := range r.Config {
		if check.Key == key {
			return check, true
		}
	}
	return ConfigCheck{}, false
}

// Deducted reports whether category lost points.
func (r HealthReport) Deducted(category DeductionCategory) bool {
	for _, d := range r.Deductions {
		if d.Category == category {
			return true
		}
	}
	return false
}
