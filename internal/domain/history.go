package domain

import "time"

// Health check log components written after every monitoring run.
const (
	ComponentOverall  = "overall"
	ComponentVectorDB = "vector_db"
)

// HealthCheckRow is a persisted, append-only health check log entry.
type HealthCheckRow struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Component string    `json:"component"`
	Status    string    `json:"status"`
	Details   string    `json:"details"`
}

// SessionMetricsRow mirrors the sessions table. This tool only creates the table;
// rows are written by other tooling.
type SessionMetricsRow struct {
	ID             int64     `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	MaxContextPct  float64   `json:"max_context_pct"`
	AutoCompacts   int       `json:"auto_compacts"`
	ManualCompacts int       `json:"manual_compacts"`
	CacheHitRate   float64   `json:"cache_hit_rate"`
	VectorQueries  int       `json:"vector_queries"`
}
