package metrics

// Schema creates the metrics tables. Every statement is safe to run on each start.
const Schema = `
-- Sessions table: per-session context and cache metrics, filled by other tooling
CREATE TABLE IF NOT EXISTS sessions (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp       DATETIME DEFAULT CURRENT_TIMESTAMP,
    max_context_pct REAL,
    auto_compacts   INTEGER DEFAULT 0,
    manual_compacts INTEGER DEFAULT 0,
    cache_hit_rate  REAL,
    vector_queries  INTEGER DEFAULT 0
);

-- Health checks table: append-only log of monitoring runs
CREATE TABLE IF NOT EXISTS health_checks (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
    component TEXT,
    status    TEXT,
    details   TEXT
);
`

// sqliteTimestamp is the layout CURRENT_TIMESTAMP produces, always UTC.
const sqliteTimestamp = "2006-01-02 15:04:05"
