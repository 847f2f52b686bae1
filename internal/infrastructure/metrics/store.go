package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// Store persists monitoring results in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// Open creates (or opens) the metrics database at path and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create metrics dir: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open metrics db: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init metrics schema: %w", err)
	}
	return store, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(Schema)
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordHealthCheck appends one row; the timestamp is set by the database.
func (s *Store) RecordHealthCheck(ctx context.Context, component, status, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO health_checks (component, status, details) VALUES (?, ?, ?)`,
		component, status, details,
	)
	if err != nil {
		return fmt.Errorf("record health check: %w", err)
	}
	return nil
}

// RecentHealthChecks returns up to limit rows, newest first. A limit of 0 returns all rows.
func (s *Store) RecentHealthChecks(ctx context.Context, limit int) ([]domain.HealthCheckRow, error) {
	query := `SELECT id, CAST(timestamp AS TEXT), component, status, details
		FROM health_checks ORDER BY id DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query health checks: %w", err)
	}
	defer rows.Close()

	var out []domain.HealthCheckRow
	for rows.Next() {
		var (
			row                        domain.HealthCheckRow
			ts, component, status, det sql.NullString
		)
		if err := rows.Scan(&row.ID, &ts, &component, &status, &det); err != nil {
			return nil, fmt.Errorf("scan health check: %w", err)
		}
		if t, err := time.ParseInLocation(sqliteTimestamp, ts.String, time.UTC); err == nil {
			row.Timestamp = t
		}
		row.Component = component.String
		row.Status = status.String
		row.Details = det.String
		out = append(out, row)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

var (
	_ ports.HealthLog     = (*Store)(nil)
	_ ports.HealthHistory = (*Store)(nil)
)
