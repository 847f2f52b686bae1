package health

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// Service runs the probes sequentially and scores the environment.
type Service struct {
	VectorStore ports.VectorStoreInspector
	Containers  ports.ContainerProbe
	VectorAPI   ports.Heartbeater
	Backups     ports.BackupScanner
	ConfigFiles ports.ConfigInspector
	// HealthLog is optional; without it the report is not persisted.
	HealthLog      ports.HealthLog
	Logger         ports.Logger
	Scoring        domain.ScoringSettings
	PrimaryService string
	Now            func() time.Time
}

// Run collects every probe result, computes the score and appends the outcome
// to the health log. Probe failures are part of the report, never errors.
func (s *Service) Run(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{GeneratedAt: s.now()}

	report.DB = s.VectorStore.Snapshot(ctx)
	if s.VectorAPI != nil {
		report.Heartbeat = s.VectorAPI.Heartbeat(ctx)
	}
	report.Services = s.Containers.Services(ctx)
	report.Backups = s.Backups.Scan(report.GeneratedAt)
	report.Config = s.ConfigFiles.Check()

	report.Deductions = Deductions(report, s.Scoring, s.PrimaryService)
	report.Score = Score(report.Deductions)

	s.debug("health check complete", map[string]interface{}{
		"score":      report.Score,
		"deductions": len(report.Deductions),
		"vector_db":  string(report.DB.State),
		"backups":    string(report.Backups.Status),
	})

	s.persist(ctx, report)
	return report
}

func (s *Service) persist(ctx context.Context, report domain.HealthReport) {
	if s.HealthLog == nil {
		return
	}

	score := strconv.Itoa(report.Score)
	if err := s.HealthLog.RecordHealthCheck(ctx, domain.ComponentOverall, score, fmt.Sprintf("Health score: %d/100", report.Score)); err != nil {
		s.warn("failed to record health score", err)
	}

	details, err := json.Marshal(report.DB)
	if err != nil {
		s.warn("failed to encode vector db snapshot", err)
		return
	}
	if err := s.HealthLog.RecordHealthCheck(ctx, domain.ComponentVectorDB, string(report.DB.State), string(details)); err != nil {
		s.warn("failed to record vector db status", err)
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}

func (s *Service) warn(msg string, err error) {
	if s.Logger != nil {
		s.Logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}
