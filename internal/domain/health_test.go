package domain_test

import (
	"testing"

	"github.com/doeshing/claudectl/internal/domain"
)

// TestBandFor tests the score band boundaries
func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  domain.ScoreBand
	}{
		{100, domain.BandGood},
		{80, domain.BandGood},
		{79, domain.BandCaution},
		{60, domain.BandCaution},
		{59, domain.BandPoor},
		{0, domain.BandPoor},
	}

	for _, tt := range tests {
		if got := domain.BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// TestStates_Health tests the mapping of typed states onto probe outcomes
func TestStates_Health(t *testing.T) {
	tests := []struct {
		name string
		got  domain.HealthStatus
		want domain.HealthStatus
	}{
		{"running service", domain.ServiceRunning.Health(), domain.HealthOK},
		{"optional service", domain.ServiceOptional.Health(), domain.HealthOK},
		{"stopped service", domain.ServiceStopped.Health(), domain.HealthDegraded},
		{"unknown service", domain.ServiceUnknown.Health(), domain.HealthDegraded},
		{"runtime error", domain.ServiceError.Health(), domain.HealthError},
		{"healthy database", domain.DatabaseHealthy.Health(), domain.HealthOK},
		{"empty database", domain.DatabaseEmpty.Health(), domain.HealthDegraded},
		{"missing database", domain.DatabaseNotInitialized.Health(), domain.HealthError},
		{"current backups", domain.BackupsCurrent.Health(), domain.HealthOK},
		{"outdated backups", domain.BackupsOutdated.Health(), domain.HealthDegraded},
		{"no backups", domain.BackupsNone.Health(), domain.HealthDegraded},
		{"config not needed", domain.ConfigNotNeeded.Health(), domain.HealthOK},
		{"config missing", domain.ConfigMissing.Health(), domain.HealthDegraded},
		{"config invalid", domain.ConfigInvalid.Health(), domain.HealthError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestHealthReport_Lookups tests service, config and deduction lookups
func TestHealthReport_Lookups(t *testing.T) {
	report := domain.HealthReport{
		Score:      85,
		Services:   []domain.ServiceStatus{{Name: "chroma", State: domain.ServiceRunning}},
		Config:     []domain.ConfigCheck{{Key: domain.ConfigKeyDockerCompose, State: domain.ConfigMissing}},
		Deductions: []domain.Deduction{{Category: domain.DeductBackups, Points: 15}},
	}

	if svc, ok := report.Service("chroma"); !ok || svc.State != domain.ServiceRunning {
		t.Errorf("Service(chroma) = %+v, %v", svc, ok)
	}
	if _, ok := report.Service("qdrant"); ok {
		t.Error("Service(qdrant) should not be found")
	}
	if _, ok := report.ConfigCheck(domain.ConfigKeyGlobalClaudeMD); ok {
		t.Error("ConfigCheck(global_claude_md) should not be found")
	}
	if !report.Deducted(domain.DeductBackups) || report.Deducted(domain.DeductVectorDB) {
		t.Errorf("unexpected deductions: %+v", report.Deductions)
	}
	if report.Band() != domain.BandGood {
		t.Errorf("Band() = %q, want good", report.Band())
	}
}
