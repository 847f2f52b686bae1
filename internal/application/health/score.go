package health

import "github.com/doeshing/claudectl/internal/domain"

const maxScore = 100

// Deductions lists the categories the report loses points for, each at most once.
// primary names the service whose absence is penalised.
func Deductions(report domain.HealthReport, scoring domain.ScoringSettings, primary string) []domain.Deduction {
	var out []domain.Deduction
	add := func(category domain.DeductionCategory, points int) {
		if points > 0 {
			out = append(out, domain.Deduction{Category: category, Points: points})
		}
	}

	switch report.DB.State {
	case domain.DatabaseNotInitialized, domain.DatabaseError:
		add(domain.DeductVectorDB, scoring.VectorDBPenalty)
	}

	if svc, ok := report.Service(primary); ok && svc.State == domain.ServiceStopped {
		add(domain.DeductServices, scoring.ServicePenalty)
	}

	switch report.Backups.Status {
	case domain.BackupsNone, domain.BackupsOutdated:
		add(domain.DeductBackups, scoring.BackupPenalty)
	}

	if check, ok := report.ConfigCheck(domain.ConfigKeyGlobalClaudeMD); ok && check.State == domain.ConfigMissing {
		add(domain.DeductConfig, scoring.ConfigPenalty)
	}

	return out
}

// Score subtracts deductions from 100 and clamps the result at zero.
func Score(deductions []domain.Deduction) int {
	score := maxScore
	for _, d := range deductions {
		score -= d.Points
	}
	if score < 0 {
		score = 0
	}
	return score
}
