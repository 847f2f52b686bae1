package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/claudectl/internal/domain"
)

// Remediation commands of the local environment.
const (
	HintInitDB        = "Run 'claude-init-db' to initialize vector database"
	HintStartServices = "Run 'claude-start' to start Docker services"
	HintPopulateDB    = "Run 'claude-init-db' to create the standard collections"
	HintBackup        = "Run 'claude-backup' to create a backup"
	HintRuntime       = "Install Docker or start the Docker daemon"
	HintCompose       = "Restore docker-compose.yml in the Claude directory"
)

// Health writes the health dashboard for report followed by targets.
func Health(w io.Writer, report domain.HealthReport, targets []string) {
	fmt.Fprintln(w)
	banner(w, "Claude Environment Health Dashboard")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s Overall Health Score: %d/100 (%s)\n\n", bandMark(report.Band()), report.Score, report.Band())

	healthVectorDB(w, report.DB, report.Heartbeat)
	healthServices(w, report.Services)
	healthBackups(w, report.Backups)
	healthConfig(w, report.Config)

	fmt.Fprintln(w, "Performance Targets")
	for _, target := range targets {
		fmt.Fprintf(w, "  %s\n", target)
	}
	fmt.Fprintln(w)

	if report.Score < 80 {
		actions := recommendedActions(report)
		if len(actions) > 0 {
			fmt.Fprintln(w, "Recommended Actions:")
			for _, action := range actions {
				fmt.Fprintf(w, "  - %s\n", action)
			}
			fmt.Fprintln(w)
		}
	}
}

func healthVectorDB(w io.Writer, db domain.DatabaseSnapshot, hb domain.HeartbeatResult) {
	fmt.Fprintln(w, "Vector Database")
	status := label(string(db.State))
	if db.Message != "" {
		status += ": " + db.Message
	}
	fmt.Fprintf(w, "  Status: %s %s\n", mark(db.State.Health()), status)
	switch db.State {
	case domain.DatabaseNotInitialized, domain.DatabaseError:
		hint(w, "    ", HintInitDB)
	case domain.DatabaseEmpty:
		hint(w, "    ", HintPopulateDB)
	}
	fmt.Fprintf(w, "  Size: %s\n", size(db.SizeBytes))
	if db.CollectionCount != nil {
		fmt.Fprintf(w, "  Collections: %d\n", *db.CollectionCount)
	} else if db.Exists {
		fmt.Fprintln(w, "  Collections: unknown")
	} else {
		fmt.Fprintln(w, "  Collections: 0")
	}
	if db.LastModified != nil {
		fmt.Fprintf(w, "  Last Modified: %s\n", db.LastModified.Format("2006-01-02 15:04"))
	}
	if hb.URL != "" {
		if hb.Reachable {
			fmt.Fprintf(w, "  API: %s reachable at %s\n", MarkOK, hb.URL)
		} else {
			fmt.Fprintf(w, "  API: %s %s (%s)\n", MarkInfo, hb.Message, hb.URL)
			hint(w, "    ", HintStartServices)
		}
	}
	fmt.Fprintln(w)
}

func healthServices(w io.Writer, services []domain.ServiceStatus) {
	fmt.Fprintln(w, "Docker Services")
	for _, svc := range services {
		status := label(string(svc.State))
		if svc.Message != "" {
			status += ": " + svc.Message
		}
		fmt.Fprintf(w, "  %s: %s %s\n", title(svc.Name), serviceMark(svc.State), status)
		switch svc.State {
		case domain.ServiceStopped:
			hint(w, "    ", HintStartServices)
		case domain.ServiceError:
			hint(w, "    ", HintRuntime)
		}
	}
	fmt.Fprintln(w)
}

func healthBackups(w io.Writer, b domain.BackupSetSummary) {
	fmt.Fprintln(w, "Backups")
	status := label(string(b.Status))
	if b.Status == domain.BackupsNone {
		status = "No backups"
	}
	fmt.Fprintf(w, "  Status: %s %s\n", mark(b.Status.Health()), status)
	if b.Status != domain.BackupsCurrent {
		hint(w, "    ", HintBackup)
	}
	fmt.Fprintf(w, "  Count: %s\n", humanize.Comma(int64(b.Count)))
	if b.LatestName != "" {
		fmt.Fprintf(w, "  Latest: %s\n", b.LatestName)
		fmt.Fprintf(w, "  Age: %s ago\n", days(b.LatestAgeDays))
	}
	fmt.Fprintf(w, "  Total Size: %s\n", size(b.TotalSizeBytes))
	fmt.Fprintln(w)
}

func healthConfig(w io.Writer, checks []domain.ConfigCheck) {
	fmt.Fprintln(w, "Configuration")
	for _, check := range checks {
		status := label(string(check.State))
		if check.Detail != "" {
			status += " (" + check.Detail + ")"
		}
		fmt.Fprintf(w, "  %s: %s %s\n", title(check.Key), configMark(check.State), status)
		if check.Warning != "" {
			fmt.Fprintf(w, "    %s %s\n", MarkWarn, check.Warning)
		}
		if h := configHint(check); h != "" {
			hint(w, "    ", h)
		}
	}
	fmt.Fprintln(w)
}

func configHint(check domain.ConfigCheck) string {
	switch check.State {
	case domain.ConfigMissing:
		if check.Key == domain.ConfigKeyDockerCompose {
			return HintCompose
		}
		return "Create " + check.Path
	case domain.ConfigInvalid:
		if check.Unreadable {
			return "Check the permissions of " + check.Path
		}
		return "Fix the syntax of " + check.Path
	case domain.ConfigNotNeeded:
		switch {
		case check.Template:
			return "Template available: " + check.Path
		case check.Path != "":
			return "Create " + check.Path + " (only needed for Claude Desktop)"
		}
	}
	return ""
}

func recommendedActions(report domain.HealthReport) []string {
	var actions []string
	if report.Deducted(domain.DeductVectorDB) {
		actions = append(actions, HintInitDB)
	}
	if report.Deducted(domain.DeductServices) {
		actions = append(actions, HintStartServices)
	}
	if report.Deducted(domain.DeductBackups) {
		actions = append(actions, HintBackup)
	}
	if report.Deducted(domain.DeductConfig) {
		if check, ok := report.ConfigCheck(domain.ConfigKeyGlobalClaudeMD); ok {
			actions = append(actions, "Create "+check.Path)
		}
	}
	return actions
}
