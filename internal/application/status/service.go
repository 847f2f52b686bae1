package status

import (
	"context"
	"fmt"
	"time"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

const backupCommand = "Run: ~/.claude/manage-context.sh backup"

// Service assembles the detailed environment status board.
type Service struct {
	VectorStore ports.VectorStoreInspector
	Backups     ports.BackupScanner
	ConfigFiles ports.ConfigInspector
	Settings    domain.BackupSettings
	Now         func() time.Time
}

// Board observes the environment. It never writes anything.
func (s *Service) Board(ctx context.Context) domain.StatusBoard {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	board := domain.StatusBoard{
		GeneratedAt:     now,
		VectorDB:        s.VectorStore.Detail(ctx),
		Backups:         s.Backups.Scan(now),
		BackupsWarnDays: s.Settings.MaxAgeDays,
		BackupsErrDays:  s.Settings.ErrorAgeDays,
		GlobalConfig:    s.ConfigFiles.GlobalConfig(),
		ProjectConfig:   s.ConfigFiles.ProjectConfig(),
		MCP:             s.ConfigFiles.MCPConfig(),
	}
	board.Recommendations = Recommendations(board)
	return board
}

// Recommendations derives the numbered action list from a board.
func Recommendations(board domain.StatusBoard) []domain.Recommendation {
	var recs []domain.Recommendation

	if !board.VectorDB.Snapshot.Exists {
		recs = append(recs, domain.Recommendation{
			Title: "Initialize vector database",
			Action: []string{
				"Run: claudectl init-vectordb",
				"In Claude: 'Store in memory: Setup complete'",
			},
		})
	}

	switch {
	case board.Backups.Count == 0:
		recs = append(recs, domain.Recommendation{Title: "Create initial backup", Action: []string{backupCommand}})
	case board.Backups.Status == domain.BackupsOutdated:
		recs = append(recs, domain.Recommendation{Title: "Create fresh backup", Action: []string{backupCommand}})
	}

	if board.GlobalConfig.OverLimit() {
		recs = append(recs, domain.Recommendation{
			Title: "Optimize CLAUDE.md",
			Action: []string{
				fmt.Sprintf("Current: %d lines, recommended: <%d", board.GlobalConfig.Lines, board.GlobalConfig.LineLimit),
				"Move project-specific content to ./CLAUDE.md",
			},
		})
	}

	return recs
}
