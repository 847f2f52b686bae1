package fsprobe

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// BackupScanner finds archives named <prefix>*<suffix> in a single directory.
type BackupScanner struct {
	dir         string
	prefix      string
	suffix      string
	maxAgeDays  int
	recentLimit int
}

// NewBackupScanner builds a scanner from the backup settings.
func NewBackupScanner(cfg domain.BackupSettings) *BackupScanner {
	return &BackupScanner{
		dir:         cfg.Dir,
		prefix:      cfg.Prefix,
		suffix:      cfg.Suffix,
		maxAgeDays:  cfg.MaxAgeDays,
		recentLimit: cfg.RecentLimit,
	}
}

// Scan summarises the backup set. Staleness depends only on the newest archive.
func (s *BackupScanner) Scan(now time.Time) domain.BackupSetSummary {
	summary := domain.BackupSetSummary{Dir: s.dir, Status: domain.BackupsNone}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return summary
	}
	summary.DirExists = true

	var backups []domain.BackupEntry
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !s.matches(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, domain.BackupEntry{
			Name:      entry.Name(),
			SizeBytes: info.Size(),
			ModTime:   info.ModTime(),
			AgeDays:   ageDays(now, info.ModTime()),
		})
	}
	if len(backups) == 0 {
		return summary
	}

	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].ModTime.After(backups[j].ModTime)
	})

	for _, b := range backups {
		summary.TotalSizeBytes += b.SizeBytes
	}
	latest := backups[0]
	summary.Count = len(backups)
	summary.LatestName = latest.Name
	summary.LatestAgeDays = latest.AgeDays
	summary.LatestAge = now.Sub(latest.ModTime)
	if summary.LatestAge < 0 {
		summary.LatestAge = 0
	}

	summary.Status = domain.BackupsCurrent
	if latest.AgeDays > s.maxAgeDays {
		summary.Status = domain.BackupsOutdated
	}

	limit := s.recentLimit
	if limit <= 0 || limit > len(backups) {
		limit = len(backups)
	}
	summary.Recent = backups[:limit]
	return summary
}

func (s *BackupScanner) matches(name string) bool {
	return strings.HasPrefix(name, s.prefix) && strings.HasSuffix(name, s.suffix) &&
		len(name) >= len(s.prefix)+len(s.suffix)
}

var _ ports.BackupScanner = (*BackupScanner)(nil)
