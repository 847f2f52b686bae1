package fsprobe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// VectorStore inspects the vector database's SQLite file without modifying it.
type VectorStore struct {
	dataDir string
	path    string
}

// NewVectorStore builds an inspector for the configured data directory.
func NewVectorStore(cfg domain.VectorDBSettings) *VectorStore {
	return &VectorStore{dataDir: cfg.DataDir, path: cfg.DatabasePath()}
}

// Snapshot reports existence, size and collection count of the database file.
// The collection count is left nil when the collections table cannot be read.
func (v *VectorStore) Snapshot(ctx context.Context) domain.DatabaseSnapshot {
	snap := domain.DatabaseSnapshot{Path: v.path}

	stat := Stat(v.path)
	if stat.Err != nil {
		snap.State = domain.DatabaseError
		snap.Message = stat.Err.Error()
		return snap
	}
	if !stat.Exists {
		snap.State = domain.DatabaseNotInitialized
		return snap
	}

	modified := stat.ModTime
	snap.Exists = true
	snap.SizeBytes = stat.Size
	snap.LastModified = &modified
	if stat.Size == 0 {
		snap.State = domain.DatabaseEmpty
		return snap
	}

	db, err := v.open(ctx)
	if err != nil {
		snap.State = domain.DatabaseError
		snap.Message = err.Error()
		return snap
	}
	defer db.Close()

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections").Scan(&count); err == nil {
		snap.CollectionCount = &count
	}
	snap.State = domain.DatabaseHealthy
	return snap
}

// Detail extends the snapshot with directory size and per-table row counts.
func (v *VectorStore) Detail(ctx context.Context) domain.VectorDBDetail {
	detail := domain.VectorDBDetail{
		Snapshot: v.Snapshot(ctx),
		DataDir:  v.dataDir,
	}
	dir := Stat(v.dataDir)
	detail.DirExists = dir.Exists && dir.IsDir
	if detail.DirExists {
		detail.DirSize = DirSize(v.dataDir)
	}
	if detail.Snapshot.State != domain.DatabaseHealthy {
		return detail
	}

	tables, err := v.tableCounts(ctx)
	if err != nil {
		detail.TablesErr = err.Error()
		return detail
	}
	detail.Tables = tables
	return detail
}

func (v *VectorStore) tableCounts(ctx context.Context) ([]domain.TableCount, error) {
	db, err := v.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	counts := make([]domain.TableCount, 0, len(names))
	for _, name := range names {
		var n int64
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(name)).Scan(&n); err != nil {
			continue
		}
		counts = append(counts, domain.TableCount{Name: name, Rows: n})
	}
	return counts, nil
}

func (v *VectorStore) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+v.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", v.path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", v.path, err)
	}
	return db, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

var _ ports.VectorStoreInspector = (*VectorStore)(nil)
