package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/claudectl/internal/domain"
)

// BackupCommand creates a fresh backup archive.
const BackupCommand = "~/.claude/manage-context.sh backup"

// Status writes the detailed environment status board.
func Status(w io.Writer, board domain.StatusBoard) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "+"+strings.Repeat("-", ruleWidth-2)+"+")
	fmt.Fprintf(w, "|%-*s|\n", ruleWidth-2, strings.Repeat(" ", 10)+"Claude Environment Monitor")
	fmt.Fprintln(w, "+"+strings.Repeat("-", ruleWidth-2)+"+")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Generated: %s\n\n", board.GeneratedAt.Format(timeLayout))

	statusVectorDB(w, board.VectorDB)
	statusBackups(w, board)
	statusClaudeMD(w, board.GlobalConfig, board.ProjectConfig)
	statusMCP(w, board.MCP)
	statusRecommendations(w, board.Recommendations)

	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(w, "For detailed management, use: ~/.claude/manage-context.sh")
	fmt.Fprintln(w)
}

func statusVectorDB(w io.Writer, d domain.VectorDBDetail) {
	heading(w, "Vector Database Status")
	defer fmt.Fprintln(w)

	if !d.DirExists {
		fmt.Fprintf(w, "%s Vector database not initialized\n", MarkFail)
		hint(w, "   ", "Run: mkdir -p "+d.DataDir)
		return
	}
	if !d.Snapshot.Exists {
		fmt.Fprintf(w, "%s Database directory exists but no data yet\n", MarkWarn)
		hint(w, "   ", "Start using vector DB to create database")
		return
	}

	fmt.Fprintf(w, "Database file: %s\n", size(d.Snapshot.SizeBytes))
	fmt.Fprintf(w, "Total size:    %s\n", size(d.DirSize))

	if d.Snapshot.State == domain.DatabaseError || d.TablesErr != "" {
		msg := d.TablesErr
		if msg == "" {
			msg = d.Snapshot.Message
		}
		fmt.Fprintf(w, "%s Could not read database: %s\n", MarkWarn, msg)
		return
	}

	if len(d.Tables) > 0 {
		fmt.Fprintf(w, "\nTables: %d\n", len(d.Tables))
		for _, t := range d.Tables {
			if t.Rows > 0 {
				fmt.Fprintf(w, "  - %s: %s records\n", t.Name, humanize.Comma(t.Rows))
			}
		}
	}
	fmt.Fprintf(w, "%s Database %s\n", mark(d.Snapshot.State.Health()), strings.ToLower(label(string(d.Snapshot.State))))
}

func statusBackups(w io.Writer, board domain.StatusBoard) {
	b := board.Backups
	heading(w, "Backup Status")
	defer fmt.Fprintln(w)

	if !b.DirExists {
		fmt.Fprintf(w, "%s Backup directory not found\n", MarkFail)
		hint(w, "   ", "Run: mkdir -p "+b.Dir)
		return
	}
	if b.Count == 0 {
		fmt.Fprintf(w, "%s No backups found\n", MarkWarn)
		hint(w, "   ", "Run: "+BackupCommand)
		return
	}

	fmt.Fprintf(w, "Total backups: %s\n", humanize.Comma(int64(b.Count)))
	fmt.Fprintf(w, "Total size:    %s\n\n", size(b.TotalSizeBytes))

	fmt.Fprintln(w, "Recent backups:")
	for _, entry := range b.Recent {
		fmt.Fprintf(w, "  %s %s\n", backupAgeMark(entry.AgeDays, board.BackupsWarnDays, board.BackupsErrDays), entry.Name)
		fmt.Fprintf(w, "     Age: %s | Size: %s\n", dayHours(board.GeneratedAt.Sub(entry.ModTime)), size(entry.SizeBytes))
	}
	fmt.Fprintln(w)

	if b.Status == domain.BackupsOutdated {
		fmt.Fprintf(w, "%s Backup is overdue (>%d days old)\n", MarkWarn, board.BackupsWarnDays)
		hint(w, "   ", "Run: "+BackupCommand)
		return
	}
	fmt.Fprintf(w, "%s Last backup: %s ago\n", MarkOK, dayHours(b.LatestAge))
}

func backupAgeMark(age, warnDays, errDays int) string {
	switch {
	case age > errDays:
		return MarkFail
	case age > warnDays:
		return MarkWarn
	default:
		return MarkOK
	}
}

func dayHours(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	day := d / (24 * time.Hour)
	hours := (d % (24 * time.Hour)) / time.Hour
	return fmt.Sprintf("%dd %dh", day, hours)
}

func statusClaudeMD(w io.Writer, global, project domain.ConfigFileInfo) {
	heading(w, "CLAUDE.md Files")
	defer fmt.Fprintln(w)

	if !global.Exists {
		fmt.Fprintf(w, "%s Global CLAUDE.md not found\n", MarkWarn)
		hint(w, "   ", "Create: "+global.Path)
		return
	}

	fmt.Fprintf(w, "Global config: %s\n", global.Path)
	fmt.Fprintf(w, "  Lines: %d\n", global.Lines)
	fmt.Fprintf(w, "  Size:  %s\n", size(global.SizeBytes))
	if global.OverLimit() {
		fmt.Fprintf(w, "  %s Warning: %d lines exceeds recommended %d\n", MarkWarn, global.Lines, global.LineLimit)
		hint(w, "     ", "Consider moving some content to project CLAUDE.md")
	} else {
		fmt.Fprintf(w, "  %s Size is optimal\n", MarkOK)
	}

	if project.Exists {
		fmt.Fprintf(w, "\nProject config: %s\n", project.Path)
		fmt.Fprintf(w, "  Lines: %d\n", project.Lines)
		fmt.Fprintf(w, "  Size:  %s\n", size(project.SizeBytes))
		if project.OverLimit() {
			fmt.Fprintf(w, "  %s Warning: Consider splitting into multiple files\n", MarkWarn)
		} else {
			fmt.Fprintf(w, "  %s Size is good\n", MarkOK)
		}
	}
}

func statusMCP(w io.Writer, mcp domain.MCPConfigInfo) {
	heading(w, "MCP Configuration")
	defer fmt.Fprintln(w)

	if !mcp.Found {
		if mcp.TemplateExists {
			fmt.Fprintf(w, "%s Claude Desktop config not found\n", MarkWarn)
			hint(w, "   ", "Template available: "+mcp.TemplatePath)
			hint(w, "   ", "Copy to appropriate location when using Claude Desktop")
			return
		}
		fmt.Fprintf(w, "%s No MCP configuration found\n", MarkWarn)
		return
	}

	fmt.Fprintf(w, "Config found: %s\n", mcp.Path)
	switch {
	case mcp.Invalid:
		fmt.Fprintf(w, "%s Could not read config: %s\n", MarkWarn, mcp.Err)
	case !mcp.HasServers:
		fmt.Fprintf(w, "%s No MCP servers configured\n", MarkWarn)
	default:
		fmt.Fprintf(w, "\nConfigured servers: %d\n", len(mcp.Servers))
		for _, srv := range mcp.Servers {
			if srv.Err != "" {
				fmt.Fprintf(w, "  %s %s\n", MarkFail, srv.Name)
				fmt.Fprintf(w, "    Invalid entry: %s\n", srv.Err)
				hint(w, "    ", "Fix the server entry in "+mcp.Path)
				continue
			}
			command := srv.Command
			if command == "" {
				command = "N/A"
			}
			fmt.Fprintf(w, "  %s %s\n", MarkOK, srv.Name)
			fmt.Fprintf(w, "    Command: %s\n", command)
		}
	}
}

func statusRecommendations(w io.Writer, recs []domain.Recommendation) {
	heading(w, "Recommendations")

	if len(recs) == 0 {
		fmt.Fprintf(w, "%s Everything looks good!\n\n", MarkOK)
		return
	}
	for i, rec := range recs {
		fmt.Fprintf(w, "%d. %s:\n", i+1, rec.Title)
		for _, action := range rec.Action {
			fmt.Fprintf(w, "   %s\n", action)
		}
		fmt.Fprintln(w)
	}
}
