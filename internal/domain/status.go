package domain

import "time"

// TableCount is a row count of one table in the vector database file.
type TableCount struct {
	Name string
	Rows int64
}

// ConfigFileInfo describes a markdown configuration file and its size budget.
type ConfigFileInfo struct {
	Path      string
	Exists    bool
	Lines     int
	SizeBytes int64
	LineLimit int
}

// OverLimit reports whether the file is longer than its line budget.
func (f ConfigFileInfo) OverLimit() bool {
	return f.Exists && f.LineLimit > 0 && f.Lines > f.LineLimit
}

// MCPServer is one entry of the desktop application's mcpServers mapping.
type MCPServer struct {
	Name    string
	Command string
	// Err is set when the entry could not be decoded.
	Err string
}

// MCPConfigInfo is the observed desktop application configuration.
type MCPConfigInfo struct {
	Path           string
	Found          bool
	Invalid        bool
	Err            string
	HasServers     bool
	Servers        []MCPServer
	TemplatePath   string
	TemplateExists bool
}

// VectorDBDetail extends the snapshot with directory level information.
type VectorDBDetail struct {
	Snapshot  DatabaseSnapshot
	DataDir   string
	DirExists bool
	DirSize   int64
	Tables    []TableCount
	TablesErr string
}

// Recommendation is a numbered action on the status board.
type Recommendation struct {
	Title  string
	Action []string
}

// StatusBoard is the detailed, read-only environment overview.
type StatusBoard struct {
	GeneratedAt     time.Time
	VectorDB        VectorDBDetail
	Backups         BackupSetSummary
	BackupsWarnDays int
	BackupsErrDays  int
	GlobalConfig    ConfigFileInfo
	ProjectConfig   ConfigFileInfo
	MCP             MCPConfigInfo
	Recommendations []Recommendation
}
