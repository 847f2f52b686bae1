package fsprobe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/claudectl/internal/domain"
)

func fileSettings(root string) domain.FileSettings {
	return domain.FileSettings{
		GlobalConfig:       filepath.Join(root, "CLAUDE.md"),
		ProjectConfig:      filepath.Join(root, "project", "CLAUDE.md"),
		ComposeFile:        filepath.Join(root, "docker-compose.yml"),
		DesktopConfigs:     []string{filepath.Join(root, "linux", "claude_desktop_config.json"), filepath.Join(root, "mac", "claude_desktop_config.json")},
		DesktopTemplate:    filepath.Join(root, "claude_desktop_config.template.json"),
		GlobalLineWarning:  200,
		ProjectLineWarning: 300,
	}
}

func writeText(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCheckMinimalDirectory(t *testing.T) {
	root := t.TempDir()

	checks := NewConfigInspector(fileSettings(root)).Check()

	require.Len(t, checks, 3)
	assert.Equal(t, domain.ConfigKeyGlobalClaudeMD, checks[0].Key)
	assert.Equal(t, domain.ConfigMissing, checks[0].State)
	assert.Equal(t, domain.ConfigKeyMCPConfig, checks[1].Key)
	assert.Equal(t, domain.ConfigNotNeeded, checks[1].State)
	assert.Equal(t, filepath.Join(root, "linux", "claude_desktop_config.json"), checks[1].Path)
	assert.False(t, checks[1].Template)
	assert.Equal(t, domain.ConfigKeyDockerCompose, checks[2].Key)
	assert.Equal(t, domain.ConfigMissing, checks[2].State)
}

func TestCheckPresentFiles(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.GlobalConfig, "# rules\n- be terse\n")
	writeText(t, settings.ComposeFile, "services: {}\n")
	writeText(t, settings.DesktopConfigs[1], `{"mcpServers": {"memory": {"command": "npx"}, "chroma": {"command": "uvx"}}}`)

	checks := NewConfigInspector(settings).Check()

	assert.Equal(t, domain.ConfigPresent, checks[0].State)
	assert.Equal(t, "2 lines", checks[0].Detail)
	assert.Empty(t, checks[0].Warning)
	assert.Equal(t, domain.ConfigPresent, checks[1].State)
	assert.Equal(t, "2 servers", checks[1].Detail)
	assert.Equal(t, settings.DesktopConfigs[1], checks[1].Path)
	assert.Equal(t, domain.ConfigPresent, checks[2].State)
}

func TestCheckWarnsOnLongGlobalConfig(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.GlobalConfig, strings.Repeat("line\n", 250))

	check := NewConfigInspector(settings).Check()[0]

	assert.Equal(t, domain.ConfigPresent, check.State)
	assert.Equal(t, "250 lines exceeds recommended 200", check.Warning)
}

func TestCheckInvalidDesktopConfig(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.DesktopConfigs[0], `{"mcpServers": `)

	check := NewConfigInspector(settings).Check()[1]

	assert.Equal(t, domain.ConfigInvalid, check.State)
	assert.Contains(t, check.Detail, "invalid JSON")
}

func TestCheckReportsTemplateWhenDesktopConfigMissing(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.DesktopTemplate, `{}`)

	check := NewConfigInspector(settings).Check()[1]

	assert.Equal(t, domain.ConfigNotNeeded, check.State)
	assert.Equal(t, settings.DesktopTemplate, check.Path)
	assert.True(t, check.Template)
}

func TestCheckGlobalConfigUnreadable(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	require.NoError(t, os.MkdirAll(settings.GlobalConfig, 0o755))

	check := NewConfigInspector(settings).Check()[0]

	assert.Equal(t, domain.ConfigInvalid, check.State)
	assert.True(t, check.Unreadable)
	assert.NotEmpty(t, check.Detail)
}

func TestMCPConfigFlagsMalformedServerEntries(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.DesktopConfigs[0], `{"mcpServers": {"broken": "npx", "memory": {"command": "npx"}}}`)

	inspector := NewConfigInspector(settings)
	mcp := inspector.MCPConfig()
	check := inspector.Check()[1]

	require.Len(t, mcp.Servers, 2)
	assert.Equal(t, "broken", mcp.Servers[0].Name)
	assert.NotEmpty(t, mcp.Servers[0].Err)
	assert.Empty(t, mcp.Servers[0].Command)
	assert.Equal(t, domain.MCPServer{Name: "memory", Command: "npx"}, mcp.Servers[1])
	assert.Equal(t, domain.ConfigPresent, check.State)
	assert.Equal(t, "invalid server entries: broken", check.Warning)
}

func TestMCPConfigListsServersSorted(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.DesktopConfigs[0], `{"mcpServers": {"zeta": {"command": "z"}, "alpha": {"args": []}}}`)
	writeText(t, settings.DesktopConfigs[1], `not json at all`)

	mcp := NewConfigInspector(settings).MCPConfig()

	assert.True(t, mcp.Found)
	assert.False(t, mcp.Invalid, "the first existing candidate wins")
	assert.True(t, mcp.HasServers)
	assert.Equal(t, []domain.MCPServer{{Name: "alpha"}, {Name: "zeta", Command: "z"}}, mcp.Servers)
}

func TestMCPConfigWithoutServersKey(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.DesktopConfigs[0], `{"theme": "dark"}`)

	inspector := NewConfigInspector(settings)
	mcp := inspector.MCPConfig()
	check := inspector.Check()[1]

	assert.True(t, mcp.Found)
	assert.False(t, mcp.HasServers)
	assert.Equal(t, domain.ConfigPresent, check.State)
	assert.Equal(t, "no MCP servers configured", check.Warning)
}

func TestProjectConfigLineLimit(t *testing.T) {
	root := t.TempDir()
	settings := fileSettings(root)
	writeText(t, settings.ProjectConfig, strings.Repeat("x\n", 301))

	info := NewConfigInspector(settings).ProjectConfig()

	assert.True(t, info.Exists)
	assert.Equal(t, 301, info.Lines)
	assert.True(t, info.OverLimit())
}
