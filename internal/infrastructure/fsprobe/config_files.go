package fsprobe

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/doeshing/claudectl/internal/domain"
	"github.com/doeshing/claudectl/internal/ports"
)

// ConfigInspector observes the markdown, compose and desktop configuration files.
type ConfigInspector struct {
	files domain.FileSettings
}

// NewConfigInspector builds an inspector for the configured file locations.
func NewConfigInspector(files domain.FileSettings) *ConfigInspector {
	return &ConfigInspector{files: files}
}

// Check returns the configuration checks in report order.
func (c *ConfigInspector) Check() []domain.ConfigCheck {
	return []domain.ConfigCheck{
		c.checkGlobal(),
		c.checkMCP(),
		c.checkCompose(),
	}
}

func (c *ConfigInspector) checkGlobal() domain.ConfigCheck {
	check := domain.ConfigCheck{Key: domain.ConfigKeyGlobalClaudeMD, Path: c.files.GlobalConfig}
	info, err := c.markdown(c.files.GlobalConfig, c.files.GlobalLineWarning)
	switch {
	case err != nil:
		check.State = domain.ConfigInvalid
		check.Unreadable = true
		check.Detail = err.Error()
	case !info.Exists:
		check.State = domain.ConfigMissing
	default:
		check.State = domain.ConfigPresent
		check.Detail = fmt.Sprintf("%d lines", info.Lines)
		if info.Lines == 0 {
			check.Warning = "file is empty"
		}
		if info.OverLimit() {
			check.Warning = fmt.Sprintf("%d lines exceeds recommended %d", info.Lines, info.LineLimit)
		}
	}
	return check
}

func (c *ConfigInspector) checkMCP() domain.ConfigCheck {
	mcp := c.MCPConfig()
	check := domain.ConfigCheck{Key: domain.ConfigKeyMCPConfig, Path: mcp.Path}
	switch {
	case !mcp.Found:
		check.State = domain.ConfigNotNeeded
		check.Detail = "not found"
		if len(c.files.DesktopConfigs) > 0 {
			check.Path = c.files.DesktopConfigs[0]
		}
		if mcp.TemplateExists {
			check.Path = mcp.TemplatePath
			check.Template = true
			check.Detail = "not found, template available"
		}
	case mcp.Invalid:
		check.State = domain.ConfigInvalid
		check.Detail = mcp.Err
	default:
		check.State = domain.ConfigPresent
		check.Detail = fmt.Sprintf("%d servers", len(mcp.Servers))
		if !mcp.HasServers {
			check.Warning = "no MCP servers configured"
		}
		if bad := invalidServers(mcp.Servers); len(bad) > 0 {
			check.Warning = "invalid server entries: " + strings.Join(bad, ", ")
		}
	}
	return check
}

func (c *ConfigInspector) checkCompose() domain.ConfigCheck {
	check := domain.ConfigCheck{Key: domain.ConfigKeyDockerCompose, Path: c.files.ComposeFile, State: domain.ConfigMissing}
	if Stat(c.files.ComposeFile).Exists {
		check.State = domain.ConfigPresent
	}
	return check
}

// GlobalConfig describes the global markdown configuration file.
func (c *ConfigInspector) GlobalConfig() domain.ConfigFileInfo {
	info, _ := c.markdown(c.files.GlobalConfig, c.files.GlobalLineWarning)
	return info
}

// ProjectConfig describes the markdown configuration file of the working directory.
func (c *ConfigInspector) ProjectConfig() domain.ConfigFileInfo {
	if c.files.ProjectConfig == "" {
		return domain.ConfigFileInfo{}
	}
	info, _ := c.markdown(c.files.ProjectConfig, c.files.ProjectLineWarning)
	return info
}

func (c *ConfigInspector) markdown(path string, limit int) (domain.ConfigFileInfo, error) {
	info := domain.ConfigFileInfo{Path: path, LineLimit: limit}
	stat := Stat(path)
	if stat.Err != nil {
		return info, stat.Err
	}
	if !stat.Exists {
		return info, nil
	}
	info.Exists = true
	info.SizeBytes = stat.Size
	lines, err := CountLines(path)
	if err != nil {
		return info, err
	}
	info.Lines = lines
	return info, nil
}

// MCPConfig reads the first desktop configuration that exists.
func (c *ConfigInspector) MCPConfig() domain.MCPConfigInfo {
	info := domain.MCPConfigInfo{TemplatePath: c.files.DesktopTemplate}
	if c.files.DesktopTemplate != "" {
		info.TemplateExists = Stat(c.files.DesktopTemplate).Exists
	}

	for _, path := range c.files.DesktopConfigs {
		if !Stat(path).Exists {
			continue
		}
		info.Path = path
		info.Found = true
		servers, hasServers, err := readMCPServers(path)
		if err != nil {
			info.Invalid = true
			info.Err = err.Error()
			return info
		}
		info.HasServers = hasServers
		info.Servers = servers
		return info
	}
	return info
}

func readMCPServers(path string) ([]domain.MCPServer, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("invalid JSON: %w", err)
	}
	raw, ok := doc["mcpServers"]
	if !ok {
		return nil, false, nil
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("invalid mcpServers: %w", err)
	}

	servers := make([]domain.MCPServer, 0, len(entries))
	for name, body := range entries {
		var settings struct {
			Command string `json:"command"`
		}
		if err := json.Unmarshal(body, &settings); err != nil {
			servers = append(servers, domain.MCPServer{Name: name, Err: err.Error()})
			continue
		}
		servers = append(servers, domain.MCPServer{Name: name, Command: settings.Command})
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	return servers, true, nil
}

func invalidServers(servers []domain.MCPServer) []string {
	var names []string
	for _, srv := range servers {
		if srv.Err != "" {
			names = append(names, srv.Name)
		}
	}
	return names
}

var _ ports.ConfigInspector = (*ConfigInspector)(nil)
