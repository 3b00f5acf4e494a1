// Package discovery walks the global and project OpenCode configuration
// roots and produces the full list of customizations found at both levels.
package discovery

import (
	"os"
	"path/filepath"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/parser"
)

// SettingsFileName is the OpenCode settings file (JSONC) holding inline
// command/agent definitions and MCP server configs.
const SettingsFileName = "opencode.json"

// Service discovers customizations from the global config path and the
// project's .opencode directory. The discovered list is cached until
// Refresh is called; Service is not safe for concurrent use.
type Service struct {
	ProjectRoot      string
	GlobalConfigPath string

	cache  []*customization.Customization
	cached bool
}

// NewService creates a discovery service. Empty arguments fall back to the
// current working directory and the default global config path; passing
// explicit roots is how tests point the service at fixtures.
func NewService(projectRoot, globalConfigPath string) *Service {
	if projectRoot == "" {
		if cwd, err := os.Getwd(); err == nil {
			projectRoot = cwd
		} else {
			projectRoot = "."
		}
	}
	if globalConfigPath == "" {
		globalConfigPath = DefaultGlobalConfigPath()
	}
	return &Service{
		ProjectRoot:      projectRoot,
		GlobalConfigPath: globalConfigPath,
	}
}

// DefaultGlobalConfigPath returns OpenCode's global config directory,
// honoring XDG_CONFIG_HOME.
func DefaultGlobalConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "opencode")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "opencode")
	}
	return filepath.Join(homeDir, ".config", "opencode")
}

// ProjectConfigPath returns the project's .opencode directory.
func (s *Service) ProjectConfigPath() string {
	return filepath.Join(s.ProjectRoot, ".opencode")
}

// DiscoverAll returns every customization at both levels, global first.
// Within a level the order is commands, agents, skills, rules, MCPs,
// plugins. The result is cached; subsequent calls return the snapshot
// without touching the filesystem until Refresh.
func (s *Service) DiscoverAll() []*customization.Customization {
	if s.cached {
		return s.cache
	}

	var customizations []*customization.Customization
	customizations = append(customizations, s.discoverLevel(customization.LevelGlobal)...)
	customizations = append(customizations, s.discoverLevel(customization.LevelProject)...)

	s.cache = customizations
	s.cached = true
	return customizations
}

// ByType returns customizations of the given type, discovering first if needed.
func (s *Service) ByType(t customization.Type) []*customization.Customization {
	var out []*customization.Customization
	for _, c := range s.DiscoverAll() {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ByLevel returns customizations at the given level, discovering first if needed.
func (s *Service) ByLevel(l customization.Level) []*customization.Customization {
	var out []*customization.Customization
	for _, c := range s.DiscoverAll() {
		if c.Level == l {
			out = append(out, c)
		}
	}
	return out
}

// Refresh discards the cached snapshot so the next DiscoverAll re-reads the
// filesystem.
func (s *Service) Refresh() {
	s.cache = nil
	s.cached = false
}

// basePath is the directory holding command/, agent/, skill/ and plugin/
// for the level.
func (s *Service) basePath(level customization.Level) string {
	if level == customization.LevelGlobal {
		return s.GlobalConfigPath
	}
	return s.ProjectConfigPath()
}

// rootPath is where AGENTS.md and opencode.json live for the level: the
// global config root, or the project root itself (not .opencode).
func (s *Service) rootPath(level customization.Level) string {
	if level == customization.LevelGlobal {
		return s.GlobalConfigPath
	}
	return s.ProjectRoot
}

func (s *Service) discoverLevel(level customization.Level) []*customization.Customization {
	base := s.basePath(level)
	settingsPath := filepath.Join(s.rootPath(level), SettingsFileName)

	cmdParser := &parser.CommandParser{}
	agentParser := &parser.AgentParser{}
	mcpParser := &parser.MCPParser{}

	var items []*customization.Customization
	items = append(items, scanDir(filepath.Join(base, "command"), cmdParser, level)...)
	items = append(items, cmdParser.ParseInline(settingsPath, level)...)
	items = append(items, scanDir(filepath.Join(base, "agent"), agentParser, level)...)
	items = append(items, agentParser.ParseInline(settingsPath, level)...)
	items = append(items, scanDir(filepath.Join(base, "skill"), &parser.SkillParser{}, level)...)
	items = append(items, s.discoverRules(level)...)
	items = append(items, mcpParser.ParseMCPs(settingsPath, level)...)
	items = append(items, scanDir(filepath.Join(base, "plugin"), &parser.PluginParser{}, level)...)

	return items
}

// scanDir runs a parser over a single directory's entries. Subdirectories
// are probed for SKILL.md so the skill layout (skill/<name>/SKILL.md) goes
// through the same path as flat layouts; the parser's CanParse decides what
// actually matches. A missing or unreadable directory yields zero items and
// never aborts the level's remaining sub-discoveries.
func scanDir(dir string, p parser.Parser, level customization.Level) []*customization.Customization {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var items []*customization.Customization
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			path = filepath.Join(path, "SKILL.md")
		}
		if !p.CanParse(path) {
			continue
		}
		items = append(items, p.Parse(path, level))
	}
	return items
}

func (s *Service) discoverRules(level customization.Level) []*customization.Customization {
	path := filepath.Join(s.rootPath(level), parser.RulesFileName)
	rulesParser := &parser.RulesParser{}
	if !rulesParser.CanParse(path) {
		return nil
	}
	return []*customization.Customization{rulesParser.Parse(path, level)}
}
