// Package customization defines the uniform record describing one discovered
// OpenCode customization, regardless of whether it came from a standalone
// file or was defined inline in opencode.json.
package customization

import (
	"fmt"
	"sort"
	"strings"
)

// Type identifies the kind of customization.
type Type string

const (
	TypeCommand Type = "command"
	TypeAgent   Type = "agent"
	TypeSkill   Type = "skill"
	TypeRules   Type = "rules"
	TypeMCP     Type = "mcp"
	TypePlugin  Type = "plugin"
)

// Label returns the display name for the type.
func (t Type) Label() string {
	switch t {
	case TypeCommand:
		return "Command"
	case TypeAgent:
		return "Agent"
	case TypeSkill:
		return "Skill"
	case TypeRules:
		return "Rules"
	case TypeMCP:
		return "MCP"
	case TypePlugin:
		return "Plugin"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the type is one of the known kinds.
func (t Type) IsValid() bool {
	switch t {
	case TypeCommand, TypeAgent, TypeSkill, TypeRules, TypeMCP, TypePlugin:
		return true
	default:
		return false
	}
}

// ParseType parses a string into a Type value.
// Accepts plural aliases for CLI convenience ("commands", "agents", ...).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSuffix(s, "s")) {
	case "command":
		return TypeCommand, nil
	case "agent":
		return TypeAgent, nil
	case "skill":
		return TypeSkill, nil
	case "rule", "rules":
		return TypeRules, nil
	case "mcp":
		return TypeMCP, nil
	case "plugin":
		return TypePlugin, nil
	default:
		return "", fmt.Errorf("invalid type: %q (use command, agent, skill, rules, mcp, or plugin)", s)
	}
}

// Level marks which configuration root produced a customization.
type Level string

const (
	// LevelGlobal is the user-wide config (~/.config/opencode).
	LevelGlobal Level = "global"

	// LevelProject is the repository-local config (.opencode under the project root).
	LevelProject Level = "project"
)

// Label returns the display name for the level.
func (l Level) Label() string {
	switch l {
	case LevelGlobal:
		return "Global"
	case LevelProject:
		return "Project"
	default:
		return "Unknown"
	}
}

// ShortString returns a short indicator for list output (e.g., [G] or [P]).
func (l Level) ShortString() string {
	switch l {
	case LevelGlobal:
		return "[G]"
	case LevelProject:
		return "[P]"
	default:
		return "[?]"
	}
}

// ParseLevel parses a string into a Level value.
// Accepts aliases: "user" for "global", "local" for "project".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "global", "user":
		return LevelGlobal, nil
	case "project", "local":
		return LevelProject, nil
	default:
		return "", fmt.Errorf("invalid level: %q (use global or project)", s)
	}
}

// Customization represents one discovered configuration artifact.
// Instances are created by the parsers and treated as immutable afterwards.
//
// Content and Error are mutually exclusive: when a file could not be read,
// Error carries the failure and Content is empty; otherwise Content holds the
// full textual representation (raw file text, or a synthesized frontmatter
// document for inline definitions).
type Customization struct {
	Name        string         `json:"name"`
	Type        Type           `json:"type"`
	Level       Level          `json:"level"`
	Path        string         `json:"path"`
	Description string         `json:"description"`
	Content     string         `json:"content,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// HasError reports whether the record failed to load.
func (c *Customization) HasError() bool {
	return c.Error != ""
}

// TypeLabel returns the display label for the record's type.
func (c *Customization) TypeLabel() string {
	return c.Type.Label()
}

// LevelLabel returns the display label for the record's level.
func (c *Customization) LevelLabel() string {
	return c.Level.Label()
}

// InspectTitle returns the display name for the detail pane header.
func (c *Customization) InspectTitle() string {
	return fmt.Sprintf("%s: %s", c.TypeLabel(), c.Name)
}

// InspectContent returns the formatted content for the detail pane viewport.
func (c *Customization) InspectContent() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Type:  %s\n", c.TypeLabel()))
	b.WriteString(fmt.Sprintf("Level: %s\n", c.LevelLabel()))
	if c.Path != "" {
		b.WriteString(fmt.Sprintf("Path:  %s\n", c.Path))
	}
	b.WriteString("\n")

	if c.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n\n", c.Description))
	}

	if c.HasError() {
		b.WriteString(fmt.Sprintf("Error: %s\n", c.Error))
		return b.String()
	}

	if len(c.Metadata) > 0 {
		b.WriteString("Metadata:\n")
		keys := make([]string, 0, len(c.Metadata))
		for k := range c.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  %s: %v\n", k, c.Metadata[k]))
		}
		b.WriteString("\n")
	}

	b.WriteString("Content:\n")
	b.WriteString(c.Content)

	return b.String()
}
