package parser

import (
	"fmt"
	"path/filepath"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/frontmatter"
)

// AgentParser parses agent/*.md files and inline agent definitions from
// opencode.json.
type AgentParser struct{}

// CanParse checks if path is a markdown file directly under an agent directory.
func (p *AgentParser) CanParse(path string) bool {
	return isRegularFile(path) &&
		filepath.Ext(path) == ".md" &&
		filepath.Base(filepath.Dir(path)) == "agent"
}

// Parse reads an agent file, extracting frontmatter for metadata.
func (p *AgentParser) Parse(path string, level customization.Level) *customization.Customization {
	name := stem(path)
	c := &customization.Customization{
		Name:        name,
		Type:        customization.TypeAgent,
		Level:       level,
		Path:        path,
		Description: fmt.Sprintf("Agent: %s", name),
	}

	content, errMsg := readFileSafe(path)
	if errMsg != "" {
		c.Error = errMsg
		return c
	}

	meta, _ := frontmatter.Extract(content)
	if desc, ok := meta["description"].(string); ok && desc != "" {
		c.Description = desc
	}
	c.Content = content
	c.Metadata = meta

	return c
}

// ParseInline extracts agent definitions embedded in the settings file.
// The "prompt" field is the promoted body; remaining fields such as "mode"
// stay in metadata. Missing or unparsable settings files yield no items.
func (p *AgentParser) ParseInline(configPath string, level customization.Level) []*customization.Customization {
	return parseInlineSection(configPath, level, inlineSpec{
		section:     "agent",
		bodyField:   "prompt",
		ctype:       customization.TypeAgent,
		defaultDesc: "Agent: %s",
	})
}
