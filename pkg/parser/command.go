package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/frontmatter"
)

// CommandParser parses command/*.md files and inline command definitions
// from opencode.json.
type CommandParser struct{}

// CanParse checks if path is a markdown file directly under a command directory.
func (p *CommandParser) CanParse(path string) bool {
	return isRegularFile(path) &&
		filepath.Ext(path) == ".md" &&
		filepath.Base(filepath.Dir(path)) == "command"
}

// Parse reads a command file, extracting frontmatter for metadata.
func (p *CommandParser) Parse(path string, level customization.Level) *customization.Customization {
	name := stem(path)
	c := &customization.Customization{
		Name:        name,
		Type:        customization.TypeCommand,
		Level:       level,
		Path:        path,
		Description: fmt.Sprintf("Command: %s", name),
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

// ParseInline extracts command definitions embedded in the settings file.
//
// Each entry's "template" field is promoted to the body of a synthesized
// frontmatter document so inline commands render like file-based ones. The
// promoted field never appears in the returned Metadata; "description" is
// kept in the synthesized frontmatter text but consumed as Description
// rather than duplicated into Metadata.
//
// A missing or unparsable settings file yields no customizations: that is
// not an error state for the discovery pass.
func (p *CommandParser) ParseInline(configPath string, level customization.Level) []*customization.Customization {
	return parseInlineSection(configPath, level, inlineSpec{
		section:     "command",
		bodyField:   "template",
		ctype:       customization.TypeCommand,
		defaultDesc: "Command: %s",
	})
}

// stem returns the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
