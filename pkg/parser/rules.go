package parser

import (
	"path/filepath"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

// RulesFileName is the fixed name of the rules file OpenCode reads at the
// global config root and the project root. At most one exists per level.
const RulesFileName = "AGENTS.md"

// RulesParser parses AGENTS.md rules files. Rules carry no frontmatter:
// the whole file is instruction text.
type RulesParser struct{}

// CanParse checks if path is an AGENTS.md file.
func (p *RulesParser) CanParse(path string) bool {
	return isRegularFile(path) && filepath.Base(path) == RulesFileName
}

// Parse reads a rules file as raw content.
func (p *RulesParser) Parse(path string, level customization.Level) *customization.Customization {
	c := &customization.Customization{
		Name:        RulesFileName,
		Type:        customization.TypeRules,
		Level:       level,
		Path:        path,
		Description: "Project rules and instructions",
	}

	content, errMsg := readFileSafe(path)
	if errMsg != "" {
		c.Error = errMsg
		return c
	}
	c.Content = content

	return c
}
