package parser

import (
	"fmt"
	"path/filepath"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/frontmatter"
)

// SkillParser parses skill/<name>/SKILL.md files. The skill is named after
// its own directory, not the SKILL.md file.
type SkillParser struct{}

// CanParse checks if path is a SKILL.md whose grandparent directory is skill/.
func (p *SkillParser) CanParse(path string) bool {
	return isRegularFile(path) &&
		filepath.Base(path) == "SKILL.md" &&
		filepath.Base(filepath.Dir(filepath.Dir(path))) == "skill"
}

// Parse reads a skill file, extracting frontmatter for metadata.
func (p *SkillParser) Parse(path string, level customization.Level) *customization.Customization {
	name := filepath.Base(filepath.Dir(path))
	c := &customization.Customization{
		Name:        name,
		Type:        customization.TypeSkill,
		Level:       level,
		Path:        path,
		Description: fmt.Sprintf("Skill: %s", name),
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
