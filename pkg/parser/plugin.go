package parser

import (
	"fmt"
	"path/filepath"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

// PluginParser parses plugin/*.js and plugin/*.ts files. Plugins are
// JavaScript sources, so no frontmatter is extracted: the file is shown raw.
type PluginParser struct{}

// CanParse checks if path is a plugin source file directly under a plugin directory.
func (p *PluginParser) CanParse(path string) bool {
	ext := filepath.Ext(path)
	return isRegularFile(path) &&
		(ext == ".js" || ext == ".ts") &&
		filepath.Base(filepath.Dir(path)) == "plugin"
}

// Parse reads a plugin file as raw content.
func (p *PluginParser) Parse(path string, level customization.Level) *customization.Customization {
	name := stem(path)
	c := &customization.Customization{
		Name:        name,
		Type:        customization.TypePlugin,
		Level:       level,
		Path:        path,
		Description: fmt.Sprintf("Plugin: %s", name),
	}

	content, errMsg := readFileSafe(path)
	if errMsg != "" {
		c.Error = errMsg
		return c
	}
	c.Content = content

	return c
}
