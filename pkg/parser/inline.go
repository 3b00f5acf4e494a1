package parser

import (
	"fmt"
	"os"
	"sort"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/frontmatter"
	"github.com/iheanyi/lazyopencode/pkg/jsonc"
)

// inlineSpec describes how one opencode.json section maps onto
// customizations: which object holds the entries, and which field of each
// entry is the free-text body.
type inlineSpec struct {
	section     string
	bodyField   string
	ctype       customization.Type
	defaultDesc string // fmt pattern taking the entry name
}

// parseInlineSection synthesizes customizations from a named object in the
// settings file. Entry keys become names; the body field becomes the body of
// a synthesized frontmatter document; the remaining fields form both the
// frontmatter block and the Metadata mapping, except that the body field is
// excluded from both and the description field from Metadata only.
func parseInlineSection(configPath string, level customization.Level, spec inlineSpec) []*customization.Customization {
	config, err := jsonc.ParseFile(configPath)
	if err != nil {
		// Missing or malformed settings file means no inline items,
		// never a failed discovery pass.
		return nil
	}

	section, ok := config[spec.section].(map[string]any)
	if !ok {
		return nil
	}

	var customizations []*customization.Customization
	for _, name := range sortedKeys(section) {
		entry, ok := section[name].(map[string]any)
		if !ok {
			continue
		}

		body, _ := entry[spec.bodyField].(string)

		fmMeta := make(map[string]any, len(entry))
		metadata := make(map[string]any, len(entry))
		for k, v := range entry {
			if k == spec.bodyField {
				continue
			}
			fmMeta[k] = v
			if k != "description" {
				metadata[k] = v
			}
		}

		description := fmt.Sprintf(spec.defaultDesc, name)
		if desc, ok := entry["description"].(string); ok && desc != "" {
			description = desc
		}

		customizations = append(customizations, &customization.Customization{
			Name:        name,
			Type:        spec.ctype,
			Level:       level,
			Path:        configPath,
			Description: description,
			Content:     frontmatter.Synthesize(fmMeta, body),
			Metadata:    metadata,
		})
	}

	return customizations
}

// MCPParser extracts MCP server definitions from the "mcp" object of the
// settings file. MCP entries have no free-text field, so no frontmatter
// synthesis happens: the entry object is carried verbatim as Metadata.
type MCPParser struct{}

// ParseMCPs parses all MCP entries from the settings file at configPath.
func (p *MCPParser) ParseMCPs(configPath string, level customization.Level) []*customization.Customization {
	config, err := jsonc.ParseFile(configPath)
	if err != nil {
		return nil
	}

	section, ok := config["mcp"].(map[string]any)
	if !ok {
		return nil
	}

	var customizations []*customization.Customization
	for _, name := range sortedKeys(section) {
		entry, ok := section[name].(map[string]any)
		if !ok {
			continue
		}

		mcpType := "unknown"
		if t, ok := entry["type"].(string); ok && t != "" {
			mcpType = t
		}

		customizations = append(customizations, &customization.Customization{
			Name:        name,
			Type:        customization.TypeMCP,
			Level:       level,
			Path:        configPath,
			Description: fmt.Sprintf("MCP (%s)", mcpType),
			Metadata:    entry,
		})
	}

	return customizations
}

// sortedKeys returns the map's keys in sorted order so discovery output is
// deterministic across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isRegularFile reports whether path exists and is a regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
