// Package frontmatter extracts and synthesizes YAML frontmatter blocks
// delimited by "---" lines at the start of a markdown document.
package frontmatter

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Extract splits content into its leading frontmatter mapping and body.
//
// The pattern is a "---" line, a YAML block, a closing "---" line, then the
// body. A trailing newline after the closing delimiter is optional. When the
// pattern does not match, or the block is not valid YAML, Extract returns an
// empty mapping and the original content unchanged. It never fails the
// caller: malformed metadata degrades to no metadata.
func Extract(content string) (map[string]any, string) {
	rest, ok := strings.CutPrefix(content, delimiter+"\n")
	if !ok {
		return map[string]any{}, content
	}

	block, body, ok := strings.Cut(rest, "\n"+delimiter)
	if !ok {
		return map[string]any{}, content
	}
	// The closing delimiter must end its line.
	if body != "" {
		if !strings.HasPrefix(body, "\n") {
			return map[string]any{}, content
		}
		body = body[1:]
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return map[string]any{}, content
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, body
}

// Synthesize builds a frontmatter document from a metadata mapping and a
// body. The output satisfies the same pattern Extract matches, so inline
// customizations render identically to file-based ones downstream. Keys are
// emitted in sorted order to keep the output deterministic.
func Synthesize(meta map[string]any, body string) string {
	var b strings.Builder
	b.WriteString(delimiter)
	b.WriteString("\n")

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	wrote := false
	for _, k := range keys {
		line, err := yaml.Marshal(map[string]any{k: meta[k]})
		if err != nil {
			continue
		}
		b.Write(line)
		wrote = true
	}
	if !wrote {
		// An empty block still needs a line between the delimiters for the
		// document to satisfy Extract's pattern.
		b.WriteString("\n")
	}

	b.WriteString(delimiter)
	b.WriteString("\n")
	b.WriteString(body)

	return b.String()
}
