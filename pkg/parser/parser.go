// Package parser recognizes and parses the individual customization formats:
// markdown files with YAML frontmatter under command/, agent/ and skill/,
// AGENTS.md rules files, plugin sources, and the inline definitions embedded
// in opencode.json.
package parser

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

// Parser recognizes one customization kind by path convention and parses
// matching files into Customization records. The recognition rules of the
// file parsers are disjoint, so checking order does not matter.
type Parser interface {
	// CanParse checks if this parser handles the given path.
	CanParse(path string) bool

	// Parse reads the file into a Customization. Read failures are captured
	// on the record's Error field, never returned: discovery of sibling
	// files must continue unaffected.
	Parse(path string, level customization.Level) *customization.Customization
}

// All returns the closed set of file parsers, one per customization kind.
func All() []Parser {
	return []Parser{
		&CommandParser{},
		&AgentParser{},
		&SkillParser{},
		&RulesParser{},
		&PluginParser{},
	}
}

// MaxFileSize caps how much of a customization file is read (1MB).
const MaxFileSize = 1 << 20

// readFileSafe reads a file as UTF-8 text, returning the content or an error
// message. Exactly one of the two return values is non-empty (an empty file
// reads as empty content with no error).
func readFileSafe(path string) (content, errMsg string) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Sprintf("failed to read file: %v", err)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Sprintf("file too large: %d bytes (max %d)", info.Size(), int64(MaxFileSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Sprintf("failed to read file: %v", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Sprintf("encoding error: %s is not valid UTF-8", path)
	}

	return string(data), ""
}
