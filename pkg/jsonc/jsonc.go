// Package jsonc reads JSON files that may contain // line comments, the
// dialect opencode.json is written in.
package jsonc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const commentMarker = "//"

// StripComments removes // comments from src line by line.
//
// A line whose trimmed form starts with the marker is dropped entirely.
// Otherwise the line is truncated at the first marker, but only when no
// quote character appears before it on that line. The quote check is a
// coarse heuristic, not a JSON string-aware scan: it keeps URLs like
// "https://example.com" intact because the opening quote precedes the
// double slash, but it can mis-handle lines mixing several string literals
// with comment markers. Callers accept that limitation.
func StripComments(src string) string {
	lines := strings.Split(src, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, commentMarker) {
			continue
		}

		if idx := strings.Index(line, commentMarker); idx >= 0 {
			if !strings.Contains(line[:idx], `"`) {
				line = line[:idx]
			}
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// Parse strips comments from data and unmarshals the remainder as strict JSON.
func Parse(data []byte, v any) error {
	clean := StripComments(string(data))
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return fmt.Errorf("parsing jsonc: %w", err)
	}
	return nil
}

// ParseFile reads and parses a JSONC file into a generic mapping. A missing
// or unreadable file surfaces as an error for the caller to recover from; it
// never panics or exits.
func ParseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var config map[string]any
	if err := Parse(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}
