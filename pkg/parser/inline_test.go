package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/frontmatter"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "opencode.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseInlineCommands(t *testing.T) {
	path := writeSettings(t, `{
		"command": {
			"test-cmd": {
				"template": "Hello $ARGUMENTS",
				"description": "Test command",
				"agent": "test-agent"
			}
		}
	}`)

	customizations := (&CommandParser{}).ParseInline(path, customization.LevelProject)
	if len(customizations) != 1 {
		t.Fatalf("got %d customizations, want 1", len(customizations))
	}

	cmd := customizations[0]
	if cmd.Name != "test-cmd" {
		t.Errorf("Name = %q", cmd.Name)
	}
	if cmd.Type != customization.TypeCommand {
		t.Errorf("Type = %v", cmd.Type)
	}
	if cmd.Description != "Test command" {
		t.Errorf("Description = %q", cmd.Description)
	}
	if cmd.Path != path {
		t.Errorf("Path = %q, want the settings file", cmd.Path)
	}

	// The synthesized content is a frontmatter document: delimiters, the
	// structured fields (description included), then the template as body.
	if !strings.HasPrefix(cmd.Content, "---") {
		t.Errorf("Content = %q, want frontmatter document", cmd.Content)
	}
	if !strings.Contains(cmd.Content, "description: Test command") {
		t.Errorf("Content missing description line:\n%s", cmd.Content)
	}
	if !strings.Contains(cmd.Content, "agent: test-agent") {
		t.Errorf("Content missing agent line:\n%s", cmd.Content)
	}

	meta, body := frontmatter.Extract(cmd.Content)
	if !strings.Contains(body, "Hello $ARGUMENTS") {
		t.Errorf("body = %q, want promoted template", body)
	}
	if _, ok := meta["template"]; ok {
		t.Error("synthesized frontmatter must not contain the template field")
	}

	// Metadata excludes the promoted body field and the description.
	if _, ok := cmd.Metadata["template"]; ok {
		t.Error("Metadata must not contain template")
	}
	if _, ok := cmd.Metadata["description"]; ok {
		t.Error("Metadata must not contain description")
	}
	if cmd.Metadata["agent"] != "test-agent" {
		t.Errorf("Metadata = %v", cmd.Metadata)
	}
}

func TestParseInlineCommandDefaults(t *testing.T) {
	path := writeSettings(t, `{"command": {"bare": {"template": "hi"}}}`)

	customizations := (&CommandParser{}).ParseInline(path, customization.LevelGlobal)
	if len(customizations) != 1 {
		t.Fatalf("got %d customizations, want 1", len(customizations))
	}

	cmd := customizations[0]
	if cmd.Description != "Command: bare" {
		t.Errorf("Description = %q, want synthesized default", cmd.Description)
	}
	if len(cmd.Metadata) != 0 {
		t.Errorf("Metadata = %v, want empty", cmd.Metadata)
	}

	_, body := frontmatter.Extract(cmd.Content)
	if !strings.Contains(body, "hi") {
		t.Errorf("body = %q, want template text", body)
	}
}

func TestParseInlineAgents(t *testing.T) {
	path := writeSettings(t, `{
		"agent": {
			"test-agent": {"prompt": "You are a test agent", "mode": "subagent"}
		}
	}`)

	customizations := (&AgentParser{}).ParseInline(path, customization.LevelProject)
	if len(customizations) != 1 {
		t.Fatalf("got %d customizations, want 1", len(customizations))
	}

	agent := customizations[0]
	if agent.Name != "test-agent" || agent.Type != customization.TypeAgent {
		t.Errorf("record = %+v", agent)
	}
	if !strings.Contains(agent.Content, "mode: subagent") {
		t.Errorf("Content missing mode line:\n%s", agent.Content)
	}
	if !strings.Contains(agent.Content, "You are a test agent") {
		t.Errorf("Content missing prompt body:\n%s", agent.Content)
	}
	if _, ok := agent.Metadata["prompt"]; ok {
		t.Error("Metadata must not contain prompt")
	}
	if agent.Metadata["mode"] != "subagent" {
		t.Errorf("Metadata = %v", agent.Metadata)
	}
}

func TestParseInlineMissingSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opencode.json")

	if got := (&CommandParser{}).ParseInline(path, customization.LevelProject); len(got) != 0 {
		t.Errorf("ParseInline() = %d items for missing file, want 0", len(got))
	}
	if got := (&MCPParser{}).ParseMCPs(path, customization.LevelProject); len(got) != 0 {
		t.Errorf("ParseMCPs() = %d items for missing file, want 0", len(got))
	}
}

func TestParseInlineMalformedSettings(t *testing.T) {
	path := writeSettings(t, "{this is not json")

	if got := (&AgentParser{}).ParseInline(path, customization.LevelGlobal); len(got) != 0 {
		t.Errorf("ParseInline() = %d items for malformed file, want 0", len(got))
	}
}

func TestParseMCPs(t *testing.T) {
	path := writeSettings(t, `{
		"mcp": {
			"github": {
				"type": "remote",
				"url": "https://mcp.sentry.dev/mcp"
			},
			"local-tools": {
				"command": ["./tools"]
			}
		}
	}`)

	mcps := (&MCPParser{}).ParseMCPs(path, customization.LevelProject)
	if len(mcps) != 2 {
		t.Fatalf("got %d MCPs, want 2", len(mcps))
	}

	// Keys are emitted sorted, so github comes first.
	github := mcps[0]
	if github.Name != "github" {
		t.Errorf("Name = %q", github.Name)
	}
	if github.Description != "MCP (remote)" {
		t.Errorf("Description = %q", github.Description)
	}
	// Metadata is the entry verbatim, URL untouched by comment stripping.
	if github.Metadata["url"] != "https://mcp.sentry.dev/mcp" {
		t.Errorf("Metadata url = %v", github.Metadata["url"])
	}
	if github.Metadata["type"] != "remote" {
		t.Errorf("Metadata type = %v", github.Metadata["type"])
	}

	local := mcps[1]
	if local.Description != "MCP (unknown)" {
		t.Errorf("Description = %q, want unknown type default", local.Description)
	}
}

func TestParseMCPsWithComments(t *testing.T) {
	path := writeSettings(t, `{
		// global MCP servers
		"mcp": {
			"github": {
				"type": "remote",
				"url": "https://mcp.sentry.dev/mcp"
			}
		}
	}`)

	mcps := (&MCPParser{}).ParseMCPs(path, customization.LevelGlobal)
	if len(mcps) != 1 {
		t.Fatalf("got %d MCPs, want 1", len(mcps))
	}
	if mcps[0].Metadata["url"] != "https://mcp.sentry.dev/mcp" {
		t.Errorf("url = %v, want full URL preserved", mcps[0].Metadata["url"])
	}
}
