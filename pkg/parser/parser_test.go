package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandParserCanParse(t *testing.T) {
	dir := t.TempDir()

	cmdFile := writeFile(t, filepath.Join(dir, "command", "deploy.md"), "deploy it")
	agentFile := writeFile(t, filepath.Join(dir, "agent", "reviewer.md"), "review it")
	txtFile := writeFile(t, filepath.Join(dir, "command", "notes.txt"), "not markdown")

	p := &CommandParser{}
	if !p.CanParse(cmdFile) {
		t.Errorf("CanParse(%s) = false, want true", cmdFile)
	}
	if p.CanParse(agentFile) {
		t.Errorf("CanParse(%s) = true, want false (agent dir)", agentFile)
	}
	if p.CanParse(txtFile) {
		t.Errorf("CanParse(%s) = true, want false (.txt)", txtFile)
	}
	if p.CanParse(filepath.Join(dir, "command", "missing.md")) {
		t.Error("CanParse() = true for nonexistent file")
	}
	if p.CanParse(filepath.Join(dir, "command")) {
		t.Error("CanParse() = true for a directory")
	}
}

func TestCommandParserParse(t *testing.T) {
	dir := t.TempDir()
	content := "---\ndescription: Deploys the app\nagent: build\n---\nRun the deploy.\n"
	path := writeFile(t, filepath.Join(dir, "command", "deploy.md"), content)

	c := (&CommandParser{}).Parse(path, customization.LevelProject)

	if c.Name != "deploy" {
		t.Errorf("Name = %q, want %q", c.Name, "deploy")
	}
	if c.Type != customization.TypeCommand {
		t.Errorf("Type = %v", c.Type)
	}
	if c.Level != customization.LevelProject {
		t.Errorf("Level = %v", c.Level)
	}
	if c.Description != "Deploys the app" {
		t.Errorf("Description = %q", c.Description)
	}
	if c.Content != content {
		t.Errorf("Content = %q, want raw file text", c.Content)
	}
	// The file-based path keeps the full frontmatter mapping, description
	// included.
	if c.Metadata["description"] != "Deploys the app" || c.Metadata["agent"] != "build" {
		t.Errorf("Metadata = %v", c.Metadata)
	}
	if c.HasError() {
		t.Errorf("unexpected error: %s", c.Error)
	}
}

func TestCommandParserParseNoFrontmatter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "command", "plain.md"), "Just a prompt.\n")

	c := (&CommandParser{}).Parse(path, customization.LevelGlobal)

	if c.Description != "Command: plain" {
		t.Errorf("Description = %q, want synthesized default", c.Description)
	}
	if len(c.Metadata) != 0 {
		t.Errorf("Metadata = %v, want empty", c.Metadata)
	}
	if c.Content != "Just a prompt.\n" {
		t.Errorf("Content = %q", c.Content)
	}
}

func TestCommandParserReadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "command", "gone.md")

	c := (&CommandParser{}).Parse(path, customization.LevelProject)

	if !c.HasError() {
		t.Fatal("expected error for missing file")
	}
	if c.Content != "" {
		t.Errorf("Content = %q, want empty when errored", c.Content)
	}
	if c.Metadata != nil {
		t.Errorf("Metadata = %v, want unset when errored", c.Metadata)
	}
	// The record still exists and identifies itself.
	if c.Name != "gone" || c.Type != customization.TypeCommand {
		t.Errorf("record = %+v", c)
	}
}

func TestAgentParser(t *testing.T) {
	dir := t.TempDir()
	content := "---\ndescription: Reviews PRs\nmode: subagent\n---\nYou are a reviewer.\n"
	path := writeFile(t, filepath.Join(dir, "agent", "reviewer.md"), content)

	p := &AgentParser{}
	if !p.CanParse(path) {
		t.Fatalf("CanParse(%s) = false", path)
	}

	c := p.Parse(path, customization.LevelGlobal)
	if c.Name != "reviewer" || c.Type != customization.TypeAgent {
		t.Errorf("record = %+v", c)
	}
	if c.Description != "Reviews PRs" {
		t.Errorf("Description = %q", c.Description)
	}
	if c.Metadata["mode"] != "subagent" {
		t.Errorf("Metadata = %v", c.Metadata)
	}
}

func TestSkillParser(t *testing.T) {
	dir := t.TempDir()
	content := "---\ndescription: Formats Go code\n---\nUse gofmt.\n"
	path := writeFile(t, filepath.Join(dir, "skill", "gofmt-helper", "SKILL.md"), content)

	p := &SkillParser{}
	if !p.CanParse(path) {
		t.Fatalf("CanParse(%s) = false", path)
	}

	c := p.Parse(path, customization.LevelProject)
	// The skill is named after its directory, not the SKILL.md file.
	if c.Name != "gofmt-helper" {
		t.Errorf("Name = %q, want %q", c.Name, "gofmt-helper")
	}
	if c.Description != "Formats Go code" {
		t.Errorf("Description = %q", c.Description)
	}

	// A SKILL.md outside a skill/ tree does not match.
	stray := writeFile(t, filepath.Join(dir, "other", "thing", "SKILL.md"), "x")
	if p.CanParse(stray) {
		t.Errorf("CanParse(%s) = true, want false", stray)
	}
	// Nor does an ordinary markdown file inside skill/<name>/.
	readme := writeFile(t, filepath.Join(dir, "skill", "gofmt-helper", "README.md"), "x")
	if p.CanParse(readme) {
		t.Errorf("CanParse(%s) = true, want false", readme)
	}
}

func TestRulesParser(t *testing.T) {
	dir := t.TempDir()
	content := "# Rules\n\nAlways run tests.\n"
	path := writeFile(t, filepath.Join(dir, "AGENTS.md"), content)

	p := &RulesParser{}
	if !p.CanParse(path) {
		t.Fatalf("CanParse(%s) = false", path)
	}
	if p.CanParse(writeFile(t, filepath.Join(dir, "OTHER.md"), "x")) {
		t.Error("CanParse() = true for non-AGENTS.md file")
	}

	c := p.Parse(path, customization.LevelProject)
	if c.Name != "AGENTS.md" || c.Type != customization.TypeRules {
		t.Errorf("record = %+v", c)
	}
	if c.Content != content {
		t.Errorf("Content = %q", c.Content)
	}
	// Rules carry no frontmatter metadata.
	if len(c.Metadata) != 0 {
		t.Errorf("Metadata = %v, want empty", c.Metadata)
	}
}

func TestPluginParser(t *testing.T) {
	dir := t.TempDir()
	jsPath := writeFile(t, filepath.Join(dir, "plugin", "notify.js"), "export const hook = {}\n")
	tsPath := writeFile(t, filepath.Join(dir, "plugin", "lint.ts"), "export const hook = {}\n")
	mdPath := writeFile(t, filepath.Join(dir, "plugin", "README.md"), "docs")

	p := &PluginParser{}
	if !p.CanParse(jsPath) {
		t.Errorf("CanParse(%s) = false", jsPath)
	}
	if !p.CanParse(tsPath) {
		t.Errorf("CanParse(%s) = false", tsPath)
	}
	if p.CanParse(mdPath) {
		t.Errorf("CanParse(%s) = true, want false", mdPath)
	}

	c := p.Parse(jsPath, customization.LevelGlobal)
	if c.Name != "notify" || c.Type != customization.TypePlugin {
		t.Errorf("record = %+v", c)
	}
	if c.Description != "Plugin: notify" {
		t.Errorf("Description = %q", c.Description)
	}
}

func TestParserRecognitionDisjoint(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, filepath.Join(dir, "command", "a.md"), "x"),
		writeFile(t, filepath.Join(dir, "agent", "b.md"), "x"),
		writeFile(t, filepath.Join(dir, "skill", "c", "SKILL.md"), "x"),
		writeFile(t, filepath.Join(dir, "AGENTS.md"), "x"),
		writeFile(t, filepath.Join(dir, "plugin", "d.js"), "x"),
	}

	for _, path := range paths {
		matches := 0
		for _, p := range All() {
			if p.CanParse(path) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("%s matched %d parsers, want exactly 1", path, matches)
		}
	}
}

func TestParseEmptyFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "command", "empty.md"), "")

	c := (&CommandParser{}).Parse(path, customization.LevelProject)
	if c.HasError() {
		t.Errorf("empty file should not error, got %q", c.Error)
	}
	if c.Content != "" {
		t.Errorf("Content = %q, want empty", c.Content)
	}
}
