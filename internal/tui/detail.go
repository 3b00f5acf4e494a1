package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

// detailWidth is the inner width available to the detail pane viewport.
func (m *Model) detailWidth() int {
	w := m.width - sidebarWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) detailHeight() int {
	// Header, detail title, view tabs and footer surround the viewport.
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) resize() {
	m.detail.Width = m.detailWidth()
	m.detail.Height = m.detailHeight()

	// Glamour wraps at render time, so the renderer is rebuilt per width.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(m.detailWidth()-2),
	)
	if err != nil {
		m.renderer = nil
	} else {
		m.renderer = renderer
	}
}

// updateDetail re-renders the detail viewport for the current selection.
func (m *Model) updateDetail() {
	c := m.selected()
	if c == nil {
		m.detail.SetContent(HelpStyle.Render("Nothing selected"))
		return
	}
	m.detail.SetContent(m.renderDetail(c))
	m.detail.GotoTop()
}

func (m *Model) renderDetail(c *customization.Customization) string {
	if c.HasError() {
		return ErrorTextStyle.Render(fmt.Sprintf("Error: %s", c.Error))
	}

	if m.detailView == ViewMetadata {
		return m.renderMetadata(c)
	}
	return m.renderContent(c)
}

func (m *Model) renderContent(c *customization.Customization) string {
	if c.Content == "" {
		// MCPs are defined inline and have no document body; show their
		// connection fields instead.
		if c.Type == customization.TypeMCP {
			return m.renderMetadata(c)
		}
		return HelpStyle.Render("(empty)")
	}

	if isMarkdown(c.Type) && m.renderer != nil {
		if rendered, err := m.renderer.Render(c.Content); err == nil {
			return rendered
		}
	}
	return c.Content
}

func (m *Model) renderMetadata(c *customization.Customization) string {
	if len(c.Metadata) == 0 {
		return HelpStyle.Render("(no metadata)")
	}

	// Marshal key by key in sorted order; yaml.Marshal of the whole map
	// already sorts, but emitting per key keeps one bad value from hiding
	// the rest.
	keys := make([]string, 0, len(c.Metadata))
	for k := range c.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		out, err := yaml.Marshal(map[string]any{k: c.Metadata[k]})
		if err != nil {
			fmt.Fprintf(&b, "%s: %v\n", k, c.Metadata[k])
			continue
		}
		b.Write(out)
	}
	return b.String()
}

// isMarkdown reports whether the customization's content is a markdown
// document worth rendering through glamour.
func isMarkdown(t customization.Type) bool {
	switch t {
	case customization.TypeCommand, customization.TypeAgent,
		customization.TypeSkill, customization.TypeRules:
		return true
	default:
		return false
	}
}
