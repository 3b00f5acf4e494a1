package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iheanyi/lazyopencode/pkg/customization"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	header := m.viewHeader()
	sidebar := m.viewSidebar()
	detail := m.viewDetail()
	footer := m.viewFooter()

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, detail)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) viewHeader() string {
	project := filepath.Base(m.svc.ProjectRoot)
	filter := "All"
	if m.levelFilter != "" {
		filter = m.levelFilter.Label()
	}

	left := StatusStyle.Render(fmt.Sprintf("%s | lazyopencode", StatusValueStyle.Render(project)))
	right := StatusStyle.Render(fmt.Sprintf("Level: %s  Items: %s",
		StatusValueStyle.Render(filter),
		StatusValueStyle.Render(fmt.Sprintf("%d", len(m.filtered())))))

	if m.searching {
		right = StatusStyle.Render(m.searchInput.View())
	} else if m.searchQuery != "" {
		right += StatusStyle.Render(fmt.Sprintf("Search: %s", StatusValueStyle.Render(m.searchQuery)))
	} else if m.statusMsg != "" {
		right += StatusStyle.Render(m.statusMsg)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) viewSidebar() string {
	// Split the vertical budget across the six panels.
	available := m.height - 3
	perPanel := available/int(panelCount) - 2
	if perPanel < 1 {
		perPanel = 1
	}

	panels := make([]string, 0, panelCount)
	for p := Panel(0); p < panelCount; p++ {
		panels = append(panels, m.viewPanel(p, perPanel))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (m *Model) viewPanel(p Panel, maxRows int) string {
	items := m.panelItems(p)
	focused := m.focused == p

	titleStyle := PanelTitleStyle
	boxStyle := PanelStyle
	if focused {
		titleStyle = PanelTitleFocusedStyle
		boxStyle = PanelFocusedStyle
	}
	title := titleStyle.Render(fmt.Sprintf("[%d] %s (%d)", int(p)+1, panelTitles[p], len(items)))

	rows := []string{title}
	listRows := maxRows - 1
	if listRows < 1 {
		listRows = 1
	}

	// Window the list around the cursor.
	start := 0
	cursor := m.cursors[p]
	if cursor >= listRows {
		start = cursor - listRows + 1
	}
	for i := start; i < len(items) && i < start+listRows; i++ {
		rows = append(rows, m.viewItem(p, i, items[i], focused))
	}

	return boxStyle.Width(sidebarWidth - 2).Render(strings.Join(rows, "\n"))
}

func (m *Model) viewItem(p Panel, i int, c *customization.Customization, focused bool) string {
	indicator := LevelGlobalIndicator
	if c.Level == customization.LevelProject {
		indicator = LevelProjectIndicator
	}

	name := c.Name
	maxName := sidebarWidth - 10
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}

	style := ItemStyle
	prefix := "  "
	if focused && i == m.cursors[p] {
		style = ItemSelectedStyle
		prefix = "> "
	}
	if c.HasError() {
		style = ItemErrorStyle
	}

	return prefix + style.Render(name) + " " + ItemLevelStyle.Render(indicator)
}

func (m *Model) viewDetail() string {
	c := m.selected()

	title := "No selection"
	if c != nil {
		title = c.InspectTitle()
	}

	contentTab := DetailTabStyle.Render("Content")
	metaTab := DetailTabStyle.Render("Metadata")
	if m.detailView == ViewContent {
		contentTab = DetailTabActiveStyle.Render("Content")
	} else {
		metaTab = DetailTabActiveStyle.Render("Metadata")
	}
	tabs := contentTab + metaTab + DetailTabStyle.Render("([ / ] to switch)")

	boxStyle := PanelStyle
	if m.detailFocused {
		boxStyle = PanelFocusedStyle
	}

	pane := lipgloss.JoinVertical(lipgloss.Left,
		DetailTitleStyle.Render(title),
		tabs,
		m.detail.View(),
	)
	return boxStyle.Width(m.detailWidth()).Render(pane)
}

func (m *Model) viewFooter() string {
	if m.showHelp {
		return HelpStyle.Render(
			"1-6 panels · tab/shift+tab cycle · j/k move · enter inspect · esc back · " +
				"[/] content/metadata · a/g/p level filter · / search · r refresh · q quit")
	}
	return HelpStyle.Render("tab: panels · j/k: move · enter: inspect · /: search · r: refresh · ?: help · q: quit")
}
