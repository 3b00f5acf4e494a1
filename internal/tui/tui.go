// Package tui implements the lazygit-style dashboard: a sidebar of
// per-type panels on the left, a detail pane on the right, and a footer
// with keybinding hints.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/iheanyi/lazyopencode/pkg/customization"
	"github.com/iheanyi/lazyopencode/pkg/discovery"
)

// Panel identifies one sidebar panel. Panels map one-to-one onto
// customization types.
type Panel int

const (
	PanelCommands Panel = iota
	PanelAgents
	PanelSkills
	PanelRules
	PanelMCPs
	PanelPlugins

	panelCount
)

var panelTypes = [panelCount]customization.Type{
	customization.TypeCommand,
	customization.TypeAgent,
	customization.TypeSkill,
	customization.TypeRules,
	customization.TypeMCP,
	customization.TypePlugin,
}

var panelTitles = [panelCount]string{
	"Commands", "Agents", "Skills", "Rules", "MCPs", "Plugins",
}

// DetailView selects what the main pane shows for the selected item.
type DetailView int

const (
	ViewContent DetailView = iota
	ViewMetadata
)

const sidebarWidth = 34

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	svc   *discovery.Service
	items []*customization.Customization

	// Panel state
	focused       Panel
	cursors       [panelCount]int
	detailFocused bool
	detailView    DetailView

	// Filters
	levelFilter customization.Level // empty means all levels
	searching   bool
	searchQuery string
	searchInput textinput.Model

	// Detail pane
	detail   viewport.Model
	renderer *glamour.TermRenderer

	// UI state
	keys      keyMap
	showHelp  bool
	statusMsg string
	width     int
	height    int
	quitting  bool
}

// New creates a dashboard model backed by the given discovery service.
func New(svc *discovery.Service) *Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = SearchPromptStyle
	ti.Placeholder = "name substring"

	m := &Model{
		svc:         svc,
		items:       svc.DiscoverAll(),
		searchInput: ti,
		keys:        newKeyMap(),
		detail:      viewport.New(0, 0),
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.updateDetail()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchQuery = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.clampCursors()
		m.updateDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.clampCursors()
	m.updateDetail()
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		m.svc.Refresh()
		m.items = m.svc.DiscoverAll()
		m.clampCursors()
		m.updateDetail()
		m.statusMsg = "Refreshed"
		return m, nil

	case key.Matches(msg, m.keys.FilterAll):
		m.setLevelFilter("")
		return m, nil
	case key.Matches(msg, m.keys.FilterGlobal):
		m.setLevelFilter(customization.LevelGlobal)
		return m, nil
	case key.Matches(msg, m.keys.FilterProject):
		m.setLevelFilter(customization.LevelProject)
		return m, nil

	case key.Matches(msg, m.keys.Panel1):
		m.focusPanel(PanelCommands)
		return m, nil
	case key.Matches(msg, m.keys.Panel2):
		m.focusPanel(PanelAgents)
		return m, nil
	case key.Matches(msg, m.keys.Panel3):
		m.focusPanel(PanelSkills)
		return m, nil
	case key.Matches(msg, m.keys.Panel4):
		m.focusPanel(PanelRules)
		return m, nil
	case key.Matches(msg, m.keys.Panel5):
		m.focusPanel(PanelMCPs)
		return m, nil
	case key.Matches(msg, m.keys.Panel6):
		m.focusPanel(PanelPlugins)
		return m, nil

	case key.Matches(msg, m.keys.NextPanel):
		m.focusPanel((m.focused + 1) % panelCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevPanel):
		m.focusPanel((m.focused + panelCount - 1) % panelCount)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.selected() != nil {
			m.detailFocused = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.detailFocused = false
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevView):
		m.cycleView(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextView):
		m.cycleView(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.detailFocused {
			m.detail.ScrollUp(1)
		} else {
			m.moveCursor(-1)
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.detailFocused {
			m.detail.ScrollDown(1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.detail.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.detail.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		if m.detailFocused {
			m.detail.GotoTop()
		} else {
			m.cursors[m.focused] = 0
			m.updateDetail()
		}
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		if m.detailFocused {
			m.detail.GotoBottom()
		} else if n := len(m.panelItems(m.focused)); n > 0 {
			m.cursors[m.focused] = n - 1
			m.updateDetail()
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) focusPanel(p Panel) {
	m.focused = p
	m.detailFocused = false
	m.updateDetail()
}

func (m *Model) setLevelFilter(l customization.Level) {
	m.levelFilter = l
	m.clampCursors()
	m.updateDetail()
}

func (m *Model) cycleView(delta int) {
	if m.detailView == ViewContent && delta != 0 {
		m.detailView = ViewMetadata
	} else {
		m.detailView = ViewContent
	}
	m.updateDetail()
}

func (m *Model) moveCursor(delta int) {
	items := m.panelItems(m.focused)
	if len(items) == 0 {
		return
	}
	cursor := m.cursors[m.focused] + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	m.cursors[m.focused] = cursor
	m.updateDetail()
}

// filtered applies the level filter and search query to the full snapshot.
func (m *Model) filtered() []*customization.Customization {
	query := strings.ToLower(m.searchQuery)

	var out []*customization.Customization
	for _, c := range m.items {
		if m.levelFilter != "" && c.Level != m.levelFilter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// panelItems returns the filtered customizations belonging to a panel.
func (m *Model) panelItems(p Panel) []*customization.Customization {
	var out []*customization.Customization
	for _, c := range m.filtered() {
		if c.Type == panelTypes[p] {
			out = append(out, c)
		}
	}
	return out
}

// selected returns the customization under the focused panel's cursor.
func (m *Model) selected() *customization.Customization {
	items := m.panelItems(m.focused)
	if len(items) == 0 {
		return nil
	}
	cursor := m.cursors[m.focused]
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	return items[cursor]
}

func (m *Model) clampCursors() {
	for p := Panel(0); p < panelCount; p++ {
		n := len(m.panelItems(p))
		if n == 0 {
			m.cursors[p] = 0
			continue
		}
		if m.cursors[p] >= n {
			m.cursors[p] = n - 1
		}
	}
}

// Run starts the dashboard over the given discovery service.
func Run(svc *discovery.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
