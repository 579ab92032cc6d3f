package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/xrpg/pkg/render/nodelink"
	"github.com/matzehuels/xrpg/pkg/worldmap"
)

const (
	viewerTitle = "xrpg: eXtensible RPG"
	tickRate    = 250 * time.Millisecond
)

// Viewer styles
var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	menuNormalStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	tabActiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow).Padding(0, 1)
	tabInactiveStyle  = lipgloss.NewStyle().Foreground(colorGreen).Padding(0, 1)
)

// viewCommand creates the view command, an interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <world.toml>",
		Short: "Browse a world map in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadWorld(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return runViewer(cmd.Context(), m)
		},
	}
}

func runViewer(ctx context.Context, m *worldmap.Map) error {
	p := tea.NewProgram(newViewerModel(m), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// =============================================================================
// ViewerModel - Menu and tabbed map window
// =============================================================================

type viewerState int

const (
	stateMenu viewerState = iota
	stateMap
	stateQuit
)

const (
	menuViewMap = "View Map"
	menuQuit    = "Quit"
)

type tickMsg time.Time

// viewerModel is the bubbletea model for the map viewer. Tab contents are
// rendered once up front; the map does not change while it is open.
type viewerModel struct {
	state  viewerState
	menu   []string
	cursor int
	tabs   []string
	pages  []string
	tab    int
	offset int
	height int
	ticks  int
}

func newViewerModel(m *worldmap.Map) viewerModel {
	return viewerModel{
		menu:   []string{menuViewMap, menuQuit},
		tabs:   []string{"Mermaid", "DOT", "Locations", "Paths"},
		pages:  []string{m.Mermaid(), nodelink.ToDOT(m, nodelink.Options{}), locationsTable(m), pathsTable(m)},
		height: 20,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m viewerModel) Init() tea.Cmd {
	return tick()
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ticks++
		return m, tick()
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.state = stateQuit
			return m, tea.Quit
		}
		if m.state == stateMenu {
			return m.updateMenu(msg)
		}
		return m.updateMap(msg)
	}
	return m, nil
}

func (m viewerModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = stateQuit
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
	case "enter":
		if m.menu[m.cursor] == menuQuit {
			m.state = stateQuit
			return m, tea.Quit
		}
		m.state = stateMap
	}
	return m, nil
}

func (m viewerModel) updateMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
	case "q":
		m.state = stateQuit
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % len(m.tabs)
		m.offset = 0
	case "shift+tab", "left", "h":
		m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
		m.offset = 0
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		if m.offset < len(m.lines())-1 {
			m.offset++
		}
	}
	return m, nil
}

func (m viewerModel) lines() []string {
	return strings.Split(strings.TrimRight(m.pages[m.tab], "\n"), "\n")
}

func (m viewerModel) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateMap:
		return m.viewMap()
	}
	return ""
}

func (m viewerModel) viewMenu() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(viewerTitle))
	b.WriteString("\n\n")
	for i, item := range m.menu {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("▸ " + item))
		} else {
			b.WriteString(menuNormalStyle.Render("  " + item))
		}
		b.WriteString("\n")
	}
	return frameStyle.Render(b.String()) + "\n" + StyleDim.Render("↑/↓ navigate  ⏎ select  esc quit")
}

func (m viewerModel) viewMap() string {
	var tabs []string
	for i, title := range m.tabs {
		if i == m.tab {
			tabs = append(tabs, tabActiveStyle.Render(title))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(title))
		}
	}
	header := frameStyle.Render(StyleTitle.Render(viewerTitle) + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	lines := m.lines()
	end := min(m.offset+m.height, len(lines))
	body := strings.Join(lines[m.offset:end], "\n")

	frame := spinnerFrames[m.ticks%len(spinnerFrames)]
	footer := StyleDim.Render(fmt.Sprintf("%s  tab/shift+tab switch  ↑/↓ scroll  esc menu  [%d/%d]",
		frame, min(m.offset+1, len(lines)), len(lines)))

	return header + "\n" + body + "\n\n" + footer
}

// =============================================================================
// Tables
// =============================================================================

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func locationsTable(m *worldmap.Map) string {
	t := newTable("#", "Location", "Shape")
	for _, loc := range m.Locations() {
		t.Row(strconv.Itoa(loc.Index), loc.Name, loc.Shape.String())
	}
	return t.Render()
}

func pathsTable(m *worldmap.Map) string {
	t := newTable("From", "To", "Minutes", "Direction")
	for _, p := range m.Paths() {
		from, _ := m.Location(p.From)
		to, _ := m.Location(p.To)
		dir := "one-way"
		if m.IsBidirectional(p.From, p.To) {
			dir = "both"
		}
		t.Row(from.Name, to.Name, strconv.Itoa(p.Minutes), dir)
	}
	return t.Render()
}
