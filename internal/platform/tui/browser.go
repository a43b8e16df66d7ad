// Package tui provides the interactive hot-spot browser and its SSH
// serving mode via Wish.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leveltools/levelscope/internal/hotspot"
	"github.com/leveltools/levelscope/internal/level"
)

// Browser layout constants
const (
	tableHeightMargin = 9 // Rows reserved for title, summary, filter tabs, help
	minTableHeight    = 3
)

// filters is the cycle order of the category filter. The zero Category
// stands in for "show everything".
var filters = []hotspot.Category{
	hotspot.CategoryUnknown, // all markers
	hotspot.CategoryMovement,
	hotspot.CategoryWait,
	hotspot.CategoryInteraction,
	hotspot.CategoryControl,
	hotspot.CategorySpecial,
}

// filterLabels maps filter categories to tab labels.
var filterLabels = map[hotspot.Category]string{
	hotspot.CategoryUnknown:     "All",
	hotspot.CategoryMovement:    "Movement",
	hotspot.CategoryWait:        "Wait",
	hotspot.CategoryInteraction: "Interaction",
	hotspot.CategoryControl:     "Control",
	hotspot.CategorySpecial:     "Special",
}

// categoryStyles maps marker categories to lipgloss styles for the name column.
var categoryStyles = map[hotspot.Category]lipgloss.Style{
	hotspot.CategoryUnknown:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	hotspot.CategoryMovement:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	hotspot.CategoryWait:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	hotspot.CategoryInteraction: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	hotspot.CategoryControl:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	hotspot.CategorySpecial:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// BrowserModel is the Bubble Tea model for browsing a level's hot spots.
type BrowserModel struct {
	path     string
	spots    []hotspot.Spot
	filter   int // index into filters
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	noLayer  bool
	quitting bool
}

// NewBrowserModel creates a browser for doc's hot-spot layer.
func NewBrowserModel(doc *level.Document, path string, width, height int) BrowserModel {
	layer := doc.LayerByType(hotspot.LayerType)

	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		path:    path,
		spots:   hotspot.Scan(layer),
		keys:    DefaultBrowserKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		noLayer: layer == nil,
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Cell", Width: 10},
		{Title: "Code", Width: 6},
		{Title: "Name", Width: 22},
		{Title: "Pixel", Width: 14},
	}

	tableHeight := m.height - tableHeightMargin
	if tableHeight < minTableHeight {
		tableHeight = minTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// visibleSpots returns the spots matching the active filter.
func (m *BrowserModel) visibleSpots() []hotspot.Spot {
	active := filters[m.filter]
	if active == hotspot.CategoryUnknown {
		return m.spots
	}

	var out []hotspot.Spot
	for _, s := range m.spots {
		if s.Code.Category() == active {
			out = append(out, s)
		}
	}
	return out
}

// updateTableRows fills the table from the active filter.
func (m *BrowserModel) updateTableRows() {
	visible := m.visibleSpots()
	rows := make([]table.Row, len(visible))
	for i, s := range visible {
		rows[i] = table.Row{
			fmt.Sprintf("[%d][%d]", s.Row, s.Col),
			fmt.Sprintf("%d", int(s.Code)),
			s.Code.Name(),
			fmt.Sprintf("(%d, %d)", s.PixelX(), s.PixelY()),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(filters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter--
			if m.filter < 0 {
				m.filter = len(filters) - 1
			}
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("HOT SPOTS - %s", m.path)))
	b.WriteString("\n\n")

	if m.noLayer {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("This level has no hot_spots layer."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderFilterTabs())
	b.WriteString("\n\n")

	visible := m.visibleSpots()
	summaryStyle := categoryStyles[filters[m.filter]]
	b.WriteString(summaryStyle.Render(fmt.Sprintf("%d of %d markers", len(visible), len(m.spots))))
	b.WriteString("\n")

	if len(visible) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(emptyStyle.Render("No markers in this category."))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderFilterTabs renders the category filter tab line.
func (m BrowserModel) renderFilterTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(filters))
	for i, f := range filters {
		label := filterLabels[f]
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(" " + label + " ")
		}
	}

	return strings.Join(tabs, " ")
}

// IsQuitting returns true if user requested to quit.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the interactive browser for the given document.
func RunBrowser(doc *level.Document, path string, width, height int) error {
	model := NewBrowserModel(doc, path, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
