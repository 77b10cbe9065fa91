package tui

import (
	"fmt"

	"shoestock/internal/inventory"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TableModel shows the list or value report.
type TableModel struct {
	svc       *inventory.Service
	table     table.Model
	withValue bool
	width     int
	height    int
}

func NewTableModel(svc *inventory.Service) *TableModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return &TableModel{svc: svc, table: t}
}

func (m *TableModel) Init() tea.Cmd {
	return nil
}

func (m *TableModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if height > 12 {
		m.table.SetHeight(height - 12)
	}
}

// Load fills the table from the store.
func (m *TableModel) Load(withValue bool) {
	m.withValue = withValue

	header := inventory.ListHeader
	reportRows := m.svc.List()
	if withValue {
		header = inventory.ValueHeader
		reportRows = m.svc.ValueReport()
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	rows := make([]table.Row, len(reportRows))
	for i, r := range reportRows {
		cells := r.Cells(withValue)
		for j, c := range cells {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
		rows[i] = table.Row(cells)
	}

	columns := make([]table.Column, len(header))
	for i, h := range header {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	// Rows must be cleared before the columns shrink.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *TableModel) View() string {
	adaptiveTitleStyle, _, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := "📋 All Product Information"
	if m.withValue {
		title = "💷 Product Values in Stock"
	}

	parts := []string{adaptiveTitleStyle.Render(title)}
	if len(m.table.Rows()) == 0 {
		parts = append(parts, warningStyle.Render("No stock records loaded"))
	} else {
		parts = append(parts, formStyle.Render(m.table.View()))
	}
	if m.withValue {
		total := inventory.FormatPence(m.svc.TotalValue(), m.svc.Currency())
		parts = append(parts, labelStyle.Render("Total stock value: ")+total)
	}
	parts = append(parts, adaptiveHelpStyle.Render(fmt.Sprintf("%d records • ↑/↓: Scroll • Esc: Back to menu", len(m.table.Rows()))))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
