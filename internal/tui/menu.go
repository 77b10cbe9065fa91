package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label  string
	action func() tea.Cmd
}

type MenuModel struct {
	items    []menuItem
	cursor   int
	selected int
	width    int
	height   int
}

func NewMenuModel() *MenuModel {
	goTo := func(s Screen) func() tea.Cmd {
		return func() tea.Cmd { return ChangeScreen(s) }
	}
	return &MenuModel{
		items: []menuItem{
			{"📥 Import inventory from file", RequestImport},
			{"✏️  Input new product information", goTo(CaptureScreen)},
			{"📋 View all product information", goTo(ViewScreen)},
			{"📦 Restock advice", goTo(RestockScreen)},
			{"🔍 Search shoes by code", goTo(SearchScreen)},
			{"💷 View total product values in stock", goTo(ValueScreen)},
			{"🏷️  Promotional sale advice", goTo(SaleScreen)},
			{"💾 Backup inventory", goTo(BackupScreen)},
			{"🔄 Restore inventory from backup", goTo(RestoreScreen)},
			{"🚪 Exit", func() tea.Cmd { return tea.Quit }},
		},
		cursor: 0,
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.selected = m.cursor
			return m, m.items[m.selected].action()
		case "1", "2", "3", "4", "5", "6", "7":
			// Same numbering as the console menu.
			m.cursor = int(key[0] - '1')
			m.selected = m.cursor
			return m, m.items[m.selected].action()
		}
	}
	return m, nil
}

func (m *MenuModel) View() string {
	adaptiveTitleStyle, _, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("👟 Shoestock - Inventory")

	var menu string
	for i, item := range m.items {
		cursor := " "
		choice := menuItemStyle.Render(item.label)
		if m.cursor == i {
			cursor = ">"
			choice = selectedMenuItemStyle.Render(item.label)
		}
		menu += fmt.Sprintf("%s %s\n", cursor, choice)
	}

	help := adaptiveHelpStyle.Render("Use ↑/↓ (or j/k) to navigate • 1-7 shortcuts • Enter to select • q to quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		menu,
		help,
	)

	if m.width > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			content,
		)
	}

	return content
}
