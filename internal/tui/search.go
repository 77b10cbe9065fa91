package tui

import (
	"errors"
	"strings"

	"shoestock/internal/inventory"
	"shoestock/internal/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type SearchModel struct {
	svc    *inventory.Service
	input  textinput.Model
	found  *models.Shoe
	err    error
	width  int
	height int
}

func NewSearchModel(svc *inventory.Service) *SearchModel {
	input := textinput.New()
	input.Placeholder = "ABC12345"
	input.CharLimit = 8
	return &SearchModel{svc: svc, input: input}
}

func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SearchModel) Reset() tea.Cmd {
	m.input.SetValue("")
	m.found = nil
	m.err = nil
	return m.input.Focus()
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		m.search()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *SearchModel) search() {
	m.found = nil
	m.err = nil

	i, err := m.svc.Search(strings.TrimSpace(m.input.Value()))
	if err != nil {
		if !errors.Is(err, inventory.ErrNotFound) {
			err = errors.New("invalid code. " + err.Error())
		}
		m.err = err
		return
	}
	shoe := *m.svc.Store().At(i)
	m.found = &shoe
}

func (m *SearchModel) View() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	parts := []string{
		adaptiveTitleStyle.Render("🔍 Search Shoes by Code"),
		adaptiveFormStyle.Render(labelStyle.Render("Shoe code:") + "\n" + m.input.View()),
	}
	switch {
	case m.err != nil:
		parts = append(parts, errorStyle.Render("❌ "+m.err.Error()))
	case m.found != nil:
		parts = append(parts, formStyle.Render(detailView(*m.found, m.svc.Currency())))
	}
	parts = append(parts, adaptiveHelpStyle.Render("Enter: Search • Esc: Back to menu"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
