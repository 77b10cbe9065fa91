package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shoestock/internal/inventory"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type adviceKind int

const (
	restockAdvice adviceKind = iota
	saleAdvice
)

// AdviceModel shows the lowest stock record with a restock order form, or
// the highest stock record put on sale.
type AdviceModel struct {
	svc        *inventory.Service
	kind       adviceKind
	index      int
	orderInput textinput.Model
	stock      progress.Model
	canRestock bool
	restocked  bool
	err        error
	width      int
	height     int
}

func NewAdviceModel(svc *inventory.Service) *AdviceModel {
	orderInput := textinput.New()
	orderInput.Placeholder = "quantity to order"

	stock := progress.New(
		progress.WithSolidFill("#00aadd"),
		progress.WithoutPercentage(),
	)

	return &AdviceModel{
		svc:        svc,
		index:      -1,
		orderInput: orderInput,
		stock:      stock,
	}
}

func (m *AdviceModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AdviceModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.stock.Width = min(max(width-10, 20), 60)
}

// Restock selects the lowest stock record and takes it off sale.
func (m *AdviceModel) Restock() tea.Cmd {
	m.load(restockAdvice)
	if m.index < 0 {
		return nil
	}
	m.canRestock = m.svc.HasBackingFile()
	if !m.canRestock {
		m.err = errors.New("inventory file not found, cannot update stock")
		return nil
	}
	return m.orderInput.Focus()
}

// Sale selects the highest stock record and puts it on sale.
func (m *AdviceModel) Sale() {
	m.load(saleAdvice)
}

func (m *AdviceModel) load(kind adviceKind) {
	m.kind = kind
	m.restocked = false
	m.canRestock = false
	m.err = nil
	m.orderInput.SetValue("")
	m.orderInput.Blur()

	var err error
	if kind == restockAdvice {
		m.index, err = m.svc.LowestStock()
	} else {
		m.index, err = m.svc.HighestStock()
	}
	if err != nil {
		m.index = -1
		m.err = err
	}
}

func (m *AdviceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.kind != restockAdvice || !m.canRestock || m.restocked {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		m.order()
		return m, nil
	}

	var cmd tea.Cmd
	m.orderInput, cmd = m.orderInput.Update(msg)
	return m, cmd
}

func (m *AdviceModel) order() {
	m.err = nil
	order, err := strconv.Atoi(strings.TrimSpace(m.orderInput.Value()))
	if err != nil || order <= 0 {
		m.err = errors.New("invalid quantity: orders of zero or less are not accepted")
		return
	}
	if err := m.svc.Restock(m.index, order); err != nil {
		m.err = fmt.Errorf("cannot update stock: %w", err)
		return
	}
	m.restocked = true
	m.orderInput.Blur()
}

// level is the record's quantity as a fraction of the largest quantity held.
func (m *AdviceModel) level() float64 {
	highest := 0
	for _, q := range m.svc.Store().Quantities() {
		highest = max(highest, q)
	}
	if highest == 0 {
		return 0
	}
	return float64(m.svc.Store().At(m.index).Quantity) / float64(highest)
}

func (m *AdviceModel) View() string {
	adaptiveTitleStyle, _, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := "📦 Restock Advice"
	if m.kind == saleAdvice {
		title = "🏷️  Promotional Sale Advice"
	}
	parts := []string{adaptiveTitleStyle.Render(title)}

	if m.index < 0 {
		parts = append(parts,
			errorStyle.Render("❌ "+capitalize(m.err.Error())),
			adaptiveHelpStyle.Render("Esc: Back to menu"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	shoe := m.svc.Store().At(m.index)
	heading := "Lowest stock determined to be %d units for"
	if m.kind == saleAdvice {
		heading = "Largest stock determined to be %d units for"
	}
	parts = append(parts,
		labelStyle.Render(fmt.Sprintf(heading, shoe.Quantity)),
		formStyle.Render(detailView(*shoe, m.svc.Currency())),
		progressStyle.Render("Stock level\n"+m.stock.ViewAs(m.level())),
	)

	help := "Esc: Back to menu"
	switch {
	case m.kind == saleAdvice:
		parts = append(parts, successStyle.Render("🏷️  Sale now on"))
	case m.restocked:
		parts = append(parts, successStyle.Render("✅ Product inventory updated"))
	case m.canRestock:
		parts = append(parts, labelStyle.Render("Enter quantity to order:")+"\n"+m.orderInput.View())
		help = "Enter: Restock • Esc: Back to menu"
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render("❌ "+m.err.Error()))
	}
	parts = append(parts, adaptiveHelpStyle.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
