package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shoestock/internal/inventory"
	"shoestock/internal/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	countryField = iota
	codeField
	productField
	costField
	quantityField
	fieldCount
)

var fieldLabels = [fieldCount]string{"Country:", "Code:", "Product:", "Cost (in pence):", "Quantity in stock:"}

type CaptureState int

const (
	CaptureInputState CaptureState = iota
	CaptureResultState
)

// CaptureModel is the new-product form.
type CaptureModel struct {
	svc          *inventory.Service
	file         string
	state        CaptureState
	inputs       [fieldCount]textinput.Model
	focusedInput int
	err          error
	added        models.Shoe
	saved        bool
	width        int
	height       int
}

func NewCaptureModel(svc *inventory.Service, file string) *CaptureModel {
	m := &CaptureModel{svc: svc, file: file}
	placeholders := [fieldCount]string{"South Africa", "SKU44386", "Air Max 90", "2300", "20"}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		m.inputs[i] = input
	}
	m.inputs[codeField].CharLimit = 8
	return m
}

func (m *CaptureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CaptureModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reset clears the form and focuses the first field.
func (m *CaptureModel) Reset() tea.Cmd {
	m.state = CaptureInputState
	m.err = nil
	m.saved = false
	m.added = models.Shoe{}
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focusedInput = countryField
	m.updateInputFocus()
	return textinput.Blink
}

func (m *CaptureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
		return m, cmd
	}

	if m.state == CaptureResultState {
		if keyMsg.String() == "enter" || keyMsg.String() == " " {
			return m, m.Reset()
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		m.focusedInput = (m.focusedInput + 1) % fieldCount
		m.updateInputFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusedInput = (m.focusedInput - 1 + fieldCount) % fieldCount
		m.updateInputFocus()
		return m, nil
	case "enter":
		if m.focusedInput < quantityField {
			m.focusedInput++
			m.updateInputFocus()
			return m, nil
		}
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(keyMsg)
	return m, cmd
}

func (m *CaptureModel) updateInputFocus() {
	for i := range m.inputs {
		if i == m.focusedInput {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *CaptureModel) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// submit validates the form and captures the record. On a rejected record
// the focus moves to the offending field.
func (m *CaptureModel) submit() {
	m.err = nil

	if err := inventory.CheckCode(m.value(codeField)); err != nil {
		m.fail(codeField, fmt.Errorf("invalid code: %w", err))
		return
	}
	cost, err := strconv.Atoi(m.value(costField))
	if err != nil || inventory.ValidateAmount(cost) != nil {
		m.fail(costField, errors.New("invalid cost: input should be a non-negative integer"))
		return
	}
	quantity, err := strconv.Atoi(m.value(quantityField))
	if err != nil || inventory.ValidateAmount(quantity) != nil {
		m.fail(quantityField, errors.New("invalid quantity: input should be a non-negative integer"))
		return
	}

	added, err := m.svc.Capture(models.Shoe{
		Country:  m.value(countryField),
		Code:     m.value(codeField),
		Product:  m.value(productField),
		Cost:     cost,
		Quantity: quantity,
	})
	if added == nil {
		var dup *inventory.DuplicateCodeError
		if errors.As(err, &dup) {
			err = fmt.Errorf("code already assigned to %s (%s)", dup.Existing.Product, dup.Existing.Country)
		}
		m.fail(codeField, err)
		return
	}

	m.added = *added
	m.saved = err == nil
	m.state = CaptureResultState
}

func (m *CaptureModel) fail(field int, err error) {
	m.err = err
	m.focusedInput = field
	m.updateInputFocus()
}

func (m *CaptureModel) View() string {
	switch m.state {
	case CaptureResultState:
		return m.renderResult()
	}
	return m.renderInputForm()
}

func (m *CaptureModel) renderInputForm() string {
	adaptiveTitleStyle, adaptiveFormStyle, adaptiveHelpStyle := GetAdaptiveStyles(m.width, m.height)

	title := adaptiveTitleStyle.Render("✏️  Input New Product")

	var fields []string
	for i := range m.inputs {
		fields = append(fields, labelStyle.Render(fieldLabels[i])+"\n"+m.inputs[i].View())
	}
	form := adaptiveFormStyle.Render(strings.Join(fields, "\n\n"))

	parts := []string{title, form}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(fmt.Sprintf("❌ %v", m.err)))
	}
	parts = append(parts, adaptiveHelpStyle.Render("Tab/Shift+Tab: Navigate • Enter: Next field / Save • Esc: Back to menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Top,
			content,
		)
	}
	return content
}

func (m *CaptureModel) renderResult() string {
	title := titleStyle.Render("✏️  Product Added")

	status := successStyle.Render("✅ Shoe successfully added to list") + "\n"
	if m.saved {
		status += successStyle.Render(fmt.Sprintf("'%s' updated", m.file))
	} else {
		status += warningStyle.Render("⚠️  Cannot update inventory file, record kept in memory only")
	}

	help := helpStyle.Render("Enter: Add another product • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, formStyle.Render(detailView(m.added, m.svc.Currency())), help)
}
