package shell

import (
	"fmt"
	"strings"

	"shoestock/internal/inventory"
	"shoestock/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var separator = strings.Repeat("_", 79)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// RenderReport lays out report rows under the list or value header.
func RenderReport(rows []inventory.Row, withValue bool) string {
	headers := inventory.ListHeader
	if withValue {
		headers = inventory.ValueHeader
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells(withValue)
	}
	return renderTable(headers, cells)
}

// Detail is the multi-line description of one shoe.
func Detail(shoe models.Shoe, currency string) string {
	return fmt.Sprintf("\nCountry:\t\t%s\nCode:\t\t\t%s\nProduct:\t\t%s\nCost:\t\t\t%s\nQuantity:\t\t%d\nSale Status:\t%s",
		shoe.Country,
		shoe.Code,
		shoe.Product,
		inventory.FormatPence(int64(shoe.Cost), currency),
		shoe.Quantity,
		shoe.SaleStatus(),
	)
}
