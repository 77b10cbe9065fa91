package inventory

import (
	"strconv"

	"shoestock/internal/models"

	"github.com/shopspring/decimal"
)

// Row is one line of a tabular report. Value is empty outside the value report.
type Row struct {
	Country  string
	Code     string
	Product  string
	Cost     string
	Quantity string
	Value    string
}

var (
	ListHeader  = []string{"Country", "Code", "Product", "Cost", "Quantity"}
	ValueHeader = []string{"Country", "Code", "Product", "Cost", "Quantity", "Value"}
)

// FormatPence renders an amount in minor units, e.g. 5000 -> "£50.00".
func FormatPence(pence int64, symbol string) string {
	return symbol + decimal.New(pence, -2).StringFixed(2)
}

func (r Row) Cells(withValue bool) []string {
	cells := []string{r.Country, r.Code, r.Product, r.Cost, r.Quantity}
	if withValue {
		cells = append(cells, r.Value)
	}
	return cells
}

func row(shoe models.Shoe, symbol string) Row {
	return Row{
		Country:  shoe.Country,
		Code:     shoe.Code,
		Product:  shoe.Product,
		Cost:     FormatPence(int64(shoe.Cost), symbol),
		Quantity: strconv.Itoa(shoe.Quantity),
	}
}

// extremeIndex returns the index of the first smallest (or largest) quantity.
func extremeIndex(qtys []int, largest bool) int {
	if len(qtys) == 0 {
		return -1
	}
	best := 0
	for i, q := range qtys[1:] {
		if (largest && q > qtys[best]) || (!largest && q < qtys[best]) {
			best = i + 1
		}
	}
	return best
}
