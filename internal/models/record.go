package models

// Shoe is one product line of the inventory file.
// Sale is kept in memory, in backups and in the Mongo mirror, never in the flat file.
type Shoe struct {
	Country  string `csv:"Country" bson:"country" json:"country"`
	Code     string `csv:"Code" bson:"code" json:"code" validate:"shoecode"`
	Product  string `csv:"Product" bson:"product" json:"product"`
	Cost     int    `csv:"Cost" bson:"cost" json:"cost" validate:"gte=0"`
	Quantity int    `csv:"Quantity" bson:"quantity" json:"quantity" validate:"gte=0"`
	Sale     bool   `csv:"-" bson:"sale" json:"sale"`
}

// Header is the column order of the inventory file.
var Header = []string{"Country", "Code", "Product", "Cost", "Quantity"}

// Value returns cost times quantity in pence.
func (s Shoe) Value() int64 {
	return int64(s.Cost) * int64(s.Quantity)
}

func (s *Shoe) AddStock(order int) int {
	s.Quantity += order
	return s.Quantity
}

func (s *Shoe) SaleOn() {
	s.Sale = true
}

func (s *Shoe) SaleOff() {
	s.Sale = false
}

// SaleStatus is the human label for the sale flag.
func (s Shoe) SaleStatus() string {
	if s.Sale {
		return "On Sale"
	}
	return "Not on Sale"
}
