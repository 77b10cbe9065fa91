package inventory

import "shoestock/internal/models"

// Store is the ordered in-memory collection of shoes. Order is insertion
// order: file order first, then captured records.
type Store struct {
	shoes []*models.Shoe
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(shoe models.Shoe) *models.Shoe {
	p := &shoe
	s.shoes = append(s.shoes, p)
	return p
}

func (s *Store) AddAll(shoes []models.Shoe) {
	for _, shoe := range shoes {
		s.Add(shoe)
	}
}

// Replace drops every record and loads the given ones.
func (s *Store) Replace(shoes []models.Shoe) {
	s.shoes = nil
	s.AddAll(shoes)
}

func (s *Store) Len() int {
	return len(s.shoes)
}

// At returns the record at index i. It panics on an out of range index.
func (s *Store) At(i int) *models.Shoe {
	return s.shoes[i]
}

// Snapshot copies every record by value in store order.
func (s *Store) Snapshot() []models.Shoe {
	out := make([]models.Shoe, len(s.shoes))
	for i, shoe := range s.shoes {
		out[i] = *shoe
	}
	return out
}

func (s *Store) Codes() []string {
	codes := make([]string, len(s.shoes))
	for i, shoe := range s.shoes {
		codes[i] = shoe.Code
	}
	return codes
}

func (s *Store) Quantities() []int {
	qtys := make([]int, len(s.shoes))
	for i, shoe := range s.shoes {
		qtys[i] = shoe.Quantity
	}
	return qtys
}
