// Package inventory holds the in-memory shoe store and the operations the
// shell and the TUI run against it.
package inventory

import (
	"errors"
	"fmt"

	"shoestock/internal/models"

	"github.com/rs/zerolog/log"
)

// ErrNotSaved marks a record that was added to the store but could not be
// written to the backing file.
var ErrNotSaved = errors.New("record kept in memory but not saved")

// ErrNoBackingFile is returned when an operation needs the backing file and it is absent.
var ErrNoBackingFile = errors.New("inventory file not found")

// Backend persists the store. internal/csv.File is the implementation.
type Backend interface {
	Exists() bool
	Load() ([]models.Shoe, error)
	Append(shoe models.Shoe) error
	Rewrite(shoes []models.Shoe) error
	Create() error
}

type ImportMode string

const (
	ImportAppend  ImportMode = "append"
	ImportReplace ImportMode = "replace"
)

type Options struct {
	Currency   string
	ImportMode ImportMode
}

// Service is the session state: one store, one backing file.
type Service struct {
	store   *Store
	backend Backend
	opts    Options
}

func NewService(backend Backend, opts Options) *Service {
	if opts.Currency == "" {
		opts.Currency = "£"
	}
	if opts.ImportMode == "" {
		opts.ImportMode = ImportAppend
	}
	return &Service{
		store:   NewStore(),
		backend: backend,
		opts:    opts,
	}
}

func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) Currency() string {
	return s.opts.Currency
}

// HasBackingFile reports whether writes can reach the backing file.
func (s *Service) HasBackingFile() bool {
	return s.backend.Exists()
}

// Import loads the backing file into the store. In append mode repeated
// imports duplicate records. On error the store is unchanged.
func (s *Service) Import() (int, error) {
	shoes, err := s.backend.Load()
	if err != nil {
		log.Warn().Err(err).Msg("import failed")
		return 0, err
	}

	if s.opts.ImportMode == ImportReplace {
		s.store.Replace(shoes)
	} else {
		s.store.AddAll(shoes)
	}

	log.Info().Int("records", len(shoes)).Int("store_size", s.store.Len()).Str("mode", string(s.opts.ImportMode)).Msg("inventory imported")
	return len(shoes), nil
}

// CheckDuplicate returns a *DuplicateCodeError when code is already in the store.
func (s *Service) CheckDuplicate(code string) error {
	if i := FindByCode(code, s.store.Codes()); i >= 0 {
		return &DuplicateCodeError{Index: i, Existing: *s.store.At(i)}
	}
	return nil
}

// Capture validates a new record, adds it to the store and appends it to
// the backing file. Validation and duplicate failures touch nothing. A
// failed append keeps the record in memory and returns ErrNotSaved.
func (s *Service) Capture(shoe models.Shoe) (*models.Shoe, error) {
	if err := Validate(shoe); err != nil {
		return nil, err
	}
	if err := s.CheckDuplicate(shoe.Code); err != nil {
		return nil, err
	}

	added := s.store.Add(shoe)
	log.Info().Str("code", shoe.Code).Msg("shoe captured")

	if err := s.backend.Append(shoe); err != nil {
		log.Warn().Err(err).Str("code", shoe.Code).Msg("captured shoe not written to file")
		return added, fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	return added, nil
}

// Search finds the first record with the given code.
func (s *Service) Search(code string) (int, error) {
	if err := CheckCode(code); err != nil {
		return -1, err
	}
	i := FindByCode(code, s.store.Codes())
	if i < 0 {
		return -1, ErrNotFound
	}
	return i, nil
}

func (s *Service) List() []Row {
	rows := make([]Row, 0, s.store.Len())
	for _, shoe := range s.store.Snapshot() {
		rows = append(rows, row(shoe, s.opts.Currency))
	}
	return rows
}

// ValueReport is List plus cost times quantity per record.
func (s *Service) ValueReport() []Row {
	rows := make([]Row, 0, s.store.Len())
	for _, shoe := range s.store.Snapshot() {
		r := row(shoe, s.opts.Currency)
		r.Value = FormatPence(shoe.Value(), s.opts.Currency)
		rows = append(rows, r)
	}
	return rows
}

func (s *Service) TotalValue() int64 {
	var total int64
	for _, shoe := range s.store.Snapshot() {
		total += shoe.Value()
	}
	return total
}

// LowestStock returns the first record with the smallest quantity and
// takes it off sale.
func (s *Service) LowestStock() (int, error) {
	i := extremeIndex(s.store.Quantities(), false)
	if i < 0 {
		return -1, ErrEmptyStore
	}
	s.store.At(i).SaleOff()
	return i, nil
}

// HighestStock returns the first record with the largest quantity and
// puts it on sale.
func (s *Service) HighestStock() (int, error) {
	i := extremeIndex(s.store.Quantities(), true)
	if i < 0 {
		return -1, ErrEmptyStore
	}
	s.store.At(i).SaleOn()
	log.Info().Str("code", s.store.At(i).Code).Msg("sale on")
	return i, nil
}

// Restock adds order units to record i and rewrites the backing file. The
// store is left unchanged if the file cannot be written.
func (s *Service) Restock(i, order int) error {
	if i < 0 || i >= s.store.Len() {
		return fmt.Errorf("restock index %d: %w", i, ErrNotFound)
	}
	// Only positive orders are accepted. Zero and negative orders are rejected.
	if order <= 0 {
		return ErrInvalidOrder
	}
	if !s.backend.Exists() {
		return ErrNoBackingFile
	}

	shoe := s.store.At(i)
	shoe.AddStock(order)
	if err := s.backend.Rewrite(s.store.Snapshot()); err != nil {
		shoe.AddStock(-order)
		log.Error().Err(err).Str("code", shoe.Code).Msg("restock not saved")
		return fmt.Errorf("failed to save restock: %w", err)
	}

	log.Info().Str("code", shoe.Code).Int("order", order).Int("quantity", shoe.Quantity).Msg("restocked")
	return nil
}

// ReplaceAll validates shoes, overwrites the backing file with them and
// replaces the store. A missing backing file is created.
func (s *Service) ReplaceAll(shoes []models.Shoe) error {
	for i, shoe := range shoes {
		if err := Validate(shoe); err != nil {
			return fmt.Errorf("record %d (%s): %w", i+1, shoe.Code, err)
		}
	}
	if !s.backend.Exists() {
		if err := s.backend.Create(); err != nil {
			return err
		}
	}
	if err := s.backend.Rewrite(shoes); err != nil {
		return err
	}

	s.store.Replace(shoes)
	log.Info().Int("records", len(shoes)).Msg("inventory replaced")
	return nil
}
