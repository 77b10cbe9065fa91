package inventory

import (
	"errors"
	"fmt"

	"shoestock/internal/models"
)

var (
	ErrCodeLength    = errors.New("shoe codes should be 8 characters long")
	ErrCodeShape     = errors.New("shoe code must be in the form 'ABC12345'")
	ErrDuplicateCode = errors.New("code already assigned to previous product")
	ErrNotFound      = errors.New("shoe not found in inventory")
	ErrEmptyStore    = errors.New("no stock records loaded")
	ErrInvalidOrder  = errors.New("order quantity must be a positive integer, zero or negative orders are rejected")
)

// DuplicateCodeError carries the record already holding a code.
type DuplicateCodeError struct {
	Index    int
	Existing models.Shoe
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateCode, e.Existing.Code)
}

func (e *DuplicateCodeError) Unwrap() error {
	return ErrDuplicateCode
}

// ValidationError maps field names to problems found by Validate.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msg := "invalid shoe record"
	for _, name := range []string{"Code", "Cost", "Quantity"} {
		if problem, ok := e.Fields[name]; ok {
			msg += fmt.Sprintf("; %s: %s", name, problem)
		}
	}
	return msg
}
