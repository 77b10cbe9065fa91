package shell

import (
	"errors"

	"shoestock/internal/inventory"
	"shoestock/internal/models"
)

// capture reads a new shoe from the operator. Declining to retry after a
// duplicate code aborts the capture and the session, leaving store and file
// untouched.
func (s *Shell) capture() (bool, error) {
	country, err := s.prompt.Ask("\nEnter country: ")
	if err != nil {
		return false, err
	}

	var code string
	for {
		code, err = s.prompt.Ask("Enter code: ")
		if err != nil {
			return false, err
		}
		if err := inventory.CheckCode(code); err != nil {
			s.println(codeMessage(err))
			continue
		}

		var dup *inventory.DuplicateCodeError
		if !errors.As(s.svc.CheckDuplicate(code), &dup) {
			break
		}
		s.println("\tCode already assigned to previous product:")
		s.println(Detail(dup.Existing, s.svc.Currency()))

		retry, err := s.prompt.Continue()
		if err != nil {
			return false, err
		}
		if !retry {
			return false, nil
		}
	}

	product, err := s.prompt.Ask("Enter product: ")
	if err != nil {
		return false, err
	}
	cost, err := s.prompt.AskInt("Enter cost (in pence): ", "\tInvalid cost. Input should be a non-negative integer", inventory.ValidateAmount)
	if err != nil {
		return false, err
	}
	quantity, err := s.prompt.AskInt("Enter quantity in stock: ", "\tInvalid quantity. Input should be a non-negative integer", inventory.ValidateAmount)
	if err != nil {
		return false, err
	}

	added, err := s.svc.Capture(models.Shoe{
		Country:  country,
		Code:     code,
		Product:  product,
		Cost:     cost,
		Quantity: quantity,
	})
	if added == nil {
		s.printf("\tCannot add shoe: %v\n", err)
		return true, nil
	}

	s.println(Detail(*added, s.svc.Currency()))
	s.println("\n\tShoe successfully added to list")
	if err != nil {
		s.println("\tCannot update inventory file")
		return true, nil
	}
	s.printf("\t'%s' updated\n", s.file)
	return true, nil
}
