// Package shell is the line-oriented console over an inventory session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"shoestock/internal/csv"
	"shoestock/internal/inventory"

	"github.com/rs/zerolog/log"
)

type option struct {
	number      string
	keyword     string
	description string
	// run returns false when the session must end without asking to continue.
	run func(*Shell) (bool, error)
}

var options = []option{
	{"1", "import", "Import inventory from file", (*Shell).importInventory},
	{"2", "input", "Input new product information", (*Shell).capture},
	{"3", "view", "View all product information", (*Shell).viewAll},
	{"4", "restock", "Restock advice", (*Shell).restock},
	{"5", "search", "Search shoes by code", (*Shell).search},
	{"6", "value", "View total product values in stock", (*Shell).valueReport},
	{"7", "sale", "Promotional sale advice", (*Shell).saleAdvice},
	{"0", "quit", "End the program", nil},
}

func lookup(choice string) (option, bool) {
	for _, opt := range options {
		if choice == opt.number || choice == opt.keyword {
			return opt, true
		}
	}
	return option{}, false
}

// Shell owns one inventory session and talks to one operator.
type Shell struct {
	svc    *inventory.Service
	file   string
	prompt *Prompter
	out    io.Writer
}

// New builds a shell. file is the backing file name shown in messages.
func New(svc *inventory.Service, file string, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		svc:    svc,
		file:   file,
		prompt: NewPrompter(in, out),
		out:    out,
	}
}

// Run imports the backing file, then loops over the menu until the operator
// quits, declines to continue, aborts a capture, or input runs out.
func (s *Shell) Run() error {
	if _, err := s.importInventory(); err != nil {
		return err
	}
	s.printf("\nWelcome to the inventory console. Options are as follows:\n\n")

	for {
		s.println(s.menu())
		s.println(separator)

		choice, err := s.prompt.Ask("Enter the number or keyword your choice: ")
		if err != nil {
			return ended(err)
		}

		opt, ok := lookup(strings.TrimSpace(choice))
		if !ok {
			s.println("\n\tInvalid input\n\tPlease choose from the following options:")
			continue
		}
		if opt.run == nil {
			log.Debug().Msg("operator quit")
			return nil
		}

		proceed, err := opt.run(s)
		if err != nil {
			return ended(err)
		}
		if !proceed {
			return nil
		}

		s.println(separator)
		again, err := s.prompt.Continue()
		if err != nil {
			return ended(err)
		}
		if !again {
			return nil
		}
	}
}

func (s *Shell) menu() string {
	rows := make([][]string, len(options))
	for i, opt := range options {
		rows[i] = []string{opt.number, opt.keyword, opt.description}
	}
	return renderTable([]string{"", "Choice", "Description"}, rows)
}

func (s *Shell) importInventory() (bool, error) {
	n, err := s.svc.Import()
	switch {
	case err == nil:
		s.printf("\nInventory successfully imported from '%s' (%d records)\n", s.file, n)
	case errors.Is(err, csv.ErrFileNotFound):
		s.println("\n\tInventory file not found")
		s.println("\tCannot import stock from file")
	case errors.Is(err, csv.ErrMalformedRecord):
		s.printf("\tInvalid value(s) for costs or quantities in %s\n", s.file)
		s.println("\tCannot import stock from file")
	default:
		s.printf("\tCannot import stock from file: %v\n", err)
	}
	return true, nil
}

func (s *Shell) viewAll() (bool, error) {
	s.println("\n" + RenderReport(s.svc.List(), false))
	return true, nil
}

func (s *Shell) valueReport() (bool, error) {
	s.println("\n" + RenderReport(s.svc.ValueReport(), true))
	return true, nil
}

func (s *Shell) restock() (bool, error) {
	i, err := s.svc.LowestStock()
	if err != nil {
		s.printf("\n\t%s\n", capitalize(err.Error()))
		return true, nil
	}
	shoe := s.svc.Store().At(i)
	s.printf("\nLowest stock determined to be %d units for\n%s\n", shoe.Quantity, Detail(*shoe, s.svc.Currency()))

	if !s.svc.HasBackingFile() {
		s.println("\n\tInventory file not found")
		s.println("\tCannot update stock")
		return true, nil
	}

	yes, err := s.prompt.YesNo("\nWould you like to restock product?\n\t")
	if err != nil || !yes {
		return true, err
	}

	order, err := s.prompt.AskInt("\nEnter quantity to order:\n\t", "\tInvalid quantity. Orders of zero or less are not accepted, enter a positive integer", func(n int) error {
		if n <= 0 {
			return inventory.ErrInvalidOrder
		}
		return nil
	})
	if err != nil {
		return true, err
	}

	if err := s.svc.Restock(i, order); err != nil {
		s.printf("\tCannot update stock: %v\n", err)
		return true, nil
	}
	s.printf("\nProduct inventory updated\n%s\n\n", Detail(*shoe, s.svc.Currency()))
	return true, nil
}

func (s *Shell) search() (bool, error) {
	for {
		code, err := s.prompt.Ask("\nEnter shoe code: ")
		if err != nil {
			return true, err
		}

		i, err := s.svc.Search(code)
		switch {
		case err == nil:
			s.println(Detail(*s.svc.Store().At(i), s.svc.Currency()))
			return true, nil
		case errors.Is(err, inventory.ErrNotFound):
			s.println("\tShoe not found in inventory")
			return true, nil
		default:
			s.println(codeMessage(err))
		}
	}
}

func (s *Shell) saleAdvice() (bool, error) {
	i, err := s.svc.HighestStock()
	if err != nil {
		s.printf("\n\t%s\n", capitalize(err.Error()))
		return true, nil
	}
	shoe := s.svc.Store().At(i)
	s.printf("\nLargest stock determined to be %d units for\n%s\n\n\tSale now on\n", shoe.Quantity, Detail(*shoe, s.svc.Currency()))
	return true, nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ended turns exhausted input into a normal end of session.
func ended(err error) error {
	if errors.Is(err, ErrInputClosed) {
		log.Debug().Msg("input closed, ending session")
		return nil
	}
	return err
}

func codeMessage(err error) string {
	switch {
	case errors.Is(err, inventory.ErrCodeLength):
		return "\tInvalid code. Shoe codes should be 8 characters long"
	case errors.Is(err, inventory.ErrCodeShape):
		return "\tInvalid code. Shoe code must be in the form 'ABC12345'"
	}
	return "\tInvalid code. " + err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
