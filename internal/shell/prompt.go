package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once the operator's input is exhausted.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints msg and returns the next line without its line ending.
func (p *Prompter) Ask(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskInt repeats msg until the answer is an integer accepted by check.
// check may be nil.
func (p *Prompter) AskInt(msg, invalid string, check func(int) error) (int, error) {
	for {
		answer, err := p.Ask(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && check != nil {
			err = check(n)
		}
		if err != nil {
			fmt.Fprintln(p.out, invalid)
			continue
		}
		return n, nil
	}
}

// Continue asks whether to carry on. A no says goodbye.
func (p *Prompter) Continue() (bool, error) {
	answer, err := p.Ask("Continue? [Y/N]: ")
	for {
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			fmt.Fprintln(p.out, "\nBye bye!")
			return false, nil
		}
		answer, err = p.Ask("\n\tEnter Y or N: ")
	}
}

// YesNo repeats msg until the answer is y, yes, n or no.
func (p *Prompter) YesNo(msg string) (bool, error) {
	for {
		answer, err := p.Ask(msg)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "\tInvalid input. Please enter yes or no")
	}
}
