package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
)

const (
	banner = "################## Coffee Settlement App ##################"

	promptPayments = "Please provide absolute path to the payments.json file: "
	promptProducts = "Please provide absolute path to the products.json file: "
	promptOrders   = "Please provide absolute path to the orders.json file: "
)

var (
	ErrEmptyPath = errors.New("source path is empty")
)

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// FillSources asks for every source path that is still empty.
// Nothing is printed when all paths are already known.
func (p *Prompter) FillSources(sources entity.Sources) (entity.Sources, error) {
	if sources.Complete() {
		return sources, nil
	}

	fmt.Fprintln(p.out, banner)

	var err error
	if len(sources.Payments) == 0 {
		sources.Payments, err = p.ask(promptPayments)
		if err != nil {
			return entity.Sources{}, fmt.Errorf("error while reading payments path: %w", err)
		}
	}

	if len(sources.Products) == 0 {
		sources.Products, err = p.ask(promptProducts)
		if err != nil {
			return entity.Sources{}, fmt.Errorf("error while reading products path: %w", err)
		}
	}

	if len(sources.Orders) == 0 {
		sources.Orders, err = p.ask(promptOrders)
		if err != nil {
			return entity.Sources{}, fmt.Errorf("error while reading orders path: %w", err)
		}
	}

	return sources, nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.ErrUnexpectedEOF
	}

	path := strings.TrimSpace(p.scanner.Text())
	if len(path) == 0 {
		return "", ErrEmptyPath
	}

	return path, nil
}
