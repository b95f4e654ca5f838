// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize/english"
)

// ErrNoInput is returned when input ends before a valid answer is given.
var ErrNoInput = errors.New("no answer given: input closed")

// Confirmer reads answers from in and writes questions to out.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// NewTerminal prompts on stderr and reads stdin.
func NewTerminal() *Confirmer {
	return New(os.Stdin, os.Stderr)
}

// Confirm asks question until the answer is y or n, in any case. There is no
// default answer: an empty line asks again.
func (c *Confirmer) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "%s (y/n) ", question)

		line, err := c.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return false, ErrNoInput
		}
		if err != nil {
			return false, err
		}
	}
}

// ConfirmDeletion lists names and asks whether to delete them.
func (c *Confirmer) ConfirmDeletion(names ...string) (bool, error) {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	fmt.Fprintf(c.out, "This will delete the following %s:\n", english.PluralWord(len(sorted), "branch", "branches"))
	for _, name := range sorted {
		fmt.Fprintf(c.out, " - %s\n", name)
	}
	fmt.Fprintln(c.out)

	return c.Confirm("Are you sure you want to continue?")
}
