// Package confirmations provides the console confirmation prompt.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arthur-debert/ddlcmod/pkg/errors"
	"github.com/gookit/color"
)

// interactiveMu keeps two prompts from reading the input at once
var interactiveMu sync.Mutex

// ConsoleDialog implements types.ConfirmationGate on a terminal. The
// default answer is no.
type ConsoleDialog struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewConsoleDialog creates a prompt reading answers from in. With
// assumeYes every confirmation is granted without reading input.
func NewConsoleDialog(in io.Reader, out io.Writer, assumeYes bool) *ConsoleDialog {
	return &ConsoleDialog{
		in:        bufio.NewReader(in),
		out:       out,
		assumeYes: assumeYes,
	}
}

// Confirm implements types.ConfirmationGate
func (d *ConsoleDialog) Confirm(title, message string) (bool, error) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()

	fmt.Fprintln(d.out, color.Warn.Sprint(title))
	prompt := fmt.Sprintf("%s [y/N]: ", message)

	if d.assumeYes {
		fmt.Fprintln(d.out, prompt+"yes")
		return true, nil
	}

	for {
		fmt.Fprint(d.out, color.Info.Sprint(prompt))
		response, err := d.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, nil
		}
		fmt.Fprintln(d.out, color.Warn.Sprint("Invalid input."))
	}
}
