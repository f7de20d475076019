// Package console handles the interactive side of a terminal session:
// telling a terminal from a pipe and asking y/N questions one key at a time.
package console

import (
	"fmt"
	"io"
	"log/slog"
)

// TTY is the device confirmation keys are read from.
const TTY = "/dev/tty"

// Prompter asks yes/no questions on a terminal. It satisfies the
// interpreter's Confirmer.
type Prompter struct {
	out     io.Writer
	readKey func() (byte, error)
	log     *slog.Logger
}

func NewPrompter(out io.Writer, log *slog.Logger) *Prompter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Prompter{
		out:     out,
		readKey: func() (byte, error) { return ReadKey(TTY) },
		log:     log,
	}
}

// Confirm prints prompt and reads a single key. Only y or Y is a yes; a
// read failure counts as no.
func (p *Prompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	key, err := p.readKey()
	if err != nil {
		fmt.Fprintln(p.out)
		p.log.Warn("read confirmation key", "err", err)
		return false
	}
	yes := Answer(key)
	if yes {
		fmt.Fprintln(p.out, "y")
	} else {
		fmt.Fprintln(p.out, "n")
	}
	return yes
}

func Answer(key byte) bool {
	return key == 'y' || key == 'Y'
}
