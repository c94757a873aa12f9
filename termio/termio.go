// Package termio provides the terminal plumbing demos and consuming CLIs
// print through: writer wiring, TTY and width detection, and a small
// leveled logger.
package termio

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Term wires an output and an error writer together with color and TTY
// awareness. Construct with New or NewWriters.
type Term struct {
	out, err io.Writer
	colorOn  bool
}

// New returns a Term over the process's stdout and stderr, with color
// decided from the environment and the terminal.
func New() *Term {
	t := &Term{out: os.Stdout, err: os.Stderr}
	t.colorOn = t.detectColor()
	return t
}

// NewWriters returns a Term over arbitrary writers with color off. Meant
// for tests and captured output.
func NewWriters(out, err io.Writer) *Term {
	return &Term{out: out, err: err}
}

// Out returns the output writer.
func (t *Term) Out() io.Writer { return t.out }

// Err returns the error writer.
func (t *Term) Err() io.Writer { return t.err }

// IsTTY reports whether the output writer is a terminal.
func (t *Term) IsTTY() bool {
	f, ok := t.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width, the COLUMNS variable when the terminal
// cannot be queried, or 80 as a last resort.
func (t *Term) Width() int {
	if f, ok := t.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if c := os.Getenv("COLUMNS"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}
	return 80
}

// ColorEnabled reports whether styled output is appropriate for this Term.
func (t *Term) ColorEnabled() bool { return t.colorOn }

// detectColor: NO_COLOR wins, FORCE_COLOR overrides, otherwise color
// requires a terminal.
func (t *Term) detectColor() bool {
	if _, no := os.LookupEnv("NO_COLOR"); no {
		return false
	}
	if _, force := os.LookupEnv("FORCE_COLOR"); force {
		return true
	}
	return t.IsTTY()
}
