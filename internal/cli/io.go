package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IO abstracts terminal input/output so commands can be tested with a
// scripted implementation.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

// Terminal reads prompts from in and writes output to out. The reader is
// buffered once so input queued behind a prompt is not lost between reads.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdio returns IO bound to the process terminal
func NewStdio() *Terminal {
	return New(os.Stdin, os.Stdout)
}

// New returns IO over an arbitrary reader and writer
func New(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(r), out: w}
}

func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

func (t *Terminal) Printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}

// ReadInput prompts and reads one line, trimming surrounding whitespace.
// A final unterminated line is still returned.
func (t *Terminal) ReadInput(prompt string) (string, error) {
	t.Printf("%s", prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword reads without echo when stdin is a terminal and falls
// back to a plain line read otherwise (piped input, tests).
func (t *Terminal) ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return t.ReadInput(prompt)
	}

	t.Printf("%s", prompt)
	password, err := term.ReadPassword(fd)
	t.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}
