package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInvalidChoice is returned by Choose when the answer does not parse as
// an in-range option number.
var ErrInvalidChoice = errors.New("invalid choice")

// UI reads one line of input per prompt and writes status text to a sink.
// Both ends are injected so tests can script the conversation.
type UI struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *UI {
	return &UI{in: bufio.NewReader(in), out: out}
}

// Ask prints the message and a "> " marker, then blocks for one line.
// The answer is returned with surrounding whitespace removed; an empty
// answer is valid.
func (u *UI) Ask(msg string) (string, error) {
	fmt.Fprintf(u.out, "%s\n> ", msg)
	line, err := u.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose presents a 1-based numbered menu and reads the operator's pick.
// The chosen index is returned as text; callers convert it back when
// indexing into their own slice.
func (u *UI) Choose(msg string, options []string) (string, error) {
	answer, err := u.Ask(OptionList(msg, options))
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 || n > len(options) {
		return "", fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
	}
	return strconv.Itoa(n), nil
}

// Success prints a plain message in green.
func (u *UI) Success(msg string) {
	fmt.Fprintln(u.out, color.GreenString("%s", msg))
}

// Warn prints a plain message in yellow. Warnings are expected outcomes,
// not failures.
func (u *UI) Warn(msg string) {
	fmt.Fprintln(u.out, color.YellowString("%s", msg))
}

// Error prints a plain message in red.
func (u *UI) Error(msg string) {
	fmt.Fprintln(u.out, color.RedString("%s", msg))
}
