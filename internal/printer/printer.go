package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// Printer writes colored console output. Color is dropped automatically
// when NO_COLOR is set or the output is not a terminal.
type Printer struct {
	out io.Writer
	err io.Writer
}

func New(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{out: out, err: errOut}
}

var std = New(os.Stdout, os.Stderr)

// Out is the writer for plain output.
func (p *Printer) Out() io.Writer { return p.out }

// Success prints a green line with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(p.out, msg)
}

func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a yellow message with a warning prefix.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠") {
		msg = "⚠  " + msg
	}
	yellow.Fprint(p.out, msg)
}

// Step prints an emphasized progress line.
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Heading prints bold text.
func (p *Printer) Heading(format string, a ...any) {
	bold.Fprintf(p.out, format, a...)
}

// Error prints title, explanation and suggestions to the error stream and
// returns an error carrying only the title, for cobra.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	red.Fprintf(p.err, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(p.err, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintln(p.err)
		if len(suggestions) == 1 {
			fmt.Fprintf(p.err, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.err, "Either:\n")
			for i, s := range suggestions {
				fmt.Fprintf(p.err, "  %d. %s\n", i+1, s)
			}
		}
	}

	return fmt.Errorf("%s", title)
}

func Success(format string, a ...any) { std.Success(format, a...) }
func Info(format string, a ...any)    { std.Info(format, a...) }
func Warning(format string, a ...any) { std.Warning(format, a...) }
func Step(format string, a ...any)    { std.Step(format, a...) }

func Error(title, explanation string, suggestions []string) error {
	return std.Error(title, explanation, suggestions)
}
