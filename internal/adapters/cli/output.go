package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Output struct {
	out    io.Writer
	errOut io.Writer
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
	bold   *color.Color
}

func NewOutput() *Output {
	return NewOutputTo(os.Stdout, os.Stderr)
}

// NewOutputTo writes regular lines to out and errors to errOut. Colours
// follow fatih/color's terminal detection.
func NewOutputTo(out, errOut io.Writer) *Output {
	return &Output{
		out:    out,
		errOut: errOut,
		green:  color.New(color.FgHiGreen),
		yellow: color.New(color.FgHiYellow),
		red:    color.New(color.FgHiRed),
		gray:   color.New(color.FgHiBlack),
		bold:   color.New(color.Bold),
	}
}

func (o *Output) DisableColors() {
	for _, c := range []*color.Color{o.green, o.yellow, o.red, o.gray, o.bold} {
		c.DisableColor()
	}
}

func (o *Output) PrintHeader(msg string) {
	fmt.Fprintln(o.out, o.bold.Sprint(msg))
	fmt.Fprintln(o.out)
}

func (o *Output) PrintStep(emoji, msg string, args ...any) {
	prefix := "  "
	if emoji != "" {
		prefix += emoji + " "
	}
	fmt.Fprintf(o.out, prefix+"%s\n", fmt.Sprintf(msg, args...))
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.green.Sprint("✓ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintWarning(msg string, args ...any) {
	fmt.Fprintf(o.out, "  %s%s\n", o.yellow.Sprint("⚠ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintError(msg string, args ...any) {
	fmt.Fprintf(o.errOut, "  %s%s\n", o.red.Sprint("✗ "), fmt.Sprintf(msg, args...))
}

func (o *Output) PrintFile(path string) {
	fmt.Fprintf(o.out, "    %s\n", o.gray.Sprint(path))
}

func (o *Output) PrintDone(msg string) {
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, o.green.Sprint(msg))
}
