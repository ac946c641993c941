// Package display renders search matches for the terminal.
package display

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// MatchPrinter writes one match per record.
type MatchPrinter struct {
	out         io.Writer
	terminator  byte
	colorOutput bool
	name        *color.Color
}

// NewMatchPrinter creates a printer writing to out. With print0 every match
// is terminated by NUL instead of a newline. The final path component is
// highlighted when out is a terminal and print0 is off.
func NewMatchPrinter(out io.Writer, print0 bool) *MatchPrinter {
	p := &MatchPrinter{
		out:        out,
		terminator: '\n',
		name:       color.New(color.FgGreen, color.Bold),
	}
	if print0 {
		p.terminator = 0
	}
	p.colorOutput = !print0 && isTerminal(out)
	if p.colorOutput {
		// color.NoColor tracks os.Stdout, not out.
		p.name.EnableColor()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes match followed by the record terminator.
func (p *MatchPrinter) Print(match string) error {
	text := match
	if p.colorOutput {
		dir, base := filepath.Split(match)
		text = dir + p.name.Sprint(base)
	}

	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, p.terminator)
	_, err := p.out.Write(buf)
	return err
}
