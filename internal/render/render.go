// Package render draws an Elevens board as text for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/elevens/internal/board"
	"github.com/arcanaland/elevens/internal/card"
)

const (
	columns   = 3
	cellWidth = 12
)

// Options controls how a board is drawn
type Options struct {
	Color bool
	Width int // terminal width; boards narrower than three cells print one per line
}

// Renderer writes boards to an output
type Renderer struct {
	out   io.Writer
	opts  Options
	red   *colorize.Color
	black *colorize.Color
	label *colorize.Color
	dim   *colorize.Color
}

// New creates a renderer writing to out
func New(out io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:   out,
		opts:  opts,
		red:   colorize.New(colorize.FgHiRed, colorize.Bold),
		black: colorize.New(colorize.FgHiWhite, colorize.Bold),
		label: colorize.New(colorize.FgCyan),
		dim:   colorize.New(colorize.FgHiBlack),
	}
	for _, c := range []*colorize.Color{r.red, r.black, r.label, r.dim} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// ForFile builds options for a terminal file, turning colour off when the
// file is not a terminal.
func ForFile(f *os.File, wantColor bool) Options {
	fd := int(f.Fd())

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = 80
	}

	return Options{
		Color: wantColor && term.IsTerminal(fd),
		Width: width,
	}
}

// Board draws the nine slots in a grid followed by a status line
func (r *Renderer) Board(b *board.Board) {
	perRow := columns
	if r.opts.Width > 0 && r.opts.Width < columns*cellWidth+2 {
		perRow = 1
	}

	fmt.Fprintln(r.out)
	for i := 0; i < board.Size; i++ {
		if i%perRow == 0 {
			fmt.Fprint(r.out, "  ")
		}
		fmt.Fprint(r.out, r.cell(b, i))
		if i%perRow == perRow-1 || i == board.Size-1 {
			fmt.Fprintln(r.out)
		}
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "  "+r.label.Sprint("Deck: ")+fmt.Sprint(b.DeckSize()))
}

// Status prints a label and a value on one line
func (r *Renderer) Status(label, format string, args ...any) {
	fmt.Fprintln(r.out, "  "+r.label.Sprint(label+": ")+fmt.Sprintf(format, args...))
}

// Cards lists the cards at the given slots, e.g. "[0] 3♣ [1] 8♥"
func (r *Renderer) Cards(b *board.Board, indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, strings.TrimRight(stripAnsi(r.cell(b, i)), " "))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) cell(b *board.Board, index int) string {
	prefix := fmt.Sprintf("[%d] ", index)

	c, ok := b.CardAt(index)
	if !ok {
		return r.label.Sprint(prefix) + r.dim.Sprint(pad("--", cellWidth-len(prefix)))
	}
	return r.label.Sprint(prefix) + r.paint(c).Sprint(pad(c.Short(), cellWidth-len(prefix)))
}

func (r *Renderer) paint(c card.Card) *colorize.Color {
	if c.IsRed() {
		return r.red
	}
	return r.black
}

// pad right-pads s to width visible runes
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
