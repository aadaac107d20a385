package drain

import (
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/driftlog/drift/formatter"
)

// NewTerm creates a terminal sink over f (typically os.Stdout or
// os.Stderr). ANSI level coloring is enabled when f is a terminal; the
// writer is routed through go-colorable so escape sequences render on
// Windows consoles as well.
func NewTerm(f *os.File) *Writer {
	color := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return NewWriter(
		colorable.NewColorable(f),
		formatter.NewTextFormatter(formatter.Config{Color: color}),
	)
}
