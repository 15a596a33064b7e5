package encode

import (
	"os"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// Pretty adds a space after commas and around '=' in tables. Pretty
// output still parses back to an equal value.
func Pretty() EncodeOption {
	return func(es *EncState) { es.pretty = true }
}

// EncodeColors enables ANSI color output using c. Colorized output is for
// display, not for parsing back.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors enables the default colors when f is a terminal and is a
// no-op otherwise.
func AutoColors(f *os.File) EncodeOption {
	return func(es *EncState) {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			es.Color = NewColors().Color
		}
	}
}
