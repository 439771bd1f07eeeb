// Package console renders the progress line and operation reports to the
// terminal.
package console

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile honors NO_COLOR, otherwise keeps basic ANSI colors.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// NewOutput wraps a writer in a termenv output with the resolved profile.
func NewOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()))
}
