package terminal

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Capabilities holds detected terminal capabilities
type Capabilities struct {
	Interactive bool // stdin and stdout are both terminals
	TrueColor   bool
}

// Detect probes the terminal environment to determine capabilities
func Detect() Capabilities {
	return Capabilities{
		Interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		TrueColor:   detectTrueColor(),
	}
}

// detectTrueColor checks if terminal supports 24-bit color
func detectTrueColor() bool {
	return termenv.EnvColorProfile() == termenv.TrueColor
}

// String returns a short description for logs
func (c Capabilities) String() string {
	s := "non-interactive"
	if c.Interactive {
		s = "interactive"
	}
	if c.TrueColor {
		s += ", truecolor"
	}
	return s
}
