package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// ErrUnavailable indicates no clipboard utility was found
var ErrUnavailable = errors.New("clipboard unavailable - install xclip, xsel, or wl-clipboard")

// Writer lets callers swap the system clipboard out in tests
type Writer func(text string) error

// System writes to the OS clipboard
func System(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// CopyPlain copies text with any ANSI styling removed
func CopyPlain(w Writer, text string) error {
	if w == nil {
		w = System
	}
	return w(ansi.Strip(text))
}
