package format

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ShouldColor resolves a color mode for output going to w. In auto mode
// color is used only when w is a terminal.
func ShouldColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	case ColorAuto, "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q: use %q, %q or %q", mode, ColorAuto, ColorAlways, ColorNever)
	}
}
