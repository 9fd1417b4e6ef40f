package cli

import (
	"github.com/func/overwrite/ui"
)

var spinnerFrames = []string{"⡏", "⠟", "⠻", "⢹", "⣸", "⣴", "⣦", "⣇"}

// Spinner returns the spinner glyph for the given frame.
func Spinner(f ui.Frame) string {
	return spinnerFrames[f.Number%len(spinnerFrames)]
}
