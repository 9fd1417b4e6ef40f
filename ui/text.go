package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Fit truncates or pads str so it occupies exactly cols terminal cells. If
// the text is truncated, tail is written at the end while still fitting
// within cols.
//
// Unlike Body, Fit measures display cells: wide characters count as two.
func Fit(str string, cols int, tail string) string {
	if cols <= 0 {
		return ""
	}
	str = runewidth.Truncate(str, cols, tail)
	return runewidth.FillRight(str, cols)
}

// Cols joins all non-empty columns with a space.
func Cols(cols ...string) string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
