package ui

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/func/overwrite/ansi"
)

// A Body redraws a block of text in place. Every call to Overwrite replaces
// the block written by the previous call.
//
// Body remembers the length of every line it last wrote. It does not track
// the terminal width; it must be passed on every call since the terminal may
// be resized between frames.
//
// A Body is not safe for concurrent use.
type Body struct {
	lines []int  // Character count per line of the last frame
	buf   []byte // Reused between frames
}

// Overwrite writes text to w, replacing the previously written frame. The
// output is assembled in memory and written with a single call to w.Write.
//
// Line lengths are measured in characters rather than display cells, so
// double width or combining characters may cause the height of a wrapped
// line to be misjudged. The width must be positive.
//
// If the write fails, the error is returned as is and the next call
// positions the cursor as if this call had never happened.
func (b *Body) Overwrite(text string, w io.Writer, width int) error {
	out := b.buf[:0]

	switch h := b.Height(width); {
	case h == 1:
		out = ansi.Append(out, jumpToStart)
	case h > 1:
		out = ansi.Append(out, jumpToStart, ansi.MoveLines{Up: h - 1})
	}

	lines := splitLines(text)
	next := make([]int, 0, len(lines))
	for i, line := range lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, line...)
		out = ansi.Append(out, clearLine)
		next = append(next, utf8.RuneCountInString(line))
	}
	if len(lines) == 0 {
		// Keep a single empty line so the next frame still returns to the
		// start of this one.
		out = ansi.Append(out, clearLine)
		next = append(next, 0)
	}
	out = ansi.Append(out, clearDown)
	b.buf = out

	n, err := w.Write(out)
	if err != nil {
		return err
	}
	if n < len(out) {
		return io.ErrShortWrite
	}

	b.lines = next
	return nil
}

// Height returns the number of terminal rows the previous frame occupies at
// the given width. Every line takes one row, plus one for every full width
// of characters it contains.
//
// Returns 0 if nothing has been written yet.
func (b *Body) Height(width int) int {
	h := 0
	for _, l := range b.lines {
		h += l/width + 1
	}
	return h
}

// Reset forgets the previous frame. The next call to Overwrite starts
// writing at the current cursor position.
func (b *Body) Reset() {
	b.lines = nil
}

// splitLines splits text on line breaks. A trailing line break does not start
// a new line and a carriage return before a line break is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	terminated := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
	}
	return lines
}

var (
	jumpToStart = ansi.AbsoluteHorizontalMove{Column: 0}
	clearLine   = ansi.ClearToEndOfLine{}
	clearDown   = ansi.ClearToEndOfScreen{}
)
