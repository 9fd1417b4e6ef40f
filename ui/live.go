package ui

import (
	"io"
	"os"
	"sync"

	"github.com/func/overwrite/ansi"
)

// Live continuously redraws the output of a Renderer in place.
type Live struct {
	// KeepCursor disables hiding the cursor while the view is live. By
	// default the cursor is hidden as it may flash in the output, but it can
	// be kept for tests.
	KeepCursor bool

	// Width returns the current number of terminal columns. It is called for
	// every frame. Defaults to the width of stdout.
	Width func() int

	target Renderer

	mu      sync.Mutex
	out     io.Writer
	body    Body
	frame   int
	started bool
}

// A Renderer generates the text to display for a single frame.
//
// The Renderer must always render the entire output.
type Renderer interface {
	Render(frame Frame) string
}

// RenderFunc is a function implementing Renderer.
type RenderFunc func(frame Frame) string

// Render calls fn(frame).
func (fn RenderFunc) Render(frame Frame) string { return fn(frame) }

// A Frame is a single frame passed to a Render().
type Frame struct {
	// Number is incremented after every frame that was written successfully.
	Number int

	// Width is the number of columns in the terminal. Lines exceeding it
	// wrap.
	Width int
}

// NewLive creates a new live view writing the output of target to out.
func NewLive(out io.Writer, target Renderer) *Live {
	return &Live{
		out:    out,
		target: target,
		Width: func() int {
			return TerminalWidth(int(os.Stdout.Fd()))
		},
	}
}

// Render renders the target and replaces the previous frame with it.
func (l *Live) Render() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started {
		if !l.KeepCursor {
			if err := ansi.Fprint(l.out, ansi.CursorVisibility{Show: false}); err != nil {
				return err
			}
		}
		l.started = true
	}

	width := l.Width()
	if width < 1 {
		width = 1
	}
	frame := Frame{
		Number: l.frame,
		Width:  width,
	}

	text := l.target.Render(frame)
	if err := l.body.Overwrite(text, l.out, width); err != nil {
		return err
	}
	l.frame++
	return nil
}

// Close ends the live view. The cursor is moved below the last frame and
// shown again if it was hidden. The next Render starts a new block.
//
// Close is a no-op if nothing was rendered.
func (l *Live) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started {
		return nil
	}
	l.started = false
	l.body.Reset()

	buf := []byte{'\n'}
	if !l.KeepCursor {
		buf = ansi.Append(buf, ansi.CursorVisibility{Show: true})
	}
	_, err := l.out.Write(buf)
	return err
}
