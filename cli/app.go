package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/func/overwrite/ansi"
	"github.com/func/overwrite/ui"
	"github.com/mattn/go-runewidth"
)

// App runs animations on the terminal.
type App struct {
	Logger *Logger

	// Output receives the animation. Logs are written separately by the
	// Logger so they do not end up inside the redrawn block.
	Output io.Writer

	// Width returns the current terminal width.
	Width func() int

	// Interval is the time between frames.
	Interval time.Duration

	// KeepCursor leaves the cursor visible while animating.
	KeepCursor bool
}

// NewApp creates an app animating on stdout and logging to stderr.
func NewApp(level LogLevel) *App {
	return &App{
		Logger: NewLogger(os.Stderr, level),
		Output: os.Stdout,
		Width: func() int {
			return ui.TerminalWidth(int(os.Stdout.Fd()))
		},
		Interval: 40 * time.Millisecond,
	}
}

// Animate redraws target in place until frames frames have been rendered or
// ctx is cancelled. If frames is 0, Animate runs until ctx is cancelled.
//
// The cursor is always restored and moved below the output before
// returning.
func (a *App) Animate(ctx context.Context, target ui.Renderer, frames int) error {
	live := ui.NewLive(a.Output, target)
	live.KeepCursor = a.KeepCursor
	if a.Width != nil {
		live.Width = a.Width
	}

	err := a.loop(ctx, frames, func(n int) error {
		if err := live.Render(); err != nil {
			return fmt.Errorf("render frame %d: %w", n, err)
		}
		return nil
	})
	if cerr := live.Close(); err == nil {
		err = cerr
	}
	return err
}

// Board animates a task board.
func (a *App) Board(ctx context.Context, tasks []Task, frames int) error {
	a.Logger.Verbosef("Rendering %d tasks\n", len(tasks))
	return a.Animate(ctx, &Board{Tasks: tasks}, frames)
}

// Progress animates a progress bar filling up over the given number of
// frames. If frames is 0, the bar restarts every 100 frames until ctx is
// cancelled.
func (a *App) Progress(ctx context.Context, frames int) error {
	total := frames
	if total <= 0 {
		total = 100
	}
	bar := NewProgressBar(60)
	target := ui.RenderFunc(func(f ui.Frame) string {
		n := f.Number % total
		if total > 1 {
			bar.SetProgress(float64(n) / float64(total-1))
		} else {
			bar.SetProgress(1)
		}
		return ui.Cols(Spinner(f), bar.Render(ui.Frame{Number: f.Number, Width: f.Width - 2}))
	})
	return a.Animate(ctx, target, frames)
}

// Paragraph prints the tasks once and then only rewrites the state markers,
// moving the cursor relative to where the previous marker was written.
//
// Rows that do not fit the terminal width are truncated, since relative
// movement cannot account for wrapped lines.
func (a *App) Paragraph(ctx context.Context, tasks []Task, frames int) error {
	width := ui.DefaultWidth
	if a.Width != nil {
		width = a.Width()
	}

	prefixes := make([]string, len(tasks))
	for i, t := range tasks {
		// Leave room for the marker.
		prefixes[i] = runewidth.Truncate(taskPrefix(t), width-2, ">")
	}

	if !a.KeepCursor {
		if err := ansi.Fprint(a.Output, ansi.CursorVisibility{Show: false}); err != nil {
			return err
		}
		defer func() {
			_ = ansi.Fprint(a.Output, ansi.CursorVisibility{Show: true})
		}()
	}

	var buf []byte
	return a.loop(ctx, frames, func(n int) error {
		f := ui.Frame{Number: n, Width: width}
		buf = buf[:0]
		if n == 0 {
			for i, t := range tasks {
				buf = append(buf, prefixes[i]...)
				buf = append(buf, marker(t.State, f)...)
				buf = append(buf, '\n')
			}
		} else {
			buf = appendMarkers(buf, tasks, prefixes, f)
		}
		if _, err := a.Output.Write(buf); err != nil {
			return fmt.Errorf("write frame %d: %w", n, err)
		}
		return nil
	})
}

// appendMarkers appends the cursor movements and markers to update every
// row, starting and ending at the beginning of the line below the rows.
func appendMarkers(buf []byte, tasks []Task, prefixes []string, f ui.Frame) []byte {
	row, col := len(tasks), 0
	for i, t := range tasks {
		target := runewidth.StringWidth(prefixes[i])
		m := ansi.NewMovement()
		if i < row {
			m = m.Up(row - i)
		} else if i > row {
			m = m.Down(i - row)
		}
		if target > col {
			m = m.Right(target - col)
		} else if target < col {
			m = m.Left(col - target)
		}
		glyph := marker(t.State, f)
		buf = ansi.Append(buf, m.Move())
		buf = append(buf, glyph...)
		row, col = i, target+runewidth.StringWidth(glyph)
	}
	return ansi.Append(buf, ansi.MoveLines{Down: len(tasks) - row})
}

// loop calls fn for every frame, waiting for the interval between calls.
// The first frame is rendered immediately unless ctx is already done.
func (a *App) loop(ctx context.Context, frames int, fn func(n int) error) error {
	interval := a.Interval
	if interval <= 0 {
		interval = 40 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; frames <= 0 || n < frames; n++ {
		if n > 0 {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
		if ctx.Err() != nil {
			a.Logger.Verbosef("Stopped after %d frames\n", n)
			return nil
		}
		a.Logger.Tracef("Frame %d\n", n)
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}
