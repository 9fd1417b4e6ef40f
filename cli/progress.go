package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/func/overwrite/ui"
)

// ProgressBar renders a fraction as a bar followed by a percentage.
type ProgressBar struct {
	Width int

	// Frames contains the filled rune first and the unfilled rune last. Any
	// runes in between are used for partially filled cells. Defaults to
	// "█▓▒░" if empty.
	Frames string

	mu       sync.Mutex
	progress float64
	buf      strings.Builder
}

const defaultProgressFrames = "█▓▒░"

// NewProgressBar creates a progress bar at most width cells wide.
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width:  width,
		Frames: defaultProgressFrames,
	}
}

// SetProgress sets the fraction of work done, clamped to [0, 1].
func (p *ProgressBar) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = progress
}

const percentWidth = len(" 100%")

// Render renders the bar. The bar shrinks to fit the frame width, leaving
// room for the percentage.
func (p *ProgressBar) Render(frame ui.Frame) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	width := p.Width
	if limit := frame.Width - percentWidth; width > limit {
		width = limit
	}

	frames := []rune(p.Frames)
	if len(frames) == 0 {
		frames = []rune(defaultProgressFrames)
	}
	filled := frames[0]
	unfilled := frames[len(frames)-1]
	var mid []rune
	if len(frames) > 2 {
		mid = frames[1 : len(frames)-1]
	}

	p.buf.Reset()
	for i := 0; i < width; i++ {
		offset := float64(i) / float64(width)
		v := (p.progress - offset) * float64(width)
		if v > 0.99 {
			v = 1
		}

		if v >= 1 {
			p.buf.WriteRune(filled)
			continue
		}
		if v > 0 && len(mid) > 0 {
			index := v*float64(len(mid)+1) - 1
			if index >= 0 {
				p.buf.WriteRune(mid[int(index)])
				continue
			}
		}
		p.buf.WriteRune(unfilled)
	}
	return ui.Cols(p.buf.String(), fmt.Sprintf("%3d%%", int(p.progress*100+0.5)))
}
