// Package ansi encodes the small set of ANSI/VT100 control sequences needed
// to redraw text in place.
//
// Every sequence is a plain value. Rendering has no side effects and cannot
// fail; the output matches what VT100 compatible terminals expect byte for
// byte.
package ansi

import (
	"fmt"
	"io"
	"strconv"
)

// A Seq is a single terminal control operation.
//
// The set of implementations is closed; only the types in this package
// satisfy it.
type Seq interface {
	String() string
	seq()
}

// Move moves the cursor relative to its current position. Zero magnitudes
// are omitted.
type Move struct {
	Up, Down, Left, Right int
}

// MoveLines moves the cursor to the beginning of a line above or below the
// current one.
type MoveLines struct {
	Up, Down int
}

// ResetStyle resets all text attributes.
type ResetStyle struct{}

// Underline enables underlined text.
type Underline struct{}

// ClearToEndOfLine clears from the cursor to the end of the line.
type ClearToEndOfLine struct{}

// ClearToBeginningOfLine clears from the cursor to the beginning of the line.
type ClearToBeginningOfLine struct{}

// ClearLine clears the entire line.
type ClearLine struct{}

// ClearToEndOfScreen clears from the cursor to the end of the screen.
type ClearToEndOfScreen struct{}

// ClearToBeginningOfScreen clears from the cursor to the beginning of the
// screen.
type ClearToBeginningOfScreen struct{}

// ClearAllScreen clears the entire screen.
type ClearAllScreen struct{}

// CursorVisibility shows or hides the cursor.
type CursorVisibility struct {
	Show bool
}

// AbsoluteHorizontalMove moves the cursor to the given column on the current
// line.
type AbsoluteHorizontalMove struct {
	Column int
}

func (Move) seq()                     {}
func (MoveLines) seq()                {}
func (ResetStyle) seq()               {}
func (Underline) seq()                {}
func (ClearToEndOfLine) seq()         {}
func (ClearToBeginningOfLine) seq()   {}
func (ClearLine) seq()                {}
func (ClearToEndOfScreen) seq()       {}
func (ClearToBeginningOfScreen) seq() {}
func (ClearAllScreen) seq()           {}
func (CursorVisibility) seq()         {}
func (AbsoluteHorizontalMove) seq()   {}

func (s Move) String() string                     { return Render(s) }
func (s MoveLines) String() string                { return Render(s) }
func (s ResetStyle) String() string               { return Render(s) }
func (s Underline) String() string                { return Render(s) }
func (s ClearToEndOfLine) String() string         { return Render(s) }
func (s ClearToBeginningOfLine) String() string   { return Render(s) }
func (s ClearLine) String() string                { return Render(s) }
func (s ClearToEndOfScreen) String() string       { return Render(s) }
func (s ClearToBeginningOfScreen) String() string { return Render(s) }
func (s ClearAllScreen) String() string           { return Render(s) }
func (s CursorVisibility) String() string         { return Render(s) }
func (s AbsoluteHorizontalMove) String() string   { return Render(s) }

// Render returns the escape sequence for s.
func Render(s Seq) string {
	return string(Append(nil, s))
}

// Append appends the escape sequences for all seqs to dst and returns the
// extended buffer.
func Append(dst []byte, seqs ...Seq) []byte {
	for _, s := range seqs {
		dst = appendSeq(dst, s)
	}
	return dst
}

// Fprint writes all seqs to w in a single write.
func Fprint(w io.Writer, seqs ...Seq) error {
	buf := Append(nil, seqs...)
	if len(buf) == 0 {
		return nil
	}
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return io.ErrShortWrite
	}
	return nil
}

const csi = "\x1b["

func appendSeq(dst []byte, s Seq) []byte {
	switch s := s.(type) {
	case Move:
		dst = appendMagnitude(dst, s.Up, 'A')
		dst = appendMagnitude(dst, s.Left, 'D')
		dst = appendMagnitude(dst, s.Down, 'B')
		dst = appendMagnitude(dst, s.Right, 'C')
	case MoveLines:
		dst = appendMagnitude(dst, s.Up, 'F')
		dst = appendMagnitude(dst, s.Down, 'E')
	case ResetStyle:
		dst = append(dst, csi+"0m"...)
	case Underline:
		dst = append(dst, csi+"4m"...)
	case ClearToEndOfLine:
		dst = append(dst, csi+"0K"...)
	case ClearToBeginningOfLine:
		dst = append(dst, csi+"1K"...)
	case ClearLine:
		dst = append(dst, csi+"2K"...)
	case ClearToEndOfScreen:
		dst = append(dst, csi+"0J"...)
	case ClearToBeginningOfScreen:
		dst = append(dst, csi+"1J"...)
	case ClearAllScreen:
		dst = append(dst, csi+"2J"...)
	case CursorVisibility:
		if s.Show {
			dst = append(dst, csi+"?25h"...)
		} else {
			dst = append(dst, csi+"?25l"...)
		}
	case AbsoluteHorizontalMove:
		dst = appendCode(dst, s.Column, 'G')
	case nil:
	default:
		panic(fmt.Sprintf("ansi: unknown sequence %T", s))
	}
	return dst
}

// appendMagnitude appends a parameterized code, or nothing if n is zero.
func appendMagnitude(dst []byte, n int, code byte) []byte {
	if n <= 0 {
		return dst
	}
	return appendCode(dst, n, code)
}

func appendCode(dst []byte, n int, code byte) []byte {
	dst = append(dst, csi...)
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, code)
}
