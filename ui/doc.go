// Package ui redraws console output in place.
//
// Operation
//
// A Body remembers how many characters every line of the last frame had.
// When the next frame is written, the cursor is moved back to the first
// column of the first row of the previous frame, the new lines are written
// over the old ones, and anything left below is cleared. Nothing is cleared
// before it is overwritten, so the output does not flicker.
//
// Terminal size
//
// Lines longer than the terminal wrap onto several rows. The terminal width
// is passed on every write, so a resized terminal is handled on the next
// frame, based on the line lengths of the previous one.
package ui
