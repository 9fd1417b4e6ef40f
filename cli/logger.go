package cli

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger writes levelled log lines prefixed with the time since the logger
// was created. Every line of a multi-line message is prefixed.
//
// A nil Logger discards all output.
type Logger struct {
	Level LogLevel
	start time.Time

	mu  sync.Mutex
	out *prefixWriter
}

//go:generate go run golang.org/x/tools/cmd/stringer -type LogLevel

// LogLevel controls which messages are written.
type LogLevel int

// Log levels, from least to most verbose.
const (
	Error LogLevel = iota
	Info
	Verbose
	Trace
)

// NewLogger creates a logger writing messages up to the given level to out.
func NewLogger(out io.Writer, level LogLevel) *Logger {
	return &Logger{
		Level: level,
		start: time.Now(),
		out:   &prefixWriter{out: out},
	}
}

func (l *Logger) deltaTime() []byte {
	d := time.Since(l.start)
	sec := int(d.Seconds())
	ms := int(d.Milliseconds()) % 1000
	return []byte(fmt.Sprintf("%d.%03d ", sec, ms))
}

// Logf writes a formatted message if level is enabled.
func (l *Logger) Logf(level LogLevel, format string, args ...interface{}) {
	if l == nil || l.out == nil || level > l.Level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.prefix = l.deltaTime()
	fmt.Fprintf(l.out, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{})   { l.Logf(Error, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})    { l.Logf(Info, format, args...) }
func (l *Logger) Verbosef(format string, args ...interface{}) { l.Logf(Verbose, format, args...) }
func (l *Logger) Tracef(format string, args ...interface{})   { l.Logf(Trace, format, args...) }
