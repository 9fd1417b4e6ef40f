package cli

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLogger_level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, Verbose)

	l.Errorf("error %d\n", 1)
	l.Infof("info\n")
	l.Verbosef("verbose\n")
	l.Tracef("trace\n")

	// Strip delta time
	got := regexp.MustCompile(`(?m)^\d+\.\d{3} `).ReplaceAllString(buf.String(), "")
	want := "error 1\ninfo\nverbose\n"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}
}

func TestLogger_nil(t *testing.T) {
	var l *Logger
	l.Errorf("does not panic")
}

func TestLogLevel_String(t *testing.T) {
	tests := map[LogLevel]string{
		Error:       "Error",
		Info:        "Info",
		Verbose:     "Verbose",
		Trace:       "Trace",
		LogLevel(7): "LogLevel(7)",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestLogger_multiline(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, Error)

	l.Errorf("first\nsecond\n")

	if !regexp.MustCompile(`^\d+\.\d{3} first\n\d+\.\d{3} second\n$`).MatchString(buf.String()) {
		t.Errorf("Every line should be prefixed, got %q", buf.String())
	}
}
