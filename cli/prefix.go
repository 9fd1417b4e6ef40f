package cli

import (
	"bytes"
	"io"
)

// prefixWriter writes every line to the output with a prefix. Each call to
// Write is flushed as a whole, so lines of a single message are never
// interleaved with other writes to the output.
type prefixWriter struct {
	out    io.Writer
	prefix []byte

	buf bytes.Buffer
}

// Write prefixes every line in p separated by \n. The output never ends with
// only the prefix.
func (pw *prefixWriter) Write(p []byte) (int, error) {
	pw.buf.Reset()
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n') + 1
		if i == 0 {
			i = len(p)
		}
		pw.buf.Write(pw.prefix)
		pw.buf.Write(p[:i])
		p = p[i:]
	}
	if _, err := pw.buf.WriteTo(pw.out); err != nil {
		return 0, err
	}
	return n, nil
}
