package main

import (
	"bytes"
	"io"
)

// CRLFWriter is an adapter that terminates every line with \r\n.
type CRLFWriter struct {
	Out io.Writer
}

func (w CRLFWriter) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			m, err := w.Out.Write(p)
			return n + m, err
		}

		line := p[:i]
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}

		if _, err := w.Out.Write(line); err != nil {
			return n, err
		}
		if _, err := w.Out.Write([]byte("\r\n")); err != nil {
			return n, err
		}

		// Report what the caller handed us, not what went out.
		n += i + 1
		p = p[i+1:]
	}

	return n, nil
}
