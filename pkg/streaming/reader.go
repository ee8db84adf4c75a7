package streaming

import (
	"io"
	"os"
)

// windowReader owns one file handle and reads it forward from pos up to and
// including end.
type windowReader struct {
	f      File
	pos    int64
	end    int64
	closed bool
}

func (r *windowReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, os.ErrClosed
	}
	if r.pos > r.end {
		return 0, io.EOF
	}
	if remaining := r.end - r.pos + 1; int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := r.f.Read(p)
	r.pos += int64(n)
	if err == io.EOF {
		// File shrank underneath us
		if r.pos <= r.end {
			return n, io.ErrUnexpectedEOF
		}
		return n, nil
	}
	return n, err
}

func (r *windowReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.f.Close()
}
