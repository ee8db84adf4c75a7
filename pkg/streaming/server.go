package streaming

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/time/rate"
)

const copyBufferSize = 32 * 1024

var (
	// ErrNoContent is returned by Open for outcomes that have no body.
	ErrNoContent = errors.New("outcome has no content")
	// ErrClientGone is returned by Copy when the consumer stopped accepting bytes.
	ErrClientGone = errors.New("client went away")
)

// Server resolves files to response outcomes and streams their content. It
// keeps no state between requests, every Open acquires its own handle.
type Server struct {
	chunkSize int64
	rateLimit int
	fs        FS
}

func New(cfg Config) *Server {
	srv := Server{
		chunkSize: cfg.ChunkSize,
		rateLimit: cfg.RateLimit,
		fs:        cfg.FS,
	}
	if srv.chunkSize <= 0 {
		srv.chunkSize = DefaultChunkSize
	}
	if srv.fs == nil {
		srv.fs = osFS{}
	}
	return &srv
}

func (s *Server) ChunkSize() int64 {
	return s.chunkSize
}

// Resolve checks path exists and is readable right now and works out which
// response it should get for rangeHeader. Missing files and bad ranges are
// outcomes, only unexpected I/O failures are returned as errors.
func (s *Server) Resolve(path, rangeHeader string) (Outcome, error) {
	info, err := s.stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return NotFound{}, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return NotFound{}, nil
	}

	size := info.Size()
	contentType := ContentType(path)

	if rangeHeader == "" {
		return FullContent{Path: path, Size: size, ContentType: contentType}, nil
	}

	window, ok := ParseRange(rangeHeader, size, s.chunkSize)
	if !ok {
		return RangeNotSatisfiable{Size: size}, nil
	}
	return PartialContent{Window: window, Path: path, ContentType: contentType}, nil
}

func (s *Server) stat(path string) (os.FileInfo, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Stat()
}

// Open returns the body for a FullContent or PartialContent outcome. The
// caller must Close it, which releases the underlying file handle.
func (s *Server) Open(o Outcome) (io.ReadCloser, error) {
	switch o := o.(type) {
	case FullContent:
		f, err := s.fs.Open(o.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", o.Path, err)
		}
		return &windowReader{f: f, pos: 0, end: o.Size - 1}, nil
	case PartialContent:
		f, err := s.fs.Open(o.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", o.Path, err)
		}
		if _, err = f.Seek(o.Start, io.SeekStart); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to seek %s to %d: %w", o.Path, o.Start, err)
		}
		return &windowReader{f: f, pos: o.Start, end: o.End}, nil
	default:
		return nil, ErrNoContent
	}
}

// Copy writes body to w until it is exhausted, ctx is done or w fails. A
// failing writer or cancelled ctx is reported as ErrClientGone, read errors
// are returned wrapped.
func (s *Server) Copy(ctx context.Context, w io.Writer, body io.Reader) (int64, error) {
	bufSize := copyBufferSize
	var limiter *rate.Limiter
	if s.rateLimit > 0 {
		if s.rateLimit < bufSize {
			bufSize = s.rateLimit
		}
		limiter = rate.NewLimiter(rate.Limit(s.rateLimit), bufSize)
	}

	buf := make([]byte, bufSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, fmt.Errorf("%w: %v", ErrClientGone, err)
		}

		n, readErr := body.Read(buf)
		if n > 0 {
			if limiter != nil {
				if err := limiter.WaitN(ctx, n); err != nil {
					return written, fmt.Errorf("%w: %v", ErrClientGone, err)
				}
			}
			m, writeErr := w.Write(buf[:n])
			written += int64(m)
			if writeErr != nil {
				return written, fmt.Errorf("%w: %v", ErrClientGone, writeErr)
			}
			if m != n {
				return written, fmt.Errorf("%w: %v", ErrClientGone, io.ErrShortWrite)
			}
		}

		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("failed to read content: %w", readErr)
		}
	}
}
