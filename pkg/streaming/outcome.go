package streaming

import (
	"net/http"
	"strconv"
)

// Outcome is the result of resolving a file and an optional Range header.
// It is one of NotFound, FullContent, PartialContent or RangeNotSatisfiable.
type Outcome interface {
	StatusCode() int
	Header() http.Header
	isOutcome()
}

type NotFound struct{}

func (NotFound) StatusCode() int     { return http.StatusNotFound }
func (NotFound) Header() http.Header { return http.Header{} }
func (NotFound) isOutcome()          {}

type FullContent struct {
	Path        string
	Size        int64
	ContentType string
}

func (FullContent) StatusCode() int { return http.StatusOK }

func (o FullContent) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Type", o.ContentType)
	h.Set("Content-Length", strconv.FormatInt(o.Size, 10))
	h.Set("Accept-Ranges", "bytes")
	return h
}

func (FullContent) isOutcome() {}

type PartialContent struct {
	Window
	Path        string
	ContentType string
}

func (PartialContent) StatusCode() int { return http.StatusPartialContent }

func (o PartialContent) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Type", o.ContentType)
	h.Set("Content-Length", strconv.FormatInt(o.Length(), 10))
	h.Set("Content-Range", o.ContentRange())
	h.Set("Accept-Ranges", "bytes")
	return h
}

func (PartialContent) isOutcome() {}

type RangeNotSatisfiable struct {
	Size int64
}

func (RangeNotSatisfiable) StatusCode() int { return http.StatusRequestedRangeNotSatisfiable }

func (o RangeNotSatisfiable) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Range", "bytes */"+strconv.FormatInt(o.Size, 10))
	h.Set("Accept-Ranges", "bytes")
	return h
}

func (RangeNotSatisfiable) isOutcome() {}

// Name is a short label for logs and metrics.
func Name(o Outcome) string {
	switch o.(type) {
	case NotFound:
		return "not_found"
	case FullContent:
		return "full"
	case PartialContent:
		return "partial"
	case RangeNotSatisfiable:
		return "not_satisfiable"
	default:
		return "unknown"
	}
}
