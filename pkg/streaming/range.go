package streaming

import (
	"fmt"
	"strconv"
	"strings"
)

const rangePrefix = "bytes="

// Window is an inclusive byte range of a file of Size bytes.
type Window struct {
	Start int64
	End   int64
	Size  int64
}

func (w Window) Length() int64 {
	return w.End - w.Start + 1
}

func (w Window) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", w.Start, w.End, w.Size)
}

func (w Window) valid() bool {
	return w.Start >= 0 && w.Start < w.Size && w.End >= w.Start && w.End < w.Size
}

// ParseRange resolves a single "bytes=" range against a file of size bytes.
// Open ended and explicit ranges are capped at chunkSize bytes. The bool is
// false when the header is malformed or the window is not satisfiable.
func ParseRange(header string, size, chunkSize int64) (Window, bool) {
	if !strings.HasPrefix(header, rangePrefix) {
		return Window{}, false
	}
	ranges := strings.TrimPrefix(header, rangePrefix)
	parts := strings.SplitN(ranges, "-", 2)

	var start, end int64
	switch {
	case strings.HasPrefix(ranges, "-"):
		suffix, ok := parseOffset(parts[1])
		if !ok {
			return Window{}, false
		}
		start = size - suffix
		end = size - 1
	case len(parts) == 1 || parts[1] == "":
		var ok bool
		if start, ok = parseOffset(parts[0]); !ok {
			return Window{}, false
		}
		end = capEnd(start, size-1, chunkSize)
	default:
		var ok bool
		if start, ok = parseOffset(parts[0]); !ok {
			return Window{}, false
		}
		last, ok := parseOffset(parts[1])
		if !ok {
			return Window{}, false
		}
		end = capEnd(start, last, chunkSize)
	}

	if end > size-1 {
		end = size - 1
	}

	w := Window{Start: start, End: end, Size: size}
	return w, w.valid()
}

// capEnd returns min(end, start+chunkSize-1) without overflowing on huge offsets.
func capEnd(start, end, chunkSize int64) int64 {
	if end-start >= chunkSize {
		return start + chunkSize - 1
	}
	return end
}

// parseOffset only accepts plain decimal digits, so signs, spaces and
// multi-range lists are all rejected.
func parseOffset(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
