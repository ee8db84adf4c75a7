package streaming

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

func formatRange(start, end int64) string {
	return "bytes=" + strconv.FormatInt(start, 10) + "-" + strconv.FormatInt(end, 10)
}

func formatOpen(start int64) string {
	return "bytes=" + strconv.FormatInt(start, 10) + "-"
}

func formatSuffix(n int64) string {
	return "bytes=-" + strconv.FormatInt(n, 10)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// countingFS tracks how many handles are currently open.
type countingFS struct {
	mu     sync.Mutex
	open   int
	opened int
}

func (c *countingFS) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.open++
	c.opened++
	c.mu.Unlock()
	return &countedFile{File: f, fs: c}, nil
}

func (c *countingFS) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

type countedFile struct {
	*os.File
	fs   *countingFS
	once sync.Once
}

func (f *countedFile) Close() error {
	f.once.Do(func() {
		f.fs.mu.Lock()
		f.fs.open--
		f.fs.mu.Unlock()
	})
	return f.File.Close()
}

// patternFile writes size bytes where byte i is i%251 so any window can be checked.
func patternFile(t *testing.T, name string, size int) string {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// sparseFile creates a file of size bytes without writing them.
func sparseFile(t *testing.T, name string, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err = f.Truncate(size); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

type failingWriter struct {
	after int
	n     int
}

var errBrokenPipe = errors.New("broken pipe")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.after {
		return 0, errBrokenPipe
	}
	w.n += len(p)
	return len(p), nil
}
