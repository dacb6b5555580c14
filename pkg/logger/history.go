package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// maxHistoryBytes bounds the in-memory buffer when Flush keeps failing.
const maxHistoryBytes = 4 << 20

// History is an io.Writer that keeps log lines in memory until Flush appends
// them to a file. An empty path keeps nothing.
type History struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	path string
}

// NewHistory creates a History flushing to path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Write buffers p. It never fails so that it can sit behind a MultiLevelWriter.
func (h *History) Write(p []byte) (int, error) {
	if h.path == "" {
		return len(p), nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.buf.Len()+len(p) > maxHistoryBytes {
		h.buf.Reset()
	}
	h.buf.Write(p)
	return len(p), nil
}

// Len returns the number of buffered bytes.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Len()
}

// Flush appends the buffered lines to the history file and clears the buffer.
// On failure the lines stay buffered for the next attempt.
func (h *History) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.path == "" || h.buf.Len() == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("creating log history directory: %w", err)
	}
	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log history: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(h.buf.Bytes()); err != nil {
		return fmt.Errorf("writing log history: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing log history: %w", err)
	}
	h.buf.Reset()
	return nil
}
