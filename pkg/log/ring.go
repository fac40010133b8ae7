package log

import (
	"strings"
	"sync"
)

const defaultRingSize = 200

// Ring is a fixed-size buffer of recent structured log lines. It backs the
// debug endpoint that exposes the last N entries without touching disk.
type Ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

var recent = NewRing(defaultRingSize)

// Recent returns the process-wide ring shared by all loggers.
func Recent() *Ring {
	return recent
}

func NewRing(size int) *Ring {
	if size <= 0 {
		size = defaultRingSize
	}
	return &Ring{lines: make([]string, size)}
}

// Write satisfies io.Writer; each call is one JSON log line.
func (r *Ring) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	if line == "" {
		return len(p), nil
	}

	r.mu.Lock()
	r.lines[r.next] = line
	r.next = (r.next + 1) % len(r.lines)
	if r.next == 0 {
		r.full = true
	}
	r.mu.Unlock()

	return len(p), nil
}

// Entries returns the buffered lines in arrival order, oldest first.
func (r *Ring) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	if r.full {
		out = append(out, r.lines[r.next:]...)
	}
	out = append(out, r.lines[:r.next]...)

	// Drop never-written slots when the ring has not wrapped yet.
	result := make([]string, 0, len(out))
	for _, l := range out {
		if l != "" {
			result = append(result, l)
		}
	}
	return result
}
