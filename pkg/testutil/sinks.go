package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// ProgressRecorder is a types.ProgressSink that keeps every update
type ProgressRecorder struct {
	mu     sync.Mutex
	Values []int64
	Max    int64
}

// SetProgress implements types.ProgressSink
func (p *ProgressRecorder) SetProgress(value, max int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Values = append(p.Values, value)
	p.Max = max
}

// Last returns the most recent value, or -1 if nothing was recorded
func (p *ProgressRecorder) Last() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Values) == 0 {
		return -1
	}
	return p.Values[len(p.Values)-1]
}

// Monotonic reports whether the recorded values never decreased
func (p *ProgressRecorder) Monotonic() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 1; i < len(p.Values); i++ {
		if p.Values[i] < p.Values[i-1] {
			return false
		}
	}
	return true
}

// LogRecorder is a types.LogSink that keeps every line
type LogRecorder struct {
	mu    sync.Mutex
	Lines []string
}

// Logf implements types.LogSink
func (l *LogRecorder) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, fmt.Sprintf(format, args...))
}

// Contains reports whether any line contains substr
func (l *LogRecorder) Contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// StaticConfirm answers every confirmation with Answer and counts calls
type StaticConfirm struct {
	Answer bool
	Err    error
	Calls  int
}

// Confirm implements types.ConfirmationGate
func (c *StaticConfirm) Confirm(title, message string) (bool, error) {
	c.Calls++
	return c.Answer, c.Err
}

// RevealRecorder is a types.RevealRequester that records requested paths
type RevealRecorder struct {
	Paths []string
	Err   error
}

// Reveal implements types.RevealRequester
func (r *RevealRecorder) Reveal(path string) error {
	r.Paths = append(r.Paths, path)
	return r.Err
}
