// Package progress tracks byte-granular progress for install and uninstall.
//
// A State has a single writer (the running operation) and any number of
// readers. Processed never decreases and never exceeds Total. Every change
// is pushed synchronously to the attached sink, and readers on other
// goroutines may poll Processed/Total/Percent at any time.
package progress

import (
	"sync/atomic"

	"github.com/arthur-debert/ddlcmod/pkg/types"
)

// Mode selects what the sink receives.
type Mode int

const (
	// Bytes reports processed bytes against the byte total
	Bytes Mode = iota
	// Percent reports a 0-100 percentage
	Percent
)

// State is the shared progress counter for one operation.
type State struct {
	processed atomic.Int64
	total     atomic.Int64
	done      atomic.Bool
	mode      Mode
	sink      types.ProgressSink
	// lastSent keeps updates from going backwards
	lastSent atomic.Int64
}

// New creates a state reporting to sink in the given mode. A nil sink
// discards updates.
func New(sink types.ProgressSink, mode Mode) *State {
	if sink == nil {
		sink = types.NopProgress{}
	}
	s := &State{mode: mode, sink: sink}
	s.lastSent.Store(-1)
	return s
}

// Reset fixes the denominator and zeroes the counter. Call it once, before
// the first unit of work.
func (s *State) Reset(total int64) {
	if total < 0 {
		total = 0
	}
	s.total.Store(total)
	s.processed.Store(0)
	s.done.Store(false)
	s.lastSent.Store(-1)
	s.notify()
}

// Add advances the counter by n bytes, clamped to the total.
func (s *State) Add(n int64) {
	if n <= 0 {
		return
	}
	next := s.processed.Load() + n
	if total := s.total.Load(); next > total {
		next = total
	}
	s.processed.Store(next)
	s.notify()
}

// Complete moves the counter to the total. Called once an operation
// reports success, so the final state always equals the total.
func (s *State) Complete() {
	s.processed.Store(s.total.Load())
	s.done.Store(true)
	s.notify()
}

// Processed returns the bytes processed so far
func (s *State) Processed() int64 { return s.processed.Load() }

// Total returns the byte total fixed by Reset
func (s *State) Total() int64 { return s.total.Load() }

// Done reports whether Complete has been called since the last Reset
func (s *State) Done() bool { return s.done.Load() }

// Percent returns progress as 0-100.
func (s *State) Percent() int64 {
	if s.done.Load() {
		return 100
	}
	total := s.total.Load()
	if total == 0 {
		return 0
	}
	pct := s.processed.Load() * 100 / total
	if pct > 100 {
		pct = 100
	}
	return pct
}

func (s *State) notify() {
	value, max := s.processed.Load(), s.total.Load()
	if s.mode == Percent {
		value, max = s.Percent(), 100
	}
	if value < s.lastSent.Load() {
		return
	}
	s.lastSent.Store(value)
	s.sink.SetProgress(value, max)
}
