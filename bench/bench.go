// Package bench times the bitops reference and every strategy Set on one
// fixed input per operation. It produces a relative cost signal only: results
// are never checked. A timed region holds the closure call, the call through
// the Set's function field for variants, and the operation itself.
package bench

import (
	"time"

	"github.com/celestiaorg/go-bitops/report"
)

// Iterations is the number of calls in one timed region.
const Iterations = 10000

// Marker brackets a timed region. The timing mechanism is up to the
// implementation: a host clock, a GPIO toggle, a trace event.
type Marker interface {
	MarkStart()
	MarkEnd()
}

// Labeler is implemented by markers that want to know what the next region
// times and how many calls it makes.
type Labeler interface {
	Label(name string, n int)
}

// Run writes the BENCHMARK header for name and calls fn exactly n times
// between MarkStart and MarkEnd.
func Run(w *report.Writer, m Marker, name string, n int, fn func()) {
	w.Benchmark(name)
	timed(m, name, n, fn)
}

func timed(m Marker, name string, n int, fn func()) {
	if l, ok := m.(Labeler); ok {
		l.Label(name, n)
	}
	m.MarkStart()
	defer m.MarkEnd()
	for ; n > 0; n-- {
		fn()
	}
}

// NopMarker does nothing.
type NopMarker struct{}

func (NopMarker) MarkStart() {}
func (NopMarker) MarkEnd()   {}

// Sample is the measurement of one timed region.
type Sample struct {
	Name    string
	N       int
	Elapsed time.Duration
}

// PerOp is the mean duration of one call.
func (s Sample) PerOp() time.Duration {
	if s.N == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.N)
}

// Stopwatch is a Marker on the host monotonic clock. It keeps one Sample per
// region.
type Stopwatch struct {
	now func() time.Time

	name    string
	n       int
	start   time.Time
	running bool
	samples []Sample
}

// NewStopwatch returns a Stopwatch using time.Now.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Label names the next region.
func (s *Stopwatch) Label(name string, n int) {
	s.name, s.n = name, n
}

// MarkStart starts the clock.
func (s *Stopwatch) MarkStart() {
	s.running = true
	s.start = s.now()
}

// MarkEnd stops the clock and records the sample. It is a no-op when the
// clock is not running.
func (s *Stopwatch) MarkEnd() {
	if !s.running {
		return
	}
	elapsed := s.now().Sub(s.start)
	s.running = false
	s.samples = append(s.samples, Sample{Name: s.name, N: s.n, Elapsed: elapsed})
	s.name, s.n = "", 0
}

// Samples returns the recorded samples in order.
func (s *Stopwatch) Samples() []Sample {
	return s.samples
}

// Reset drops every recorded sample.
func (s *Stopwatch) Reset() {
	s.samples = nil
	s.running = false
}
