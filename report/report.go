// Package report writes the human-readable result lines of the test and
// benchmark harnesses to a character sink, one byte at a time.
package report

import (
	"fmt"
	"io"
)

const (
	// Rule separates sections of a run.
	Rule = "----------------------------------------"

	passText      = "PASS"
	failText      = "FAIL"
	benchmarkText = "BENCHMARK"
)

// ANSI escape sequences used when highlighting is on.
const (
	ansiBold   = "\x1B[1m"
	ansiRed    = "\x1B[31m"
	ansiGreen  = "\x1B[32m"
	ansiYellow = "\x1B[33m"
	ansiReset  = "\x1B[0m"
)

// SinkFunc adapts a put-character function to io.ByteWriter.
type SinkFunc func(c byte) error

// WriteByte calls f(c).
func (f SinkFunc) WriteByte(c byte) error {
	return f(c)
}

// Writer formats report lines onto a sink. Write failures do not stop the
// writer; the first one is kept and returned by Err.
type Writer struct {
	sink  io.ByteWriter
	color bool
	err   error
}

// New returns a Writer on sink. With color set, PASS, FAIL and BENCHMARK
// are highlighted with ANSI escapes.
func New(sink io.ByteWriter, color bool) *Writer {
	return &Writer{sink: sink, color: color}
}

// Discard is a Writer that drops everything.
func Discard() *Writer {
	return New(SinkFunc(func(byte) error { return nil }), false)
}

// Err returns the first error the sink reported, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) put(s string) {
	for i := 0; i < len(s); i++ {
		if err := w.sink.WriteByte(s[i]); err != nil && w.err == nil {
			w.err = fmt.Errorf("report: sink: %w", err)
		}
	}
}

// Linef writes one formatted, newline-terminated line.
func (w *Writer) Linef(format string, args ...any) {
	w.put(fmt.Sprintf(format, args...))
	w.put("\n")
}

// Rule writes the section separator.
func (w *Writer) Rule() {
	w.Linef("%s", Rule)
}

// Verdict returns the PASS or FAIL marker for ok.
func (w *Writer) Verdict(ok bool) string {
	if ok {
		return w.highlight(ansiGreen, passText)
	}
	return w.highlight(ansiRed, failText)
}

// Benchmark writes the header line that precedes a timed region.
func (w *Writer) Benchmark(name string) {
	w.Linef("%s: %s", w.highlight(ansiYellow, benchmarkText), name)
}

// Variant writes the header line that precedes the checks of one set.
func (w *Writer) Variant(name string) {
	w.Linef("VARIANT: %s", name)
}

// Total writes the aggregate result line.
func (w *Writer) Total(passed, failed uint64) {
	w.Linef("TOTAL RESULTS: passed = %d, failed = %d", passed, failed)
}

func (w *Writer) highlight(code, text string) string {
	if !w.color {
		return text
	}
	return ansiBold + code + text + ansiReset
}
