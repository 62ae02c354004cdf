// Package harness cross-checks every strategy Set against the bitops
// reference. Each curated input is run through the reference and through
// the Set, the two results are compared for exact equality and one report
// line is written per comparison. A mismatch is counted, never fatal: a run
// always covers every input of every Set.
package harness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/celestiaorg/go-bitops"
	"github.com/celestiaorg/go-bitops/report"
	"github.com/celestiaorg/go-bitops/strategy"
)

// Config configures a Harness. Zero values pick the defaults.
type Config struct {
	// Sets under test. Defaults to strategy.All().
	Sets []*strategy.Set
	// Writer receives the report lines. Defaults to report.Discard().
	Writer *report.Writer
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// SkipReflect leaves bit reflection out of the run.
	SkipReflect bool
}

// Harness runs the differential comparison.
type Harness struct {
	sets        []*strategy.Set
	w           *report.Writer
	log         *zap.Logger
	skipReflect bool

	set   *strategy.Set
	tally Tally
}

// New returns a Harness for cfg.
func New(cfg Config) *Harness {
	h := &Harness{
		sets:        cfg.Sets,
		w:           cfg.Writer,
		log:         cfg.Logger,
		skipReflect: cfg.SkipReflect,
	}
	if h.sets == nil {
		h.sets = strategy.All()
	}
	if h.w == nil {
		h.w = report.Discard()
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h
}

// Run compares every Set against the reference and writes the aggregate
// line. The tally starts from zero on every call.
func (h *Harness) Run() Tally {
	h.tally = Tally{}
	h.log.Info("differential run started", zap.Int("sets", len(h.sets)))

	for _, s := range h.sets {
		h.set = s
		h.w.Variant(s.Label())
		before := h.tally

		h.testSwap()
		h.testCtzClzFfs()
		h.testPopCount()
		h.testRotate()
		h.testDiv()
		if !h.skipReflect {
			h.testReflect()
		}
		h.testStrctcmp()

		h.log.Debug("set checked",
			zap.String("variant", s.Label()),
			zap.Uint64("passed", h.tally.Passed-before.Passed),
			zap.Uint64("failed", h.tally.Failed-before.Failed),
		)
	}
	h.set = nil

	h.w.Total(h.tally.Passed, h.tally.Failed)
	h.log.Info("differential run finished",
		zap.Uint64("passed", h.tally.Passed),
		zap.Uint64("failed", h.tally.Failed),
	)
	return h.tally
}


// record folds one comparison into the tally and writes its report line.
func (h *Harness) record(ok bool, op, input, line string) {
	h.tally.Record(ok)
	h.w.Linef("%s: %s - %s", input, line, h.w.Verdict(ok))
	if !ok {
		h.log.Warn("mismatch",
			zap.String("variant", h.set.Label()),
			zap.String("op", op),
			zap.String("input", input),
			zap.String("detail", line),
		)
	}
}

func (h *Harness) testSwap() {
	for _, v := range swapVals8 {
		checkUnary(h, "swap", v, bitops.Swap, h.set.Swap, hexFormat[uint8]())
	}
	for _, v := range swapVals16 {
		checkUnary(h, "bswap_16", v, bitops.Bswap16, h.set.Bswap16, hexFormat[uint16]())
	}
	for _, v := range swapVals32 {
		checkUnary(h, "bswap_32", v, bitops.Bswap32, h.set.Bswap32, hexFormat[uint32]())
	}
}

func (h *Harness) testCtzClzFfs() {
	checkCounts(h, countVals8)
	checkCounts(h, countVals16)
	checkCounts(h, countVals32)
}

func (h *Harness) testPopCount() {
	checkPopCount(h, popCountVals8)
	checkPopCount(h, popCountVals16)
	checkPopCount(h, popCountVals32)
}

func (h *Harness) testRotate() {
	checkRotate(h, rotateVals8)
	checkRotate(h, rotateVals16)
	checkRotate(h, rotateVals32)
}

func (h *Harness) testReflect() {
	checkReflect(h, reflectVals8)
	checkReflect(h, reflectVals16)
	checkReflect(h, reflectVals32)
}

func (h *Harness) testDiv() {
	for _, v := range divS16Vals {
		want, got := bitops.DivS16(v.a, v.b), h.set.DivS16(v.a, v.b)
		ok := want == got && got.Reconstructs(v.a, v.b)
		h.record(ok, "div_s16", fmt.Sprintf("%d, %d", v.a, v.b), fmt.Sprintf(
			"div_s16_ref = { quot = %d, rem = %d }, div_s16 = { quot = %d, rem = %d }",
			want.Quot, want.Rem, got.Quot, got.Rem,
		))
	}
	for _, v := range divU16Vals {
		want, got := bitops.DivU16(v.a, v.b), h.set.DivU16(v.a, v.b)
		ok := want == got && got.Reconstructs(v.a, v.b)
		h.record(ok, "div_u16", fmt.Sprintf("%d, %d", v.a, v.b), fmt.Sprintf(
			"div_u16_ref = { quot = %d, rem = %d }, div_u16 = { quot = %d, rem = %d }",
			want.Quot, want.Rem, got.Quot, got.Rem,
		))
	}
	for _, v := range divU32Vals {
		want, got := bitops.DivU32(v.a, v.b), h.set.DivU32(v.a, v.b)
		ok := want == got && got.Reconstructs(v.a, v.b)
		h.record(ok, "div_u32", fmt.Sprintf("%d, %d", v.a, v.b), fmt.Sprintf(
			"div_u32_ref = { quot = %d, rem = %d }, div_u32 = { quot = %d, rem = %d }",
			want.Quot, want.Rem, got.Quot, got.Rem,
		))
	}
}

func (h *Harness) testStrctcmp() {
	for _, v := range strctcmpVals {
		want, got := bitops.Strctcmp(v.a, v.b), h.set.Strctcmp(v.a, v.b)
		// Only zero versus non-zero is defined.
		ok := (want == 0) == (got == 0)
		h.record(ok, "strctcmp", quote(v.a)+", "+quote(v.b), fmt.Sprintf(
			"strctcmp_ref = %d, strctcmp = %d", want, got,
		))
	}
}

func quote(s []byte) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", s)
}
