package bench

import (
	"go.uber.org/zap"

	"github.com/celestiaorg/go-bitops/report"
	"github.com/celestiaorg/go-bitops/strategy"
)

// LinearityValue is the value Runner rotates in the linearity sweep.
const LinearityValue = 0x55555555

// Config configures a Runner. Zero values pick the defaults.
type Config struct {
	// Sets to time. Defaults to strategy.All().
	Sets []*strategy.Set
	// Writer receives the headers. Defaults to report.Discard().
	Writer *report.Writer
	// Marker brackets every timed region. Defaults to NopMarker.
	Marker Marker
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Iterations per case. Defaults to Iterations.
	Iterations int
	// SkipReflect leaves bit reflection out.
	SkipReflect bool
	// Linearity adds the rotate count sweep after the suites.
	Linearity bool
}

// Runner times every case of every Set.
type Runner struct {
	sets        []*strategy.Set
	w           *report.Writer
	m           Marker
	log         *zap.Logger
	n           int
	skipReflect bool
	linearity   bool
}

// New returns a Runner for cfg.
func New(cfg Config) *Runner {
	r := &Runner{
		sets:        cfg.Sets,
		w:           cfg.Writer,
		m:           cfg.Marker,
		log:         cfg.Logger,
		n:           cfg.Iterations,
		skipReflect: cfg.SkipReflect,
		linearity:   cfg.Linearity,
	}
	if r.sets == nil {
		r.sets = strategy.All()
	}
	if r.w == nil {
		r.w = report.Discard()
	}
	if r.m == nil {
		r.m = NopMarker{}
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.n <= 0 {
		r.n = Iterations
	}
	return r
}

// Run benchmarks every Set in order and returns the number of timed
// regions.
func (r *Runner) Run() int {
	r.log.Info("benchmark run started",
		zap.Int("sets", len(r.sets)),
		zap.Int("iterations", r.n),
	)
	var regions int
	for _, s := range r.sets {
		name := s.Label()
		r.w.Variant(name)
		cases := Suite(s, r.skipReflect)
		for _, c := range cases {
			Run(r.w, r.m, c.Name, r.n, c.Fn)
		}
		regions += len(cases)
		r.log.Debug("set timed", zap.String("variant", name), zap.Int("cases", len(cases)))
	}

	if r.linearity {
		for _, s := range r.sets {
			r.w.Rule()
			r.w.Benchmark("rotate_left_32 linearity/" + s.Label())
			Linearity(r.w, r.m, s, LinearityValue)
			regions += 2 * LinearityCounts
		}
	}

	r.log.Info("benchmark run finished", zap.Int("regions", regions))
	return regions
}
