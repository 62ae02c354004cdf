package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/celestiaorg/go-bitops/bench"
	"github.com/celestiaorg/go-bitops/harness"
	"github.com/celestiaorg/go-bitops/report"
	"github.com/celestiaorg/go-bitops/strategy"
)

func (a *app) testCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Compare every selected Set against the reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReport(a.differential)
		},
	}
}

func (a *app) benchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time the reference and every selected Set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReport(a.benchmark)
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the differential test, then the benchmarks",
		Long: `run performs the differential test and then the benchmarks. The
benchmarks run even when comparisons failed; the exit status still reports
the failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReport(func(w *report.Writer) error {
				testErr := a.differential(w)
				if err := a.benchmark(w); err != nil {
					return err
				}
				return testErr
			})
		},
	}
}

func (a *app) variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the presets, their selections and the CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listVariants()
		},
	}
}

func (a *app) differential(w *report.Writer) error {
	w.Rule()
	tally := harness.New(harness.Config{
		Sets:        a.sets,
		Writer:      w,
		Logger:      a.logger,
		SkipReflect: a.cfg.SkipReflect,
	}).Run()
	w.Rule()
	if !tally.OK() {
		return fmt.Errorf("%w: %d of %d comparisons", errFailed, tally.Failed, tally.Total())
	}
	return nil
}

func (a *app) benchmark(w *report.Writer) error {
	if a.env.Guest() {
		a.logger.Warn("running as a virtualization guest; timings are not comparable with bare metal",
			zap.String("virtualization", a.env.System))
	}

	sw := bench.NewStopwatch()
	bench.New(bench.Config{
		Sets:        a.sets,
		Writer:      w,
		Marker:      sw,
		Logger:      a.logger,
		Iterations:  a.cfg.Iterations,
		SkipReflect: a.cfg.SkipReflect,
		Linearity:   a.cfg.Linearity,
	}).Run()
	w.Rule()

	for _, s := range sw.Samples() {
		w.Linef("%s: n = %d, elapsed = %s, per call = %s", s.Name, s.N, s.Elapsed, s.PerOp())
		a.logger.Debug("sample",
			zap.String("name", s.Name),
			zap.Int("n", s.N),
			zap.Duration("elapsed", s.Elapsed),
		)
	}
	w.Rule()
	return nil
}

func (a *app) listVariants() error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tSWAP\tPOP_COUNT\tCTZ\tCLZ\tROTATE\tREFLECT\tDIV\t")
	def := strategy.DefaultPreset()
	for _, name := range strategy.PresetNames() {
		s, err := strategy.Preset(name)
		if err != nil {
			return err
		}
		label := name
		if name == def {
			label += " (default)"
		}
		sel := s.Selection
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			label, sel.Swap, sel.PopCount, sel.Ctz, sel.Clz, sel.Rotate, sel.Reflect, sel.Div)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\ncpu: x86 popcnt=%t bmi1=%t, arm64 asimd=%t, hardware bit scan=%t\n",
		cpu.X86.HasPOPCNT, cpu.X86.HasBMI1, cpu.ARM64.HasASIMD, strategy.HasHardwareBitScan())
	if a.env.Model != "" {
		fmt.Fprintf(a.out, "host: %s, %d cores\n", a.env.Model, a.env.Cores)
	}
	return nil
}
