// Command bitops cross-checks the strategy implementations of the bit
// manipulation primitives against the reference and benchmarks them.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/celestiaorg/go-bitops/internal/config"
	"github.com/celestiaorg/go-bitops/report"
	"github.com/celestiaorg/go-bitops/strategy"
)

var errFailed = errors.New("differential test failed")

// app is the state shared by the commands of one invocation.
type app struct {
	out    io.Writer
	logger *zap.Logger
	cfg    *config.Config
	sets   []*strategy.Set
	env    environment

	// Flags
	configPath  string
	verbose     bool
	variants    []string
	noColor     bool
	iterations  int
	skipReflect bool
	linearity   bool
}

func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, logger: logger}
	root := &cobra.Command{
		Use:   "bitops",
		Short: "Cross-check and benchmark bit manipulation primitives",
		Long: `bitops runs every strategy implementation of the bit manipulation
primitives against the reference, one report line per comparison, and times
each of them on a fixed input.

The process exits with status 1 when any comparison fails.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML run configuration")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringSliceVar(&a.variants, "variant", nil, "presets to run, or all, default or custom")
	pf.BoolVar(&a.noColor, "no-color", false, "disable ANSI highlighting")
	pf.IntVarP(&a.iterations, "iterations", "n", 0, "calls per benchmark")
	pf.BoolVar(&a.skipReflect, "skip-reflect", false, "leave bit reflection out")
	pf.BoolVar(&a.linearity, "linearity", false, "add the rotate count sweep to benchmarks")

	root.AddCommand(a.testCmd(), a.benchCmd(), a.runCmd(), a.variantsCmd())
	return root
}

// setup loads the configuration, applies the flags over it, builds the
// logger and the selected Sets.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variants = a.variants
	}
	if flags.Changed("no-color") {
		cfg.Color = !a.noColor
	}
	if flags.Changed("iterations") {
		cfg.Iterations = a.iterations
	}
	if flags.Changed("skip-reflect") {
		cfg.SkipReflect = a.skipReflect
	}
	if flags.Changed("linearity") {
		cfg.Linearity = a.linearity
	}
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		lvl, _ := cfg.Level()
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}

	sets, err := cfg.Sets()
	if err != nil {
		return err
	}
	a.sets = sets

	a.env = detectEnvironment(a.logger)
	return nil
}

// withReport runs fn on a Writer over the buffered output and flushes it.
func (a *app) withReport(fn func(w *report.Writer) error) error {
	bw := bufio.NewWriter(a.out)
	w := report.New(bw, a.cfg.Color)
	runErr := fn(w)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := w.Err(); err != nil {
		return err
	}
	return runErr
}

func main() {
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
