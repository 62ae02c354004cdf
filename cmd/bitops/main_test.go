package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/celestiaorg/go-bitops/internal/config"
	"github.com/celestiaorg/go-bitops/strategy"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, zap.NewNop())
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTestCommand(t *testing.T) {
	out, err := execute(t, "test", "--variant", "native", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "----------------------------------------", lines[0])
	assert.Equal(t, "VARIANT: native", lines[1])
	assert.Equal(t, "TOTAL RESULTS: passed = 963, failed = 0", lines[len(lines)-2])
	assert.NotContains(t, out, "\x1B[")
}

func TestTestCommandColor(t *testing.T) {
	out, err := execute(t, "test", "--variant", "loop")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1B[1m\x1B[32mPASS\x1B[0m")
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--variant", "lut-large", "-n", "3", "--no-color", "--skip-reflect")
	require.NoError(t, err)

	assert.Equal(t, 48, strings.Count(out, "BENCHMARK: "))
	assert.Contains(t, out, "BENCHMARK: div_u32/native\n")
	assert.NotContains(t, out, "reflect_32")
	assert.Contains(t, out, "ctz_8/lut-large: n = 3, elapsed = ")
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--variant", "unrolled", "-n", "1", "--no-color", "--linearity")
	require.NoError(t, err)

	total := strings.Index(out, "TOTAL RESULTS: passed = 963, failed = 0")
	first := strings.Index(out, "BENCHMARK: swap_ref")
	require.NotEqual(t, -1, total)
	require.NotEqual(t, -1, first)
	assert.Less(t, total, first)
	assert.Contains(t, out, "BENCHMARK: rotate_left_32 linearity/unrolled\n")
	assert.Contains(t, out, "rotate_left_32/loop/34: n = 1")
}

func TestVariantsCommand(t *testing.T) {
	out, err := execute(t, "variants")
	require.NoError(t, err)
	for _, name := range strategy.PresetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, strategy.DefaultPreset()+" (default)")
	assert.Contains(t, out, "hardware bit scan=")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bitops.yaml")
	cfg := config.DefaultConfig()
	cfg.Variants = []string{config.Custom}
	cfg.Custom = &strategy.Selection{
		Swap: strategy.Native, PopCount: strategy.Loop, Ctz: strategy.LargeLUT,
		Clz: strategy.Unrolled, Rotate: strategy.Native, Reflect: strategy.Transpose,
		Div: strategy.ShiftSubtract,
	}
	cfg.Color = false
	cfg.SkipReflect = true
	require.NoError(t, cfg.Save(path))

	out, err := execute(t, "test", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "VARIANT: custom\n"))
	assert.NotContains(t, out, "reflect_8")

	// Flags win over the file.
	out, err = execute(t, "test", "--config", path, "--variant", "loop")
	require.NoError(t, err)
	assert.Contains(t, out, "VARIANT: loop\n")
	assert.NotContains(t, out, "VARIANT: custom\n")
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "test", "--variant", "turbo")
	assert.ErrorIs(t, err, strategy.ErrUnknownPreset)

	_, err = execute(t, "bench", "-n", "0")
	assert.ErrorIs(t, err, config.ErrIterations)

	_, err = execute(t, "test", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "test", "extra")
	assert.Error(t, err)
}

func TestEnvironmentGuest(t *testing.T) {
	assert.True(t, environment{Role: "guest"}.Guest())
	assert.False(t, environment{Role: "host"}.Guest())
	assert.False(t, environment{}.Guest())
}
