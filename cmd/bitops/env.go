package main

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"go.uber.org/zap"

	"github.com/celestiaorg/go-bitops/strategy"
)

// environment describes the machine the run happens on.
type environment struct {
	System string
	Role   string
	Model  string
	Cores  int
	Mhz    float64
}

// Guest reports whether the process runs inside a virtual machine or
// container, where timings do not match bare metal.
func (e environment) Guest() bool {
	return e.Role == "guest"
}

// detectEnvironment probes the host. Probe failures leave the fields empty.
func detectEnvironment(logger *zap.Logger) environment {
	var env environment

	system, role, err := host.Virtualization()
	if err != nil {
		logger.Debug("virtualization probe failed", zap.Error(err))
	}
	env.System, env.Role = system, role

	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		logger.Debug("cpu probe failed", zap.Error(err))
	} else {
		env.Model, env.Mhz = infos[0].ModelName, infos[0].Mhz
	}
	if cores, err := cpu.Counts(true); err == nil {
		env.Cores = cores
	}

	logger.Info("host",
		zap.String("virtualization", env.System),
		zap.String("role", env.Role),
		zap.String("cpu", env.Model),
		zap.Int("cores", env.Cores),
		zap.Float64("mhz", env.Mhz),
		zap.Bool("hardware_bit_scan", strategy.HasHardwareBitScan()),
	)
	return env
}
