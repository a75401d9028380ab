// Package sysinfo describes the machine a benchmark run executed on.
package sysinfo

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"benchgate/internal/report"
)

// FallbackCPU stands in when the host exposes no readable CPU model,
// which is the common case on hosted CI runners.
const FallbackCPU = "GitHub Actions Runner"

// CPUModel returns the model name of the first CPU, or FallbackCPU when
// the probe fails or comes back blank.
func CPUModel() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return FallbackCPU
	}
	model := strings.TrimSpace(infos[0].ModelName)
	if model == "" {
		return FallbackCPU
	}
	return model
}

// Env assembles the benchstat environment header for the current host.
func Env(pkg string) report.BenchstatEnv {
	return report.BenchstatEnv{
		Goos:   runtime.GOOS,
		Goarch: runtime.GOARCH,
		Pkg:    pkg,
		CPU:    CPUModel(),
	}
}
