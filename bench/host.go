package bench

import (
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// HostInfo describes the machine a run executes on.
type HostInfo struct {
	OS        string
	Arch      string
	GoVersion string
	NumCPU    int
	Features  []string // SIMD/FMA flags relevant to dense kernels
}

// Host inspects the running process and CPU.
func Host() HostInfo {
	return HostInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Features:  cpuFeatures(),
	}
}

// MarshalZerologObject lets HostInfo be logged with Event.Object.
func (h HostInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("os", h.OS).
		Str("arch", h.Arch).
		Str("go", h.GoVersion).
		Int("cpus", h.NumCPU).
		Strs("features", h.Features)
}

func cpuFeatures() []string {
	var f []string
	add := func(ok bool, name string) {
		if ok {
			f = append(f, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasFP, "fp")
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}

	return f
}
