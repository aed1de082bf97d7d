//go:build amd64

package simd

import (
	"os"

	"golang.org/x/sys/cpu"
)

// detectArch implements the x86-64 branch: AVX512F∧AVX512VL∧AVX512BW
// wins, then AVX2∧FMA, then SSE4.1, else scalar. Grounded on go-highway's
// dispatch_amd64.go, which gates the same golang.org/x/sys/cpu feature
// flags; this detector doesn't require a goexperiment.simd build to report
// the wider levels, since its kernels are plain Go rather than archsimd
// intrinsics.
func detectArch() Level {
	if noSIMDEnv(os.Getenv("HWY_NO_SIMD")) {
		return LevelScalar
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512BW:
		return LevelAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		return LevelAVX2
	case cpu.X86.HasSSE41:
		return LevelSSE4
	default:
		return LevelScalar
	}
}
