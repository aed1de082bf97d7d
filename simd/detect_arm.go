//go:build arm

package simd

import (
	"os"

	"golang.org/x/sys/cpu"
)

// detectArch implements the 32-bit ARM branch: NEON present yields
// LevelSSE4, otherwise LevelScalar.
func detectArch() Level {
	if noSIMDEnv(os.Getenv("HWY_NO_SIMD")) {
		return LevelScalar
	}
	if cpu.ARM.HasNEON {
		return LevelSSE4
	}
	return LevelScalar
}
