//go:build arm64

package simd

import "os"

// detectArch implements the AArch64 branch: NEON is part of the
// ARMv8-A base architecture, so detection always yields LevelSSE4 (NEON is
// treated as a 128-bit peer of SSE4). Grounded on go-highway's
// dispatch_arm64.go, which makes the identical "ASIMD is always present on
// ARMv8+" observation.
func detectArch() Level {
	if noSIMDEnv(os.Getenv("HWY_NO_SIMD")) {
		return LevelScalar
	}
	return LevelSSE4
}
