//go:build !amd64 && !arm64 && !arm

package simd

// detectArch covers every other architecture: always scalar. Grounded on
// go-highway's dispatch_other.go, which makes the same unconditional choice
// for non-amd64/arm64 targets.
func detectArch() Level {
	return LevelScalar
}
