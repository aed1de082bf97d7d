// Copyright 2026 galleon-core Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import (
	"strconv"
	"strings"
	"sync"
)

// detectedLevel caches the result of the one-time architecture probe.
// nil means "not yet detected"; access is serialized by detectMu.
var (
	detectMu      sync.Mutex
	detectedLevel *Level
)

// detectOnce performs the architecture-gated probe described in the package
// docs: detectArch is implemented per-arch in detect_amd64.go /
// detect_arm64.go / detect_arm.go / detect_other.go, each returning the
// Level for its architecture. Unlike the build-tagged init-time pattern
// go-highway uses in its dispatch_<arch>.go files, it runs lazily on the
// first GetSIMDLevel call and again after ResetDetection.
var detectOnce = detectArch

// GetSIMDLevel returns the process-wide detected vector capability level,
// performing detection on first call. The result is cached; later calls are
// a single mutex-guarded read.
func GetSIMDLevel() Level {
	detectMu.Lock()
	defer detectMu.Unlock()
	if detectedLevel == nil {
		lvl := detectOnce()
		detectedLevel = &lvl
	}
	return *detectedLevel
}

// SetSIMDLevel overrides the cached detection result. Intended for tests and
// for embedding binaries that want to force a specific kernel set (e.g. to
// validate the scalar fallback path). Callers MUST invoke ReinitDispatch
// after calling this, or the dispatch table will keep serving kernels for
// the previously detected level.
func SetSIMDLevel(level Level) {
	detectMu.Lock()
	defer detectMu.Unlock()
	detectedLevel = &level
}

// ResetDetection clears the cached level so the next GetSIMDLevel call
// re-runs architecture detection. Intended for tests.
func ResetDetection() {
	detectMu.Lock()
	defer detectMu.Unlock()
	detectedLevel = nil
}

// LevelFromEnv parses a GALLEON_SIMD_LEVEL value (one of "scalar", "sse4",
// "avx2", "avx512", case-insensitive) into a Level; the caller reads the
// variable and passes its value in. It is never consulted by GetSIMDLevel
// itself (detection reads only HWY_NO_SIMD), so an embedding binary must
// call SetSIMDLevel(lvl) explicitly with the result. The bool return is
// false when the value is empty or unrecognized.
func LevelFromEnv(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "scalar":
		return LevelScalar, true
	case "sse4", "sse4.1", "sse":
		return LevelSSE4, true
	case "avx2":
		return LevelAVX2, true
	case "avx512":
		return LevelAVX512, true
	default:
		return LevelScalar, false
	}
}

// noSIMDEnv mirrors go-highway's HWY_NO_SIMD escape hatch, reusing its name
// for compatibility with collaborators that already set it.
func noSIMDEnv(raw string) bool {
	if raw == "" {
		return false
	}
	b, _ := strconv.ParseBool(raw)
	return b
}
