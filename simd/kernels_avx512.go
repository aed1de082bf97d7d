package simd

// avx512Unroll is the lane count of a 512-bit register holding 8-byte
// elements (float64/int64); 4-byte element kernels unroll twice as far.
const avx512Unroll = 8

func avx512Kernels() *Table {
	return &Table{
		Level: LevelAVX512,

		SumF32: func(d []float32) float32 { return sumGeneric(d, avx512Unroll*2) },
		SumF64: func(d []float64) float64 { return sumGeneric(d, avx512Unroll) },
		SumI32: func(d []int32) int32 { return sumGeneric(d, avx512Unroll*2) },
		SumI64: func(d []int64) int64 { return sumGeneric(d, avx512Unroll) },

		MinMaxF32: func(d []float32, isMax bool) (float32, bool) { return minMaxGeneric(d, isMax, avx512Unroll*2) },
		MinMaxF64: func(d []float64, isMax bool) (float64, bool) { return minMaxGeneric(d, isMax, avx512Unroll) },
		MinMaxI32: func(d []int32, isMax bool) (int32, bool) { return minMaxGeneric(d, isMax, avx512Unroll*2) },
		MinMaxI64: func(d []int64, isMax bool) (int64, bool) { return minMaxGeneric(d, isMax, avx512Unroll) },

		AddF64: func(a, b, o []float64) { elementwiseGeneric(a, b, o, binAdd, avx512Unroll) },
		SubF64: func(a, b, o []float64) { elementwiseGeneric(a, b, o, binSub, avx512Unroll) },
		MulF64: func(a, b, o []float64) { elementwiseGeneric(a, b, o, binMul, avx512Unroll) },
		DivF64: func(a, b, o []float64) { elementwiseGeneric(a, b, o, binDiv, avx512Unroll) },

		AddF32: func(a, b, o []float32) { elementwiseGeneric(a, b, o, binAdd, avx512Unroll*2) },
		SubF32: func(a, b, o []float32) { elementwiseGeneric(a, b, o, binSub, avx512Unroll*2) },
		MulF32: func(a, b, o []float32) { elementwiseGeneric(a, b, o, binMul, avx512Unroll*2) },
		DivF32: func(a, b, o []float32) { elementwiseGeneric(a, b, o, binDiv, avx512Unroll*2) },

		AddI64: func(a, b, o []int64) { elementwiseGeneric(a, b, o, binAdd, avx512Unroll) },
		SubI64: func(a, b, o []int64) { elementwiseGeneric(a, b, o, binSub, avx512Unroll) },
		MulI64: func(a, b, o []int64) { elementwiseGeneric(a, b, o, binMul, avx512Unroll) },

		AddI32: func(a, b, o []int32) { elementwiseGeneric(a, b, o, binAdd, avx512Unroll*2) },
		SubI32: func(a, b, o []int32) { elementwiseGeneric(a, b, o, binSub, avx512Unroll*2) },
		MulI32: func(a, b, o []int32) { elementwiseGeneric(a, b, o, binMul, avx512Unroll*2) },

		AddScalarF64: func(a []float64, s float64, o []float64) { scalarBinOpGeneric(a, s, o, binAdd, avx512Unroll) },
		MulScalarF64: func(a []float64, s float64, o []float64) { scalarBinOpGeneric(a, s, o, binMul, avx512Unroll) },
		AddScalarI64: func(a []int64, s int64, o []int64) { scalarBinOpGeneric(a, s, o, binAdd, avx512Unroll) },
		MulScalarI64: func(a []int64, s int64, o []int64) { scalarBinOpGeneric(a, s, o, binMul, avx512Unroll) },

		CompareF64: func(a, b []float64, op CompareOp, o []uint8) { compareGeneric(a, b, op, o, avx512Unroll) },
		CompareI64: func(a, b []int64, op CompareOp, o []uint8) { compareGeneric(a, b, op, o, avx512Unroll) },

		FilterF64: func(d []float64, t float64, op CompareOp) []int32 { return filterGeneric(d, t, op, avx512Unroll) },
		FilterI64: func(d []int64, t int64, op CompareOp) []int32 { return filterGeneric(d, t, op, avx512Unroll) },

		HashI64:       func(d []int64, o []uint64) { hashGeneric(d, o, avx512Unroll) },
		CombineHashes: CombineHashes,

		GatherF32: func(src []float32, idx []int32, o []float32) { gatherGeneric(src, idx, o, avx512Unroll*2) },
		GatherF64: func(src []float64, idx []int32, o []float64) { gatherGeneric(src, idx, o, avx512Unroll) },
		GatherI32: func(src []int32, idx []int32, o []int32) { gatherGeneric(src, idx, o, avx512Unroll*2) },
		GatherI64: func(src []int64, idx []int32, o []int64) { gatherGeneric(src, idx, o, avx512Unroll) },

		GroupAggF64: func(v []float64, g []int32, n int, sums, mins, maxs []float64, counts []int64) {
			groupAggGeneric(v, g, n, sums, mins, maxs, counts, avx512Unroll)
		},
		GroupAggI64: func(v []int64, g []int32, n int, sums, mins, maxs []int64, counts []int64) {
			groupAggGeneric(v, g, n, sums, mins, maxs, counts, avx512Unroll)
		},
	}
}
