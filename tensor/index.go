package tensor

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions
// after i, with the last axis stride always 1. A rank-0 shape yields an
// empty result.
func ComputeStrides(shape Shape) Strides {
	strides := make(Strides, len(shape))
	computeStridesInto(strides, shape)
	return strides
}

// computeStridesInto derives row-major strides into dst, which must have
// at least len(shape) elements. Shared by both metadata representations so
// the fixed-rank one stays allocation-free.
func computeStridesInto(dst, shape []int) {
	if len(shape) == 0 {
		return
	}
	dst[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		dst[i] = dst[i+1] * shape[i+1]
	}
}

// ComputeSize returns the product of all dimensions. The empty product is
// 1, giving scalar semantics for rank-0 shapes.
func ComputeSize[S ~[]int](shape S) int {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	return size
}

// FlattenIndex converts a multi-dimensional index into a flat buffer
// offset as the dot product of indices and strides. Both sequences must
// have equal length; the caller is responsible for length and bounds
// checking (this sits on the element-access hot path).
func FlattenIndex[S ~[]int](strides S, indices []int) int {
	flat := 0
	for i, idx := range indices {
		flat += idx * strides[i]
	}
	return flat
}

// UnflattenIndex converts a flat buffer offset back into a
// multi-dimensional index by repeated division.
//
// This is only a correct inverse of FlattenIndex for canonical row-major
// strides, where strides are non-increasing and each stride divides the
// running remainder. It must not be fed the strides of a permuted or
// sliced view; Metadata.Unflatten enforces that restriction.
func UnflattenIndex[S ~[]int](strides S, flatIndex int) []int {
	indices := make([]int, len(strides))
	for i := range strides {
		indices[i] = flatIndex / strides[i]
		flatIndex %= strides[i]
	}
	return indices
}

// isRowMajor reports whether strides match the canonical row-major
// strides for shape. This is the contiguity predicate: every view
// derivation recomputes its flag through it.
func isRowMajor(shape, strides []int) bool {
	if len(shape) != len(strides) {
		return false
	}
	expected := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if strides[i] != expected {
			return false
		}
		expected *= shape[i]
	}
	return true
}
