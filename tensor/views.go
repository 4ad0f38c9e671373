package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors for view derivation. Precondition violations are
// reported synchronously to the caller and wrap one of these, so callers
// can branch with errors.Is without parsing messages.
var (
	// ErrInvalidArgument reports a view request whose arguments do not
	// match the source metadata (wrong rank, size mismatch, bad axis).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports slice bounds outside the source shape.
	ErrOutOfRange = errors.New("out of range")
)

// Slice derives the view covering [starts[i], ends[i]) along every axis.
//
// Both index vectors must have length equal to the source rank, and each
// axis requires 0 <= start < end <= shape[axis]. The element spacing
// along a retained axis does not change when its extent shrinks, so
// strides carry over unchanged; the origin moves forward in the buffer by
// the sum of start[i]*strides[i].
func Slice(m Meta, starts, ends []int) (Metadata, error) {
	shape := m.Shape()
	strides := m.Strides()
	if len(starts) != len(shape) || len(ends) != len(shape) {
		return Metadata{}, fmt.Errorf("Slice: start/end indices must match rank %d, got %d and %d: %w",
			len(shape), len(starts), len(ends), ErrInvalidArgument)
	}

	newShape := make(Shape, len(shape))
	newStrides := make(Strides, len(shape))
	offset := m.Offset()
	for i := range shape {
		if starts[i] < 0 || starts[i] >= ends[i] || starts[i] >= shape[i] || ends[i] > shape[i] {
			return Metadata{}, fmt.Errorf("Slice: bounds [%d, %d) invalid for axis %d with size %d: %w",
				starts[i], ends[i], i, shape[i], ErrOutOfRange)
		}
		newShape[i] = ends[i] - starts[i]
		newStrides[i] = strides[i]
		offset += starts[i] * strides[i]
	}

	return newMetadataOwned(newShape, newStrides, offset), nil
}

// Reshape derives a view of newShape over the same elements.
//
// The new shape must address exactly TotalSize() elements, and the source
// must be contiguous: the result gets canonical row-major strides for
// newShape, which only preserves element addressing when the source
// elements are already laid out row-major. Strided views need a
// materializing copy first, which is the storage layer's business.
func Reshape(m Meta, newShape Shape) (Metadata, error) {
	newSize := ComputeSize(newShape)
	if newSize != m.TotalSize() {
		return Metadata{}, fmt.Errorf("Reshape: shape %v has %d elements, want %d: %w",
			newShape, newSize, m.TotalSize(), ErrInvalidArgument)
	}
	if !m.IsContiguous() {
		return Metadata{}, fmt.Errorf("Reshape: source with strides %v is not contiguous: %w",
			m.Strides(), ErrInvalidArgument)
	}

	shape := newShape.Clone()
	return newMetadataOwned(shape, ComputeStrides(shape), m.Offset()), nil
}

// Permute derives a view with axes reordered.
//
// With an empty permutation the axis order is reversed (the standard
// transpose). An explicit permutation must be a bijection over
// [0, rank): same length as the rank, every axis in range, no
// duplicates. Output axis i takes shape[perm[i]] and strides[perm[i]].
// The offset is unchanged, since reordering axes does not move the
// view's origin.
func Permute(m Meta, permutation []int) (Metadata, error) {
	shape := m.Shape()
	strides := m.Strides()
	rank := len(shape)

	newShape := make(Shape, rank)
	newStrides := make(Strides, rank)

	if len(permutation) == 0 {
		for i := 0; i < rank; i++ {
			newShape[i] = shape[rank-1-i]
			newStrides[i] = strides[rank-1-i]
		}
		return newMetadataOwned(newShape, newStrides, m.Offset()), nil
	}

	if len(permutation) != rank {
		return Metadata{}, fmt.Errorf("Permute: permutation length %d must match rank %d: %w",
			len(permutation), rank, ErrInvalidArgument)
	}
	seen := make([]bool, rank)
	for _, axis := range permutation {
		if axis < 0 || axis >= rank {
			return Metadata{}, fmt.Errorf("Permute: axis %d out of range [0, %d): %w",
				axis, rank, ErrInvalidArgument)
		}
		if seen[axis] {
			return Metadata{}, fmt.Errorf("Permute: duplicate axis %d: %w", axis, ErrInvalidArgument)
		}
		seen[axis] = true
	}

	for i, axis := range permutation {
		newShape[i] = shape[axis]
		newStrides[i] = strides[axis]
	}
	return newMetadataOwned(newShape, newStrides, m.Offset()), nil
}

// Transpose derives the view with all axes reversed. It is Permute with
// no explicit permutation, and is self-inverse.
func Transpose(m Meta) (Metadata, error) {
	return Permute(m, nil)
}

// Squeeze derives a view with extent-1 axes removed.
//
// With explicit axes, every axis must be in range and have extent 1.
// With no axes, all extent-1 axes are removed. Strides of retained axes
// carry over, so a strided input keeps addressing the same elements; a
// rank-0 result is valid and denotes a scalar view.
func Squeeze(m Meta, axes []int) (Metadata, error) {
	shape := m.Shape()
	strides := m.Strides()

	drop := make([]bool, len(shape))
	if len(axes) == 0 {
		for i, dim := range shape {
			if dim == 1 {
				drop[i] = true
			}
		}
	} else {
		for _, axis := range axes {
			if axis < 0 || axis >= len(shape) {
				return Metadata{}, fmt.Errorf("Squeeze: axis %d out of range [0, %d): %w",
					axis, len(shape), ErrInvalidArgument)
			}
			if shape[axis] != 1 {
				return Metadata{}, fmt.Errorf("Squeeze: cannot squeeze axis %d with size %d (must be 1): %w",
					axis, shape[axis], ErrInvalidArgument)
			}
			drop[axis] = true
		}
	}

	newShape := make(Shape, 0, len(shape))
	newStrides := make(Strides, 0, len(shape))
	for i := range shape {
		if drop[i] {
			continue
		}
		newShape = append(newShape, shape[i])
		newStrides = append(newStrides, strides[i])
	}
	return newMetadataOwned(newShape, newStrides, m.Offset()), nil
}

// Unsqueeze derives a view with extent-1 axes inserted.
//
// Axes are processed in input order and bounds-checked against the
// current, growing shape: inserting at the current length appends a
// trailing axis, anything beyond fails. An inserted axis gets the stride
// its position would have under row-major layout (extent times stride of
// the axis shifted right, or 1 at the end), so a contiguous input stays
// contiguous and element addressing is unaffected either way.
func Unsqueeze(m Meta, axes []int) (Metadata, error) {
	newShape := m.Shape().Clone()
	newStrides := m.Strides().Clone()

	for _, axis := range axes {
		if axis < 0 || axis > len(newShape) {
			return Metadata{}, fmt.Errorf("Unsqueeze: axis %d out of range [0, %d]: %w",
				axis, len(newShape), ErrInvalidArgument)
		}
		stride := 1
		if axis < len(newShape) {
			stride = newShape[axis] * newStrides[axis]
		}
		newShape = append(newShape, 0)
		copy(newShape[axis+1:], newShape[axis:])
		newShape[axis] = 1
		newStrides = append(newStrides, 0)
		copy(newStrides[axis+1:], newStrides[axis:])
		newStrides[axis] = stride
	}
	return newMetadataOwned(newShape, newStrides, m.Offset()), nil
}
