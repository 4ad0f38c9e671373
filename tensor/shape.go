package tensor

import "fmt"

// Shape represents the dimensions of a tensor view.
// Dimension 0 is the outermost (slowest-varying) axis.
// An empty Shape denotes a rank-0 scalar.
type Shape []int

// Strides holds the per-axis step, in elements, between consecutive
// indices along each axis of the underlying buffer.
type Strides []int

// NumElements returns the total number of addressable elements.
// A scalar has 1 element.
func (s Shape) NumElements() int {
	return ComputeSize(s)
}

// Validate checks if the shape is valid for storage allocation
// (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Equal checks if two stride sets are equal.
func (s Strides) Equal(other Strides) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	clone := make(Strides, len(s))
	copy(clone, s)
	return clone
}
