package tensor

import "fmt"

// Tensor pairs view metadata with an owned element buffer. The metadata
// core stays buffer-free; this is the consuming layer that turns a
// multi-dimensional index into an element.
//
// Derived views (Slice, Reshape, ...) share the buffer with their source
// (zero-copy); only the metadata differs.
//
// Example:
//
//	t, _ := tensor.New[float32](tensor.Shape{3, 4})
//	t.Set(1.5, 1, 2)
//	row, _ := t.Slice([]int{1, 0}, []int{2, 4})
//	_ = row.At(0, 2) // 1.5, same buffer
type Tensor[T DType] struct {
	meta  Metadata
	dtype DataType
	data  []T
}

// New creates a zero-filled tensor of the given shape.
func New[T DType](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("New: invalid shape: %w", err)
	}
	var dummy T
	return &Tensor[T]{
		meta:  NewMetadata(shape, 0),
		dtype: inferDataType(dummy),
		data:  make([]T, shape.NumElements()),
	}, nil
}

// FromSlice creates a tensor from a Go slice. The slice is copied into
// the tensor's buffer.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("FromSlice: shape %v requires %d elements, but got %d",
			shape, len(t.data), len(data))
	}
	copy(t.data, data)
	return t, nil
}

// view wraps derived metadata around the shared buffer.
func (t *Tensor[T]) view(meta Metadata) *Tensor[T] {
	return &Tensor[T]{meta: meta, dtype: t.dtype, data: t.data}
}

// Metadata returns the tensor's view metadata.
func (t *Tensor[T]) Metadata() Metadata {
	return t.meta
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.meta.Shape()
}

// Strides returns the tensor's strides.
func (t *Tensor[T]) Strides() Strides {
	return t.meta.Strides()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.dtype
}

// NumElements returns the number of elements addressable by this view.
func (t *Tensor[T]) NumElements() int {
	return t.meta.TotalSize()
}

// IsContiguous reports whether this view's strides are row-major for its
// shape.
func (t *Tensor[T]) IsContiguous() bool {
	return t.meta.IsContiguous()
}

// Data returns the underlying buffer from this view's origin onward.
// The slice directly accesses shared memory (zero-copy); for a strided
// view, consecutive slice positions do not correspond to consecutive
// logical elements.
//
// WARNING: Modifications to the returned slice will modify the tensor
// and every view sharing its buffer.
func (t *Tensor[T]) Data() []T {
	return t.data[t.meta.Offset():]
}

// At returns the element at the given indices.
// Panics if the index count or any index is out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.flatIndex(indices)]
}

// Set sets the element at the given indices.
// Panics if the index count or any index is out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.data[t.flatIndex(indices)] = value
}

// flatIndex validates indices against the shape and converts them to an
// absolute buffer offset.
func (t *Tensor[T]) flatIndex(indices []int) int {
	shape := t.meta.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
	}
	return t.meta.FlatIndex(indices)
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if t.meta.Rank() != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.data[t.meta.Offset()]
}

// Slice returns the zero-copy view covering [starts[i], ends[i]) along
// every axis.
func (t *Tensor[T]) Slice(starts, ends []int) (*Tensor[T], error) {
	meta, err := Slice(t.meta, starts, ends)
	if err != nil {
		return nil, err
	}
	return t.view(meta), nil
}

// Reshape returns the zero-copy view of newShape over the same elements.
// The tensor must be contiguous.
func (t *Tensor[T]) Reshape(newShape Shape) (*Tensor[T], error) {
	meta, err := Reshape(t.meta, newShape)
	if err != nil {
		return nil, err
	}
	return t.view(meta), nil
}

// Permute returns the zero-copy view with axes reordered. With no axes,
// the order is reversed.
func (t *Tensor[T]) Permute(axes ...int) (*Tensor[T], error) {
	meta, err := Permute(t.meta, axes)
	if err != nil {
		return nil, err
	}
	return t.view(meta), nil
}

// Transpose returns the zero-copy view with all axes reversed.
func (t *Tensor[T]) Transpose() (*Tensor[T], error) {
	meta, err := Transpose(t.meta)
	if err != nil {
		return nil, err
	}
	return t.view(meta), nil
}

// Squeeze returns the zero-copy view with extent-1 axes removed. With no
// axes, all extent-1 axes are removed.
func (t *Tensor[T]) Squeeze(axes ...int) (*Tensor[T], error) {
	meta, err := Squeeze(t.meta, axes)
	if err != nil {
		return nil, err
	}
	return t.view(meta), nil
}

// Unsqueeze returns the zero-copy view with extent-1 axes inserted at the
// given positions.
func (t *Tensor[T]) Unsqueeze(axes ...int) (*Tensor[T], error) {
	meta, err := Unsqueeze(t.meta, axes)
	if err != nil {
		return nil, err
	}
	return t.view(meta), nil
}

// Clone creates a deep copy of the tensor: metadata plus a private copy
// of the full buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{meta: t.meta, dtype: t.dtype, data: data}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.dtype, t.Shape())
}
