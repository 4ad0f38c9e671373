package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTensor(t *testing.T) {
	x, err := New[float32](Shape{3, 4})
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 4}, x.Shape())
	assert.Equal(t, Strides{4, 1}, x.Strides())
	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, 12, x.NumElements())
	assert.True(t, x.IsContiguous())
	assert.Len(t, x.Data(), 12)
}

func TestNewTensorInvalidShape(t *testing.T) {
	_, err := New[float32](Shape{3, 0})
	assert.Error(t, err)

	_, err = New[float32](Shape{-1})
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Int32, x.DType())
	assert.Equal(t, int32(1), x.At(0, 0))
	assert.Equal(t, int32(6), x.At(1, 2))

	_, err = FromSlice([]int32{1, 2, 3}, Shape{2, 3})
	assert.Error(t, err)
}

func TestTensorAtSet(t *testing.T) {
	x, err := New[float64](Shape{2, 3})
	require.NoError(t, err)

	x.Set(3.5, 1, 2)
	assert.Equal(t, 3.5, x.At(1, 2))
	assert.Equal(t, 0.0, x.At(0, 0))

	// Row-major placement: (1, 2) is flat offset 5
	assert.Equal(t, 3.5, x.Data()[5])
}

func TestTensorAtPanics(t *testing.T) {
	x, err := New[float32](Shape{2, 3})
	require.NoError(t, err)

	assert.Panics(t, func() { x.At(0) })       // wrong index count
	assert.Panics(t, func() { x.At(2, 0) })    // out of bounds
	assert.Panics(t, func() { x.At(0, -1) })   // negative
	assert.Panics(t, func() { x.Set(1, 5, 5) })
}

func TestTensorItem(t *testing.T) {
	s, err := New[float32](Shape{})
	require.NoError(t, err)
	s.Set(2.5)
	assert.Equal(t, float32(2.5), s.Item())

	x, err := New[float32](Shape{2})
	require.NoError(t, err)
	assert.Panics(t, func() { x.Item() })
}

func TestTensorSliceSharesBuffer(t *testing.T) {
	x, err := FromSlice([]float32{
		0, 1, 2, 3, 4,
		5, 6, 7, 8, 9,
		10, 11, 12, 13, 14,
		15, 16, 17, 18, 19,
	}, Shape{4, 5})
	require.NoError(t, err)

	v, err := x.Slice([]int{1, 1}, []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, v.Shape())

	// v(0, 0) is x(1, 1)
	assert.Equal(t, float32(6), v.At(0, 0))
	assert.Equal(t, float32(13), v.At(1, 2))

	// Writing through the view is visible in the source (zero-copy)
	v.Set(-1, 0, 1)
	assert.Equal(t, float32(-1), x.At(1, 2))
}

func TestTensorTransposeAddressing(t *testing.T) {
	x, err := FromSlice([]int64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	tr, err := x.Transpose()
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.False(t, tr.IsContiguous())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, x.At(i, j), tr.At(j, i))
		}
	}
}

func TestTensorReshapeAddressing(t *testing.T) {
	x, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	r, err := x.Reshape(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, int32(1), r.At(0, 0))
	assert.Equal(t, int32(4), r.At(1, 1))
	assert.Equal(t, int32(6), r.At(2, 1))

	// Reshaping a transposed view is rejected
	tr, err := x.Transpose()
	require.NoError(t, err)
	_, err = tr.Reshape(Shape{6})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTensorSqueezeUnsqueeze(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3}, Shape{1, 3})
	require.NoError(t, err)

	q, err := x.Squeeze()
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, q.Shape())
	assert.Equal(t, float32(2), q.At(1))

	u, err := q.Unsqueeze(1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 1}, u.Shape())
	assert.Equal(t, float32(3), u.At(2, 0))
}

func TestTensorPermuteAddressing(t *testing.T) {
	x, err := New[float32](Shape{2, 3, 4})
	require.NoError(t, err)
	x.Set(9, 1, 2, 3)

	p, err := x.Permute(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2, 3}, p.Shape())
	assert.Equal(t, float32(9), p.At(3, 1, 2))
}

func TestTensorSliceOfSlice(t *testing.T) {
	x, err := FromSlice([]int32{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}, Shape{4, 4})
	require.NoError(t, err)

	v, err := x.Slice([]int{1, 1}, []int{4, 4})
	require.NoError(t, err)
	vv, err := v.Slice([]int{1, 1}, []int{3, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2}, vv.Shape())
	assert.Equal(t, int32(10), vv.At(0, 0)) // x(2, 2)
	assert.Equal(t, int32(15), vv.At(1, 1)) // x(3, 3)
}

func TestTensorClone(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	c := x.Clone()
	c.Set(99, 0, 0)
	assert.Equal(t, float32(1), x.At(0, 0), "clone owns a private buffer")
	assert.Equal(t, float32(99), c.At(0, 0))
}

func TestTensorString(t *testing.T) {
	x, err := New[float32](Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][2 3]", x.String())
}
