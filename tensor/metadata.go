package tensor

import "fmt"

// Meta is the read-only capability surface shared by both metadata
// representations. View derivation accepts any Meta, so consuming code
// never depends on how the dimensions are stored.
type Meta interface {
	// Shape returns the per-axis extents of the view.
	Shape() Shape
	// Strides returns the per-axis element steps into the buffer.
	Strides() Strides
	// Offset returns the buffer index of element (0, ..., 0).
	Offset() int
	// TotalSize returns the number of addressable elements (1 for rank-0).
	TotalSize() int
	// Rank returns the number of axes.
	Rank() int
	// IsContiguous reports whether the strides are canonical row-major
	// for the shape.
	IsContiguous() bool
}

// Metadata describes how a view interprets a linear element buffer:
// shape, strides, and the offset of its first logical element. It never
// owns or references the buffer itself; pairing with storage is the
// Tensor type's job.
//
// Metadata is a value: deriving a view returns a new instance and leaves
// the source untouched. The returned Shape and Strides slices are the
// internal ones and must not be modified by callers.
type Metadata struct {
	shape      Shape
	strides    Strides
	offset     int
	totalSize  int
	contiguous bool
}

// NewMetadata constructs metadata for a freshly created row-major view of
// shape, starting at offset in the buffer. Strides are derived from the
// shape, so the result is contiguous by construction.
//
// Shapes containing zero are accepted and simply yield TotalSize() == 0.
func NewMetadata(shape Shape, offset int) Metadata {
	return newMetadataOwned(shape.Clone(), ComputeStrides(shape), offset)
}

// NewMetadataStrided constructs metadata with an explicit stride set,
// used verbatim. Strides must have the same length as shape; internal
// consistency with the shape is the caller's responsibility.
func NewMetadataStrided(shape Shape, strides Strides, offset int) Metadata {
	return newMetadataOwned(shape.Clone(), strides.Clone(), offset)
}

// newMetadataOwned assembles metadata from slices the caller hands over.
// All derivation paths funnel through here so size and contiguity are
// recomputed on every construction, never assumed.
func newMetadataOwned(shape Shape, strides Strides, offset int) Metadata {
	return Metadata{
		shape:      shape,
		strides:    strides,
		offset:     offset,
		totalSize:  ComputeSize(shape),
		contiguous: isRowMajor(shape, strides),
	}
}

// Shape returns the view's shape.
func (m Metadata) Shape() Shape { return m.shape }

// Strides returns the view's strides.
func (m Metadata) Strides() Strides { return m.strides }

// Offset returns the buffer index of the view's first logical element.
func (m Metadata) Offset() int { return m.offset }

// TotalSize returns the number of addressable elements in the view.
func (m Metadata) TotalSize() int { return m.totalSize }

// Rank returns the number of axes.
func (m Metadata) Rank() int { return len(m.shape) }

// IsContiguous reports whether the view's strides are canonical
// row-major for its shape.
func (m Metadata) IsContiguous() bool { return m.contiguous }

// SetContiguous overrides the contiguity flag. Intended for a consuming
// layer that has verified contiguity by other means; derivation inside
// this package never needs it because every operation recomputes the
// flag.
func (m *Metadata) SetContiguous(contiguous bool) { m.contiguous = contiguous }

// FlatIndex converts a multi-dimensional index into an absolute buffer
// offset, including the view's base offset. No bounds checking; callers
// on the storage layer validate indices first.
func (m Metadata) FlatIndex(indices []int) int {
	return m.offset + FlattenIndex(m.strides, indices)
}

// Unflatten converts a flat element offset (relative to the view's
// origin, not the buffer) into a multi-dimensional index. Only valid for
// contiguous views; the division/modulo walk is not a general inverse
// for permuted or sliced strides, so those are rejected.
func (m Metadata) Unflatten(flatIndex int) ([]int, error) {
	if !m.contiguous {
		return nil, fmt.Errorf("Unflatten: view with shape %v and strides %v is not contiguous", m.shape, m.strides)
	}
	return UnflattenIndex(m.strides, flatIndex), nil
}

// String returns a human-readable representation of the metadata.
func (m Metadata) String() string {
	return fmt.Sprintf("Metadata{shape: %v, strides: %v, offset: %d, contiguous: %t}",
		m.shape, m.strides, m.offset, m.contiguous)
}

// MaxRank is the highest rank FixedMeta can describe.
const MaxRank = 8

// FixedMeta is the fixed-capacity metadata representation. Dimensions and
// strides live in inline arrays, so a FixedMeta is a single stack-friendly
// value with no heap backing, at the cost of a rank bound.
//
// It satisfies the same Meta interface as Metadata and shares the same
// algorithm bodies; view derivation on a FixedMeta returns a Metadata.
type FixedMeta struct {
	dims       [MaxRank]int
	strides    [MaxRank]int
	rank       int
	offset     int
	totalSize  int
	contiguous bool
}

// NewFixedMeta constructs fixed-capacity metadata for a row-major view of
// shape. Fails if the rank exceeds MaxRank.
func NewFixedMeta(shape Shape, offset int) (FixedMeta, error) {
	if len(shape) > MaxRank {
		return FixedMeta{}, fmt.Errorf("NewFixedMeta: rank %d exceeds MaxRank %d", len(shape), MaxRank)
	}
	f := FixedMeta{rank: len(shape), offset: offset}
	copy(f.dims[:], shape)
	computeStridesInto(f.strides[:f.rank], f.dims[:f.rank])
	f.totalSize = ComputeSize(f.dims[:f.rank])
	f.contiguous = true
	return f, nil
}

// NewFixedMetaStrided constructs fixed-capacity metadata with an explicit
// stride set. Fails if the rank exceeds MaxRank or the stride count does
// not match the shape.
func NewFixedMetaStrided(shape Shape, strides Strides, offset int) (FixedMeta, error) {
	if len(shape) > MaxRank {
		return FixedMeta{}, fmt.Errorf("NewFixedMetaStrided: rank %d exceeds MaxRank %d", len(shape), MaxRank)
	}
	if len(strides) != len(shape) {
		return FixedMeta{}, fmt.Errorf("NewFixedMetaStrided: %d strides for rank %d", len(strides), len(shape))
	}
	f := FixedMeta{rank: len(shape), offset: offset}
	copy(f.dims[:], shape)
	copy(f.strides[:], strides)
	f.totalSize = ComputeSize(f.dims[:f.rank])
	f.contiguous = isRowMajor(f.dims[:f.rank], f.strides[:f.rank])
	return f, nil
}

// Shape returns the view's shape.
func (f FixedMeta) Shape() Shape { return Shape(f.dims[:f.rank:f.rank]) }

// Strides returns the view's strides.
func (f FixedMeta) Strides() Strides { return Strides(f.strides[:f.rank:f.rank]) }

// Offset returns the buffer index of the view's first logical element.
func (f FixedMeta) Offset() int { return f.offset }

// TotalSize returns the number of addressable elements in the view.
func (f FixedMeta) TotalSize() int { return f.totalSize }

// Rank returns the number of axes.
func (f FixedMeta) Rank() int { return f.rank }

// IsContiguous reports whether the view's strides are canonical
// row-major for its shape.
func (f FixedMeta) IsContiguous() bool { return f.contiguous }

// SetContiguous overrides the contiguity flag.
func (f *FixedMeta) SetContiguous(contiguous bool) { f.contiguous = contiguous }

// FlatIndex converts a multi-dimensional index into an absolute buffer
// offset, including the view's base offset.
func (f FixedMeta) FlatIndex(indices []int) int {
	return f.offset + FlattenIndex(f.strides[:f.rank], indices)
}

// Meta widens the fixed representation to a dynamic Metadata, copying the
// inline dimensions onto the heap.
func (f FixedMeta) Meta() Metadata {
	return newMetadataOwned(f.Shape().Clone(), f.Strides().Clone(), f.offset)
}

// String returns a human-readable representation of the metadata.
func (f FixedMeta) String() string {
	return fmt.Sprintf("FixedMeta{shape: %v, strides: %v, offset: %d, contiguous: %t}",
		f.Shape(), f.Strides(), f.offset, f.contiguous)
}
